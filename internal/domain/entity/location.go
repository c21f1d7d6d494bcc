package entity

// Location representa una ubicación física donde se almacena inventario.
// Se crea durante la siembra inicial y es inmutable después.
type Location struct {
	ID   int64
	Name string // único
}
