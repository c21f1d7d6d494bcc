package entity

// Item representa un artículo del catálogo identificado por SKU.
// Cada ítem pertenece a una sola categoría.
type Item struct {
	ID         int64
	SKU        string // único
	Name       string
	CategoryID int64
}
