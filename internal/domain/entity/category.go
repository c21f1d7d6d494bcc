package entity

// Category representa una categoría de ítems. Forma un árbol opcional:
// ParentID nulo indica categoría raíz. La profundidad no se valida.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
}
