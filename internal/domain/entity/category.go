package entity

import "time"

// Category representa una categoría del catálogo de productos.
// El nombre es único a nivel de tabla (3–100 caracteres).
type Category struct {
	ID           int64
	Name         string
	CreationDate time.Time
}
