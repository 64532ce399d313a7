package dto

import "time"

// CreateCategoryRequest entrada para crear o actualizar una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}
