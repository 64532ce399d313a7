package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Llega como formulario
// multipart (la imagen opcional se maneja aparte en el handler).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"required,min=1,max=50"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"category_id" validate:"required"`
	ImgURL      string          `json:"img_url"`
	ImgURLLocal string          `json:"-"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo,
// misma forma que la creación).
type UpdateProductRequest = CreateProductRequest

// ProductResponse salida de un producto con el nombre de la categoría aplanado.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImgURL       string          `json:"img_url"`
	SKU          string          `json:"sku"`
	Stock        int             `json:"stock"`
	CreationDate time.Time       `json:"creation_date"`
	UpdateDate   *time.Time      `json:"update_date,omitempty"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
}

// PaginationResponse envoltorio de página para listados de productos.
// TotalPages = ceil(TotalItems / PageSize).
type PaginationResponse struct {
	TotalItems int               `json:"total_items"`
	PageSize   int               `json:"page_size"`
	PageNumber int               `json:"page_number"`
	TotalPages int               `json:"total_pages"`
	Items      []ProductResponse `json:"items"`
}
