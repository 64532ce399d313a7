package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Name y SKU son únicos;
// Stock nunca baja de cero (la compra usa un decremento condicional).
// CategoryName se aplana en lecturas vía JOIN, no se persiste en products.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal // NUMERIC(18,2), >= 0
	ImgURL       string
	ImgURLLocal  string
	SKU          string
	Stock        int
	CreationDate time.Time
	UpdateDate   *time.Time
	CategoryID   int64
	CategoryName string
}
