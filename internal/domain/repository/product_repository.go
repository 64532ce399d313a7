package repository

import (
	"context"

	"github.com/expanda/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas aplanan el nombre de la categoría (CategoryName).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByName compara el nombre sin mayúsculas ni espacios laterales.
	GetByName(name string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// List ordena por nombre; ListPaged por id con LIMIT/OFFSET (page >= 1).
	List() ([]*entity.Product, error)
	ListPaged(page, pageSize int) ([]*entity.Product, error)
	Count() (int, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	// Search busca el término en nombre y descripción, sin distinguir mayúsculas.
	Search(term string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	Exists(id int64) (bool, error)
	ExistsInCategory(categoryID int64) (bool, error)
	// DecrementStock descuenta qty de forma atómica y condicional
	// (solo si stock >= qty). Devuelve false si ninguna fila calificó.
	DecrementStock(ctx context.Context, name string, qty int) (bool, error)
}
