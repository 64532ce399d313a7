package repository

import "github.com/expanda/catalog-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// La implementación vive en infrastructure. "No encontrado" se reporta como (nil, nil).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	// GetByName compara el nombre sin mayúsculas ni espacios laterales.
	GetByName(name string) (*entity.Category, error)
	// List ordena por nombre ascendente; ListOrdered por id ascendente.
	// Ambos se exponen como endpoints distintos por compatibilidad.
	List() ([]*entity.Category, error)
	ListOrdered() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
	Exists(id int64) (bool, error)
}
