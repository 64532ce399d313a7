package repository

import "github.com/expanda/catalog-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername compara sin mayúsculas ni espacios laterales.
	GetByUsername(username string) (*entity.User, error)
	// List ordena por username ascendente.
	List() ([]*entity.User, error)
}
