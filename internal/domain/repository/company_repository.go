package repository

import "github.com/expanda/catalog-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	GetByCode(code string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id int64) error
	Exists(id int64) (bool, error)
}
