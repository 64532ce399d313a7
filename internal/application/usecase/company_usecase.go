package usecase

import (
	"strings"
	"time"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para compañías.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List lista compañías ordenadas por nombre.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// GetByID obtiene una compañía por ID. (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// GetByCode obtiene una compañía por código. (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByCode(code string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Create crea una compañía. Devuelve domain.ErrDuplicate si el código ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		Name:     in.Name,
		Code:     in.Code,
		RFC:      in.RFC,
		IsActive: true,
		CreateAt: time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update actualiza una compañía y estampa UpdateAt. Re-valida que el código no
// esté en uso por otra compañía.
func (uc *CompanyUseCase) Update(id int64, in dto.UpdateCompanyRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		return domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ErrDuplicate
	}
	now := time.Now()
	company.Name = in.Name
	company.Code = in.Code
	company.RFC = in.RFC
	company.IsActive = in.IsActive
	company.UpdateAt = &now
	return uc.repo.Update(company)
}

// Delete elimina una compañía por ID.
func (uc *CompanyUseCase) Delete(id int64) error {
	exists, err := uc.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Code:     c.Code,
		RFC:      c.RFC,
		IsActive: c.IsActive,
		CreateAt: c.CreateAt,
		UpdateAt: c.UpdateAt,
	}
}
