package usecase

import (
	"strings"
	"time"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/internal/domain/repository"
	"github.com/expanda/catalog-api/pkg/textutil"
)

// CategoryUseCase casos de uso CRUD para categorías. Necesita el repositorio
// de productos para la restricción "categoría en uso" al borrar.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// List lista categorías ordenadas por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListOrdered lista categorías ordenadas por id ascendente. Se mantiene como
// operación separada por compatibilidad con los endpoints existentes.
func (uc *CategoryUseCase) ListOrdered() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListOrdered()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Exists informa si existe una categoría con el ID dado.
func (uc *CategoryUseCase) Exists(id int64) (bool, error) {
	return uc.repo.Exists(id)
}

// ExistsByName informa si existe una categoría con ese nombre (caseless).
func (uc *CategoryUseCase) ExistsByName(name string) (bool, error) {
	category, err := uc.repo.GetByName(textutil.Fold(name))
	if err != nil {
		return false, err
	}
	return category != nil, nil
}

// Create crea una categoría. Devuelve domain.ErrInvalidInput si el nombre no
// cumple 3–100 caracteres y domain.ErrDuplicate si ya está tomado.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 100 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(textutil.Fold(name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		Name:         name,
		CreationDate: time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Re-valida la unicidad del nombre excluyendo
// el propio registro. Devuelve domain.ErrNotFound o domain.ErrDuplicate.
func (uc *CategoryUseCase) Update(id int64, in dto.CreateCategoryRequest) error {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 100 {
		return domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(textutil.Fold(name))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ErrDuplicate
	}
	category.Name = name
	return uc.repo.Update(category)
}

// Delete elimina una categoría. Devuelve domain.ErrCategoryInUse mientras haya
// productos que la referencien; la DB refuerza lo mismo con ON DELETE RESTRICT.
func (uc *CategoryUseCase) Delete(id int64) error {
	exists, err := uc.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	inUse, err := uc.products.ExistsInCategory(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		CreationDate: c.CreationDate,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}
