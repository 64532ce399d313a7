package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/internal/domain/repository"
	"github.com/expanda/catalog-api/pkg/textutil"
)

// ProductUseCase casos de uso para productos: CRUD, paginación, búsqueda y compra.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetPage devuelve una página de productos ordenada por id junto con los
// totales. page y pageSize deben venir validados (>= 1) por el llamador.
// Una página más allá del total devuelve Items vacío, no error. El total y la
// página se leen sin snapshot transaccional; bajo escrituras concurrentes
// pueden corresponder a instantes distintos.
func (uc *ProductUseCase) GetPage(page, pageSize int) (*dto.PaginationResponse, error) {
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListPaged(page, pageSize)
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	return &dto.PaginationResponse{
		TotalItems: total,
		PageSize:   pageSize,
		PageNumber: page,
		TotalPages: totalPages,
		Items:      toProductResponses(list),
	}, nil
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos por nombre o descripción (caseless).
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(textutil.Fold(term))
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Create crea un producto. Valida nombre y SKU únicos, precio y stock no
// negativos, y que la categoría exista (domain.ErrNotFound si no).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(in, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		ImgURL:       in.ImgURL,
		ImgURLLocal:  in.ImgURLLocal,
		SKU:          in.SKU,
		Stock:        in.Stock,
		CreationDate: now,
		UpdateDate:   &now,
		CategoryID:   in.CategoryID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	// Releer para aplanar el nombre de la categoría
	created, err := uc.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// Update actualiza un producto (reemplazo completo). Re-valida las mismas
// restricciones de creación excluyendo el propio registro.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.validate(in, id); err != nil {
		return err
	}
	now := time.Now()
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	if in.ImgURL != "" {
		product.ImgURL = in.ImgURL
	}
	if in.ImgURLLocal != "" {
		product.ImgURLLocal = in.ImgURLLocal
	}
	product.SKU = in.SKU
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	product.UpdateDate = &now
	return uc.repo.Update(product)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Buy descuenta qty unidades del producto identificado por nombre (caseless,
// sin espacios laterales). El decremento es condicional y atómico en el
// repositorio, así que compras concurrentes no pueden sobrevender.
func (uc *ProductUseCase) Buy(ctx context.Context, name string, qty int) error {
	if strings.TrimSpace(name) == "" || qty <= 0 {
		return domain.ErrInvalidInput
	}
	folded := textutil.Fold(name)
	product, err := uc.repo.GetByName(folded)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.repo.DecrementStock(ctx, folded, qty)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (uc *ProductUseCase) validate(in dto.CreateProductRequest, selfID int64) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 200 || in.SKU == "" || len(in.SKU) > 50 {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(textutil.Fold(name))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	existing, err = uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	catExists, err := uc.categories.Exists(in.CategoryID)
	if err != nil {
		return err
	}
	if !catExists {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		ImgURL:       p.ImgURL,
		SKU:          p.SKU,
		Stock:        p.Stock,
		CreationDate: p.CreationDate,
		UpdateDate:   p.UpdateDate,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
