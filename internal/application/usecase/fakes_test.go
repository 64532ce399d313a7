package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios, con la misma semántica que postgres:
// "no encontrado" = (nil, nil), unicidad caseless, decremento condicional.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[int64]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if textutil.EqualFold(c.Name, category.Name) {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	category.ID = r.nextID
	clone := *category
	r.items[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if textutil.Fold(c.Name) == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	list, _ := r.ListOrdered()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeCategoryRepo) ListOrdered() ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[category.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *category
	r.items[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) Exists(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeCategoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeProductRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if textutil.EqualFold(p.Name, product.Name) || p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.items[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if textutil.Fold(p.Name) == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	list := r.snapshot()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) ListPaged(page, pageSize int) ([]*entity.Product, error) {
	list := r.snapshot()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	offset := (page - 1) * pageSize
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *fakeProductRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.snapshot() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.snapshot() {
		if strings.Contains(textutil.Fold(p.Name), term) ||
			strings.Contains(textutil.Fold(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *product
	r.items[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) Exists(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeProductRepo) ExistsInCategory(categoryID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, name string, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if textutil.Fold(p.Name) == name && p.Stock >= qty {
			p.Stock -= qty
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) snapshot() []*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		clone := *p
		list = append(list, &clone)
	}
	return list
}
