package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/application/usecase"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
)

type fakeCompanyRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: map[int64]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Code == company.Code {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	company.ID = r.nextID
	clone := *company
	r.items[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Code == code {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Company, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		list = append(list, &clone)
	}
	return list, nil
}

func (r *fakeCompanyRepo) Update(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[company.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *company
	r.items[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCompanyRepo) Exists(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func TestCompanyCreate_CodigoUnicoYActivaPorDefecto(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", Code: "ACM01", RFC: "ACM010101AAA"})
	require.NoError(t, err)
	assert.True(t, created.IsActive, "las compañías nacen activas")

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Acme dos", Code: "ACM01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "  ", Code: "X1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Sin código", Code: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUpdate_EstampaUpdateAtYExcluyeElPropio(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	a, err := uc.Create(dto.CreateCompanyRequest{Name: "Alfa", Code: "ALF"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Beta", Code: "BET"})
	require.NoError(t, err)

	// Conservar su propio código debe permitirse.
	require.NoError(t, uc.Update(a.ID, dto.UpdateCompanyRequest{Name: "Alfa SA", Code: "ALF", IsActive: false}))

	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alfa SA", got.Name)
	assert.False(t, got.IsActive)
	assert.NotNil(t, got.UpdateAt, "la actualización debe estampar UpdateAt")

	// Tomar el código de otra compañía no.
	assert.ErrorIs(t, uc.Update(a.ID, dto.UpdateCompanyRequest{Name: "Alfa", Code: "BET"}),
		domain.ErrDuplicate)
}

func TestCompanyGetByCode(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Gamma", Code: "GAM"})
	require.NoError(t, err)

	got, err := uc.GetByCode("GAM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gamma", got.Name)

	missing, err := uc.GetByCode("NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompanyDelete(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Delta", Code: "DEL"})
	require.NoError(t, err)

	assert.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
