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

type fakeRoleRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{items: map[int64]*entity.Role{}}
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	role.ID = r.nextID
	clone := *role
	r.items[role.ID] = &clone
	return nil
}

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	role, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *role
	return &clone, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.items {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Role, 0, len(r.items))
	for _, role := range r.items {
		clone := *role
		list = append(list, &clone)
	}
	return list, nil
}

func (r *fakeRoleRepo) Update(role *entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[role.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *role
	r.items[role.ID] = &clone
	return nil
}

func (r *fakeRoleRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestRoleCreate_UnicoYActivoPorDefecto(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo())

	created, err := uc.Create(dto.CreateRoleRequest{Name: "Auditor", Description: "solo lectura"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = uc.Create(dto.CreateRoleRequest{Name: "Auditor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateRoleRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoleUpdate_EstampaUpdatedAt(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo())

	created, err := uc.Create(dto.CreateRoleRequest{Name: "Operador"})
	require.NoError(t, err)

	require.NoError(t, uc.Update(created.ID, dto.UpdateRoleRequest{Name: "Operador senior", IsActive: true}))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Operador senior", got.Name)
	assert.NotNil(t, got.UpdatedAt)

	assert.ErrorIs(t, uc.Update(999, dto.UpdateRoleRequest{Name: "Nadie"}), domain.ErrNotFound)
}

func TestRoleDelete(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo())

	created, err := uc.Create(dto.CreateRoleRequest{Name: "Temporal"})
	require.NoError(t, err)

	assert.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
