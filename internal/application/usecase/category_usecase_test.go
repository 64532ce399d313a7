package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/application/usecase"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
)

func newCategoryUC() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo()
	prodRepo := newFakeProductRepo()
	return usecase.NewCategoryUseCase(catRepo, prodRepo), catRepo, prodRepo
}

// Alta y lectura inmediata: el nombre debe conservarse tal cual (recortado).
func TestCategoryCreate_RoundtripConservaNombre(t *testing.T) {
	uc, _, _ := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "  Electrónica  "})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Electrónica", created.Name)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Electrónica", got.Name)
}

// Nombre duplicado (caseless) debe fallar sin alterar el total de registros.
func TestCategoryCreate_DuplicadoNoAlteraConteo(t *testing.T) {
	uc, repo, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	require.Equal(t, 1, repo.count())

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "  HOGAR "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, repo.count(), "el duplicado no debe insertar registros")
}

func TestCategoryCreate_NombreInvalido(t *testing.T) {
	uc, _, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "ab"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "menos de 3 caracteres")

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo espacios")
}

// Update puede conservar su propio nombre, pero no tomar el de otra categoría.
func TestCategoryUpdate_UnicidadExcluyeElPropio(t *testing.T) {
	uc, _, _ := newCategoryUC()

	a, err := uc.Create(dto.CreateCategoryRequest{Name: "Jardín"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCategoryRequest{Name: "Cocina"})
	require.NoError(t, err)

	assert.NoError(t, uc.Update(a.ID, dto.CreateCategoryRequest{Name: "jardín"}),
		"renombrarse a sí misma (caseless) debe permitirse")
	assert.ErrorIs(t, uc.Update(b.ID, dto.CreateCategoryRequest{Name: "Jardín"}),
		domain.ErrDuplicate)
	assert.ErrorIs(t, uc.Update(999, dto.CreateCategoryRequest{Name: "Otra"}),
		domain.ErrNotFound)
}

// Borrado bloqueado mientras existan productos en la categoría; libre después.
func TestCategoryDelete_BloqueadaMientrasTengaProductos(t *testing.T) {
	uc, repo, prodRepo := newCategoryUC()

	cat, err := uc.Create(dto.CreateCategoryRequest{Name: "Oficina"})
	require.NoError(t, err)

	require.NoError(t, prodRepo.Create(&entity.Product{
		Name: "Silla ergonómica", SKU: "SIL-001", Stock: 3, CategoryID: cat.ID,
	}))

	assert.ErrorIs(t, uc.Delete(cat.ID), domain.ErrCategoryInUse)
	require.Equal(t, 1, repo.count())

	// Sin productos asociados, el borrado procede.
	products, _ := prodRepo.ListByCategory(cat.ID)
	for _, p := range products {
		require.NoError(t, prodRepo.Delete(p.ID))
	}
	assert.NoError(t, uc.Delete(cat.ID))
	assert.Equal(t, 0, repo.count())
}

func TestCategoryDelete_NoExistente(t *testing.T) {
	uc, _, _ := newCategoryUC()
	assert.ErrorIs(t, uc.Delete(123), domain.ErrNotFound)
}

func TestCategoryExistsByName_Caseless(t *testing.T) {
	uc, _, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Deportes"})
	require.NoError(t, err)

	ok, err := uc.ExistsByName("  DEPORTES ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.ExistsByName("Mascotas")
	require.NoError(t, err)
	assert.False(t, ok)
}
