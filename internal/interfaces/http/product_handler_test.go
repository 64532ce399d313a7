package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/expanda/catalog-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetPage — validación de query params
// ──────────────────────────────────────────────────────────────────────────────

// buildPagedApp monta solo la ruta paginada; los casos inválidos responden
// antes de tocar el caso de uso, así que el handler no necesita dependencias.
func buildPagedApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewProductHandler(nil, nil)
	app.Get("/products/paged", h.GetPage)
	return app
}

// page y pageSize no numéricos deben rechazarse con 400, nunca sustituirse
// en silencio por el valor por defecto.
func TestProductGetPage_ParamsInvalidos_Retorna400(t *testing.T) {
	app := buildPagedApp()

	cases := []struct {
		nombre string
		query  string
	}{
		{"page no numérico", "?page=abc"},
		{"pageSize no numérico", "?page=1&pageSize=xyz"},
		{"page cero", "?page=0"},
		{"page negativo", "?page=-3"},
		{"pageSize cero", "?page=1&pageSize=0"},
		{"page decimal", "?page=1.5"},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products/paged"+tc.query, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
				"un parámetro de paginación inválido debe retornar 400")

			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "VALIDATION",
				"la respuesta debe incluir el código VALIDATION")
		})
	}
}
