package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/expanda/catalog-api/internal/domain/entity"
)

// Handlers agrupa los handlers que registra el router.
type Handlers struct {
	Categories *CategoryHandler
	Products   *ProductHandler
	Companies  *CompanyHandler
	Roles      *RoleHandler
	Users      *UserHandler
}

// RegisterRoutes registra los grupos /api/v1 y /api/v2.
// Las lecturas son anónimas; las mutaciones exigen rol Admin y la compra
// solo requiere un token válido.
func RegisterRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	authn := AuthMiddleware(jwtSecret)
	admin := RequireRole(entity.RoleAdmin)

	v1 := app.Group("/api/v1", apiVersionTag(1))
	v2 := app.Group("/api/v2", apiVersionTag(2))

	// ── Categorías v1 ─────────────────────────────────────────────
	cat1 := v1.Group("/categories")
	cat1.Get("/", h.Categories.List)
	cat1.Get("/ordered", h.Categories.ListOrdered)
	cat1.Get("/exists/by-name/:name", h.Categories.ExistsByName)
	cat1.Get("/exists/:id", h.Categories.Exists)
	cat1.Get("/:id", h.Categories.GetByID)
	cat1.Post("/", authn, admin, h.Categories.Create)
	cat1.Put("/:id", authn, admin, h.Categories.Update)
	cat1.Delete("/:id", authn, admin, h.Categories.Delete)

	// ── Categorías v2 (lista por id, PATCH en lugar de PUT) ───────
	cat2 := v2.Group("/categories")
	cat2.Get("/", h.Categories.ListOrdered)
	cat2.Get("/:id", h.Categories.GetByID)
	cat2.Post("/", authn, admin, h.Categories.Create)
	cat2.Patch("/:id", authn, admin, h.Categories.Update)
	cat2.Delete("/:id", authn, admin, h.Categories.Delete)

	// ── Productos ─────────────────────────────────────────────────
	prod := v1.Group("/products")
	prod.Get("/", h.Products.List)
	prod.Get("/paged", h.Products.GetPage)
	prod.Get("/search/category/:categoryId", h.Products.ListByCategory)
	prod.Get("/search/:name", h.Products.Search)
	prod.Get("/:id", h.Products.GetByID)
	prod.Post("/", authn, admin, h.Products.Create)
	prod.Put("/:id", authn, admin, h.Products.Update)
	prod.Patch("/buy/:name/:quantity", authn, h.Products.Buy)
	prod.Delete("/:id", authn, admin, h.Products.Delete)

	// ── Compañías ─────────────────────────────────────────────────
	comp := v1.Group("/companies")
	comp.Get("/", h.Companies.List)
	comp.Get("/code/:code", h.Companies.GetByCode)
	comp.Get("/:id", h.Companies.GetByID)
	comp.Post("/", authn, admin, h.Companies.Create)
	comp.Put("/:id", authn, admin, h.Companies.Update)
	comp.Delete("/:id", authn, admin, h.Companies.Delete)

	// ── Roles ─────────────────────────────────────────────────────
	roles := v1.Group("/roles")
	roles.Get("/", h.Roles.List)
	roles.Get("/:id", h.Roles.GetByID)
	roles.Post("/", authn, admin, h.Roles.Create)
	roles.Put("/:id", authn, admin, h.Roles.Update)
	roles.Delete("/:id", authn, admin, h.Roles.Delete)

	// ── Usuarios (mismo comportamiento en v1 y v2) ────────────────
	for _, g := range []fiber.Router{v1, v2} {
		users := g.Group("/users")
		users.Post("/login", h.Users.Login)
		users.Post("/", h.Users.Register)
		users.Get("/", authn, admin, h.Users.List)
		users.Get("/:id", authn, admin, h.Users.GetByID)
	}
}
