package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/application/usecase"
	"github.com/expanda/catalog-api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category.
// Sirve las dos formas versionadas: v1 (PUT para actualizar, listado por
// nombre con /ordered aparte) y v2 (PATCH para actualizar, listado por id).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías (orden por nombre)
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListOrdered godoc
// @Summary      Listar categorías (orden por id)
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/v1/categories/ordered [get]
func (h *CategoryHandler) ListOrdered(c *fiber.Ctx) error {
	out, err := h.uc.ListOrdered()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "la categoría con el id especificado no existe")
	}
	return c.JSON(out)
}

// Exists responde {exists: bool} para el ID dado.
func (h *CategoryHandler) Exists(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	exists, err := h.uc.Exists(id)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: exists})
}

// ExistsByName responde {exists: bool} para el nombre dado (caseless).
func (h *CategoryHandler) ExistsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "name es requerido")
	}
	exists, err := h.uc.ExistsByName(name)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: exists})
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre (3–100 caracteres)"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "name debe tener entre 3 y 100 caracteres")
		case domain.ErrDuplicate:
			return conflict(c, "la categoría ya existe")
		}
		return internalError(c, err)
	}
	c.Location(fmt.Sprintf("/api/v%d/categories/%d", apiVersion(c), out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (PUT en v1, PATCH en v2)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.CreateCategoryRequest  true  "Nuevo nombre"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.Update(id, in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "name debe tener entre 3 y 100 caracteres")
		case domain.ErrNotFound:
			return notFound(c, "la categoría con el id especificado no existe")
		case domain.ErrDuplicate:
			return conflict(c, "la categoría ya existe")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		switch err {
		case domain.ErrNotFound:
			return notFound(c, "la categoría con el id especificado no existe")
		case domain.ErrCategoryInUse:
			return conflict(c, "la categoría tiene productos asociados")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
