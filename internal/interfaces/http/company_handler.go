package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/application/usecase"
	"github.com/expanda/catalog-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar compañías
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/v1/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener compañía por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "la compañía con el id especificado no existe")
	}
	return c.JSON(out)
}

// GetByCode busca una compañía por su código único (caseless).
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return badRequest(c, "code es requerido")
	}
	out, err := h.uc.GetByCode(code)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "la compañía con el código especificado no existe")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear compañía
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company  body  dto.CreateCompanyRequest  true  "Compañía"
// @Success      201  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "datos de la compañía inválidos")
		case domain.ErrDuplicate:
			return conflict(c, "ya existe una compañía con ese código")
		}
		return internalError(c, err)
	}
	c.Location(fmt.Sprintf("/api/v%d/companies/%d", apiVersion(c), out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar compañía
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Param        id       path  int                       true  "ID de la compañía"
// @Param        company  body  dto.UpdateCompanyRequest  true  "Compañía"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	if err := h.uc.Update(id, in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "datos de la compañía inválidos")
		case domain.ErrNotFound:
			return notFound(c, "la compañía con el id especificado no existe")
		case domain.ErrDuplicate:
			return conflict(c, "ya existe una compañía con ese código")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar compañía
// @Tags         companies
// @Security     Bearer
// @Param        id  path  int  true  "ID de la compañía"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "la compañía con el id especificado no existe")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
