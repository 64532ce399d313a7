package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/expanda/catalog-api/internal/application/dto"
)

// Local key con la versión del API del grupo de rutas (1 o 2).
const localAPIVersion = "api_version"

// apiVersionTag fija la versión de API en Locals para construir Location headers.
func apiVersionTag(version int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localAPIVersion, version)
		return c.Next()
	}
}

func apiVersion(c *fiber.Ctx) int {
	if v, ok := c.Locals(localAPIVersion).(int); ok {
		return v
	}
	return 1
}

// paramID parsea un parámetro de ruta numérico positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msg})
}

func conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: msg})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
