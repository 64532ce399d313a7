package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/application/usecase"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/infrastructure/storage"
)

// ImgURL por defecto cuando se envía img_url sin archivo (comportamiento heredado).
const placeholderImgURL = "https://placehold.com/600x400"

// ProductHandler maneja las peticiones HTTP para Product.
// La creación y actualización llegan como formulario multipart con imagen opcional.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	store *storage.ImageStore
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, store *storage.ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, store: store}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetPage godoc
// @Summary      Listar productos paginados
// @Tags         products
// @Produce      json
// @Param        page      query  int  false  "Página (>= 1)"       default(1)
// @Param        pageSize  query  int  false  "Tamaño de página"    default(10)
// @Success      200  {object}  dto.PaginationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/paged [get]
func (h *ProductHandler) GetPage(c *fiber.Ctx) error {
	// QueryInt devuelve el default ante texto no numérico; aquí eso es un 400.
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page <= 0 {
		return badRequest(c, "page debe ser un entero mayor que cero")
	}
	pageSize, err := strconv.Atoi(c.Query("pageSize", "10"))
	if err != nil || pageSize <= 0 {
		return badRequest(c, "pageSize debe ser un entero mayor que cero")
	}
	out, err := h.uc.GetPage(page, pageSize)
	if err != nil {
		return internalError(c, err)
	}
	// Compatibilidad v1: página sin resultados responde 404
	if len(out.Items) == 0 {
		return notFound(c, "no se encontraron productos")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "el producto con el id especificado no existe")
	}
	return c.JSON(out)
}

// ListByCategory lista los productos de una categoría; 404 si no hay ninguno.
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return badRequest(c, "categoryId inválido")
	}
	out, err := h.uc.ListByCategory(categoryID)
	if err != nil {
		return internalError(c, err)
	}
	if len(out) == 0 {
		return notFound(c, "no se encontraron productos para la categoría especificada")
	}
	return c.JSON(out)
}

// Search busca por nombre o descripción; 404 si no hay coincidencias.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Params("name")
	if term == "" {
		return badRequest(c, "name es requerido")
	}
	out, err := h.uc.Search(term)
	if err != nil {
		return internalError(c, err)
	}
	if len(out) == 0 {
		return notFound(c, "no se encontraron productos para el término especificado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (multipart con imagen opcional)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        description  formData  string  false  "Descripción"
// @Param        price        formData  string  true   "Precio decimal >= 0"
// @Param        sku          formData  string  true   "SKU único"
// @Param        stock        formData  int     true   "Stock inicial >= 0"
// @Param        category_id  formData  int     true   "Categoría existente"
// @Param        image        formData  file    false  "Imagen del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := h.parseProductForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Create(*in)
	if err != nil {
		return mapProductError(c, err)
	}
	c.Location(fmt.Sprintf("/api/v%d/products/%d", apiVersion(c), out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (multipart con imagen opcional)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	in, err := h.parseProductForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Update(id, *in); err != nil {
		return mapProductError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "el producto con el id especificado no existe")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Buy godoc
// @Summary      Comprar producto (decrementa stock de forma atómica)
// @Tags         products
// @Security     Bearer
// @Produce      plain
// @Param        name      path  string  true  "Nombre del producto (caseless)"
// @Param        quantity  path  int     true  "Cantidad > 0"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/buy/{name}/{quantity} [patch]
func (h *ProductHandler) Buy(c *fiber.Ctx) error {
	name := c.Params("name")
	qty, err := strconv.Atoi(c.Params("quantity"))
	if err != nil || qty <= 0 {
		return badRequest(c, "la cantidad debe ser mayor que cero")
	}
	if err := h.uc.Buy(c.Context(), name, qty); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "el nombre del producto no puede estar vacío")
		case domain.ErrNotFound:
			return notFound(c, "el producto con el nombre especificado no existe")
		case domain.ErrInsufficientStock:
			return badRequest(c, "no hay suficiente stock para completar la compra")
		}
		return internalError(c, err)
	}
	units := "unidades"
	if qty == 1 {
		units = "unidad"
	}
	return c.SendString(fmt.Sprintf("Compra exitosa de %d %s del producto '%s'.", qty, units, name))
}

// parseProductForm lee el formulario multipart y guarda la imagen si viene adjunta.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (*dto.CreateProductRequest, error) {
	price, err := decimal.NewFromString(c.FormValue("price", "0"))
	if err != nil {
		return nil, fmt.Errorf("price inválido")
	}
	stock, err := strconv.Atoi(c.FormValue("stock", "0"))
	if err != nil {
		return nil, fmt.Errorf("stock inválido")
	}
	categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, fmt.Errorf("category_id inválido")
	}

	in := dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		SKU:         c.FormValue("sku"),
		Stock:       stock,
		CategoryID:  categoryID,
		ImgURL:      c.FormValue("img_url"),
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la imagen")
		}
		defer src.Close()
		publicURL, localPath, err := h.store.Save(file.Filename, src)
		if err != nil {
			return nil, err
		}
		in.ImgURL = publicURL
		in.ImgURLLocal = localPath
	} else if in.ImgURL != "" {
		in.ImgURL = placeholderImgURL
	}
	return &in, nil
}

func mapProductError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return badRequest(c, "datos del producto inválidos")
	case domain.ErrDuplicate:
		return conflict(c, "ya existe un producto con ese nombre o SKU")
	case domain.ErrNotFound:
		return notFound(c, "la categoría especificada no existe")
	}
	return internalError(c, err)
}
