package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/product"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// ProductHandler catálogo de productos de la organización (protegido).
type ProductHandler struct {
	uc  *product.UseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *product.UseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Description  image_url es una URL ya publicada; la API no recibe archivos.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetOrganizationID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOrganizationID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), GetOrganizationID(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Reemplaza todos los campos editables.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetOrganizationID(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetOrganizationID(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted successfully"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "id inválido"})
}
