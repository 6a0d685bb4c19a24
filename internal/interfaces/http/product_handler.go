package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	reports  *usecase.ReportUseCase
	validate *RequestValidator
	log      *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reports *usecase.ReportUseCase, validate *RequestValidator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports, validate: validate, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "página (1-indexada)"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "product.list", err)
	}
	return c.JSON(out)
}

// StatsList godoc
// @Summary      Peso vendido por producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ListResponse[dto.ProductStatsResponse]
// @Router       /api/products/stats-list [get]
func (h *ProductHandler) StatsList(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	if msg := h.validate.Validate(q); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.reports.ProductStats(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "product.stats", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
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
		return validationFailed(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "product.get", err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, "product.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateOrder godoc
// @Summary      Reordenar catálogo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductOrderRequest  true  "ids y posiciones"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/update-order [put]
func (h *ProductHandler) UpdateOrder(c *fiber.Ctx) error {
	var in dto.UpdateProductOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	ok, err := h.uc.UpdateOrder(c.Context(), in.List)
	if err != nil {
		return writeError(c, h.log, "product.update_order", err)
	}
	if !ok {
		return validationFailed(c, "lista vacía")
	}
	return c.JSON(dto.MessageResponse{Message: "orden actualizado"})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return validationFailed(c, "id inválido")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, h.log, "product.update", err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto (lógico)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return validationFailed(c, "id inválido")
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "product.delete", err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}
