package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de facturas y reportes (protegido).
type InvoiceHandler struct {
	create   *billing.CreateInvoiceUseCase
	invoices *billing.InvoiceUseCase
	pdf      *billing.PDFUseCase
	reports  *usecase.ReportUseCase
	validate *RequestValidator
	log      *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	create *billing.CreateInvoiceUseCase,
	invoices *billing.InvoiceUseCase,
	pdf *billing.PDFUseCase,
	reports *usecase.ReportUseCase,
	validate *RequestValidator,
	log *logger.Logger,
) *InvoiceHandler {
	return &InvoiceHandler{create: create, invoices: invoices, pdf: pdf, reports: reports, validate: validate, log: log}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        start_date        query  string  false  "YYYY-MM-DD"
// @Param        end_date          query  string  false  "YYYY-MM-DD"
// @Param        customer_id_list  query  []string  false  "códigos de cliente"
// @Param        page              query  int     false  "página (1-indexada)"
// @Success      200  {object}  dto.ListResponse[dto.InvoiceListItemResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceListQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	if msg := h.validate.Validate(q); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.reports.ListInvoices(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "invoice.list", err)
	}
	return c.JSON(out)
}

// DateStatsList godoc
// @Summary      Totales por día
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        page        query  int     false  "página (1-indexada)"
// @Success      200  {object}  dto.ListResponse[dto.DateStatsResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices/date-stats-list [get]
func (h *InvoiceHandler) DateStatsList(c *fiber.Ctx) error {
	var q dto.DateStatsQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	if msg := h.validate.Validate(q); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.reports.DateStats(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "invoice.date_stats", err)
	}
	return c.JSON(out)
}

// CustomerList godoc
// @Summary      Clientes con facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CustomerResponse]
// @Router       /api/invoices/customer-list [get]
func (h *InvoiceHandler) CustomerList(c *fiber.Ctx) error {
	out, err := h.reports.CustomerList(c.Context())
	if err != nil {
		return writeError(c, h.log, "invoice.customer_list", err)
	}
	return c.JSON(out)
}

// TotalStats godoc
// @Summary      Totales del rango
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.TotalStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/total-stats [get]
func (h *InvoiceHandler) TotalStats(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	if msg := h.validate.Validate(q); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.reports.TotalStats(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "invoice.total_stats", err)
	}
	if out == nil {
		return notFound(c, "no hay facturas en el rango")
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetDetail(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return validationFailed(c, "id inválido")
	}
	out, err := h.invoices.GetDetail(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "invoice.detail", err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Descargar PDF de factura
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) GetPDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return validationFailed(c, "id inválido")
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "invoice.pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Create godoc
// @Summary      Crear factura
// @Description  Inserta cabecera y líneas y actualiza el precio de catálogo en una sola transacción.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	username := GetUsername(c)
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	in.CreatedBy = username
	ok, err := h.create.CreateInvoice(c.Context(), &in)
	if err != nil {
		return writeError(c, h.log, "invoice.create", err)
	}
	if !ok {
		return validationFailed(c, "ningún producto de la factura existe en el catálogo")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "factura creada"})
}

// Delete godoc
// @Summary      Borrar factura (lógico)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return validationFailed(c, "id inválido")
	}
	existing, err := h.invoices.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "invoice.delete", err)
	}
	if existing == nil {
		return notFound(c, "factura no encontrada")
	}
	out, err := h.invoices.Delete(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, "invoice.delete", err)
	}
	if out == nil {
		return notFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}
