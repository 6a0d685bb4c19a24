package billing

import (
	"context"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn dentro de una transacción con repos de factura, producto y líneas
// ligados a ella. Si fn retorna error se hace rollback y se devuelve ese mismo error.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
		lineRepo repository.LineItemRepository,
	) error) error
}

// InvoicePDFData datos que necesita la representación gráfica de una factura.
type InvoicePDFData struct {
	Invoice     *entity.Invoice
	CreatorName string
	Lines       []*entity.LineItem
}

// InvoicePDFGenerator genera el PDF de una factura (implementación en infrastructure/pdf).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoicePDFData) ([]byte, error)
}
