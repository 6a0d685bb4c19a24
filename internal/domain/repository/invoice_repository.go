package repository

import (
	"context"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para la cabecera de Invoice.
type InvoiceRepository interface {
	// Create inserta la cabecera y asigna invoice.ID.
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// Save hace upsert por id (usado por el borrado lógico).
	Save(ctx context.Context, invoice *entity.Invoice) error
}

// LineItemRepository define el puerto de persistencia para las líneas de factura.
type LineItemRepository interface {
	// CreateMany inserta todas las líneas en lote; un slice vacío no hace nada.
	CreateMany(ctx context.Context, items []*entity.LineItem) error
	// FindByInvoiceID devuelve las líneas no borradas con peso > 0, ordenadas por id.
	FindByInvoiceID(ctx context.Context, invoiceID int64) ([]*entity.LineItem, error)
}
