package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

// InvoiceRow fila del listado de facturas con el nombre visible del creador.
type InvoiceRow struct {
	Invoice     *entity.Invoice
	CreatorName string // vacío si el usuario ya no existe
}

// DateStat suma de un día calendario.
type DateStat struct {
	Date   time.Time
	Weight decimal.Decimal
	Price  decimal.Decimal
}

// TotalStat suma global del rango.
type TotalStat struct {
	Weight decimal.Decimal
	Price  decimal.Decimal
}

// CustomerRef par cliente tal como quedó en cada factura.
type CustomerRef struct {
	CustomerID   string
	CustomerName string
}

// ProductStat peso vendido de un producto en el rango.
type ProductStat struct {
	ProductID  int64
	Name       string
	Order      int
	IsOriginal bool
	Weight     decimal.Decimal
}

// ReportRepository consultas de lectura para reportes. Todas excluyen facturas borradas.
type ReportRepository interface {
	ListInvoices(ctx context.Context, c InvoiceCriteria) ([]InvoiceRow, error)
	CountInvoices(ctx context.Context, c InvoiceCriteria) (int, error)

	// DateStats agrupa por día calendario (zona del negocio), día descendente.
	DateStats(ctx context.Context, r DateRange, page Page) ([]DateStat, error)
	CountDateStats(ctx context.Context, r DateRange) (int, error)

	// TotalStats devuelve nil cuando ninguna factura cae en el rango.
	TotalStats(ctx context.Context, r DateRange) (*TotalStat, error)

	// Customers devuelve un par por factura, en orden de id y sin deduplicar.
	Customers(ctx context.Context) ([]CustomerRef, error)

	// ProductStats suma el peso de las líneas por producto, ordenado por order del producto.
	ProductStats(ctx context.Context, r DateRange) ([]ProductStat, error)
}
