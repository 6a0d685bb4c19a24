package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una venta.
// TotalWeight y TotalPrice los calcula el cliente y se guardan tal cual: el motor nunca los recalcula
// a partir de las líneas.
type Invoice struct {
	ID                 int64
	CustomerID         string
	CustomerName       string
	WeightGrid         WeightGrid
	TotalWeight        decimal.Decimal
	TotalPrice         decimal.Decimal
	DepreciationWeight decimal.NullDecimal // opcional: peso de merma
	IsPaid             bool
	IsDeleted          bool
	CreatedBy          string // username del creador (por valor, sin FK)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// InvoiceHeader campos de cabecera que aporta quien crea la factura.
type InvoiceHeader struct {
	CustomerID         string
	CustomerName       string
	WeightGrid         WeightGrid
	TotalWeight        decimal.Decimal
	TotalPrice         decimal.Decimal
	DepreciationWeight decimal.NullDecimal
	CreatedBy          string
}

// NewInvoice construye la cabecera de una factura pagada, con created/updated sellados en now.
func NewInvoice(h InvoiceHeader, now time.Time) *Invoice {
	ts := StampTime(now)
	grid := h.WeightGrid
	if grid == nil {
		grid = EmptyWeightGrid()
	}
	return &Invoice{
		CustomerID:         h.CustomerID,
		CustomerName:       h.CustomerName,
		WeightGrid:         grid,
		TotalWeight:        h.TotalWeight,
		TotalPrice:         h.TotalPrice,
		DepreciationWeight: h.DepreciationWeight,
		IsPaid:             true,
		CreatedBy:          h.CreatedBy,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
}
