package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem es la foto de un producto al momento de la venta (nombre, precio, orden y origen copiados),
// no un join vivo contra Product. Inmutable una vez escrita; nunca se persiste con peso cero.
type LineItem struct {
	ID                int64
	InvoiceID         int64
	ProductID         int64
	ProductName       string
	ProductPrice      decimal.Decimal
	ProductOrder      int
	ProductWeight     decimal.Decimal
	ProductWeightList []float64 // pesadas individuales, opcional
	ProductIsOriginal bool
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LineSnapshot datos del producto tal como vienen en la petición de venta.
type LineSnapshot struct {
	ProductID  int64
	Name       string
	Price      decimal.Decimal
	Order      int
	IsOriginal bool
	Weight     decimal.Decimal
	WeightList []float64
}

// NewLineItem construye la línea de la factura invoiceID a partir de la foto s.
func NewLineItem(invoiceID int64, s LineSnapshot, now time.Time) *LineItem {
	ts := StampTime(now)
	return &LineItem{
		InvoiceID:         invoiceID,
		ProductID:         s.ProductID,
		ProductName:       s.Name,
		ProductPrice:      s.Price,
		ProductOrder:      s.Order,
		ProductWeight:     s.Weight,
		ProductWeightList: s.WeightList,
		ProductIsOriginal: s.IsOriginal,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
}
