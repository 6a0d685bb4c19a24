package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es el precio de la última venta, no un precio de lista: cada factura que lo referencia lo sobrescribe.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Order      int  // posición de visualización en el catálogo
	IsOriginal bool // marca de origen del producto
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProduct construye un producto listo para persistir con created/updated sellados en now.
func NewProduct(name string, price decimal.Decimal, order int, isOriginal bool, now time.Time) *Product {
	ts := StampTime(now)
	return &Product{
		Name:       name,
		Price:      price,
		Order:      order,
		IsOriginal: isOriginal,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}
