// Package softdelete implementa el borrado lógico compartido por facturas y productos:
// la fila nunca se elimina, solo se marca is_deleted y se sella updated_at.
package softdelete

import (
	"context"
	"time"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

// Store lo mínimo que necesita el borrado lógico de un repositorio.
type Store[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	Save(ctx context.Context, rec *T) error
}

// Delete marca como borrado el registro id y lo devuelve.
// id <= 0 o inexistente devuelve (nil, nil). Borrar dos veces no es error.
func Delete[T any](ctx context.Context, s Store[T], id int64, now time.Time, mark func(rec *T, at time.Time)) (*T, error) {
	if id <= 0 {
		return nil, nil
	}
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	mark(rec, entity.StampTime(now))
	if err := s.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// MarkInvoice marca una factura como borrada. Totales y planilla no se tocan.
func MarkInvoice(inv *entity.Invoice, at time.Time) {
	inv.IsDeleted = true
	inv.UpdatedAt = at
}

// MarkProduct marca un producto como borrado. El precio no se toca.
func MarkProduct(p *entity.Product, at time.Time) {
	p.IsDeleted = true
	p.UpdatedAt = at
}
