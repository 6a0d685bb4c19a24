package memory

import (
	"context"
	"sort"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
	_ repository.LineItemRepository = (*LineItemRepo)(nil)
)

// InvoiceRepo cabeceras de factura en memoria.
type InvoiceRepo struct {
	h handle
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	defer r.h.lock()()
	r.h.s.nextInvoice++
	inv.ID = r.h.s.nextInvoice
	r.h.s.invoices[inv.ID] = cloneInvoice(*inv)
	return nil
}

func (r *InvoiceRepo) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	defer r.h.lock()()
	inv, ok := r.h.s.invoices[id]
	if !ok {
		return nil, nil
	}
	inv = cloneInvoice(inv)
	return &inv, nil
}

func (r *InvoiceRepo) Save(ctx context.Context, inv *entity.Invoice) error {
	defer r.h.lock()()
	r.h.s.invoices[inv.ID] = cloneInvoice(*inv)
	return nil
}

// LineItemRepo líneas de factura en memoria.
type LineItemRepo struct {
	h handle
}

func (r *LineItemRepo) CreateMany(ctx context.Context, items []*entity.LineItem) error {
	defer r.h.lock()()
	for _, li := range items {
		r.h.s.nextLine++
		li.ID = r.h.s.nextLine
		r.h.s.lines[li.ID] = cloneLine(*li)
	}
	return nil
}

func (r *LineItemRepo) FindByInvoiceID(ctx context.Context, invoiceID int64) ([]*entity.LineItem, error) {
	defer r.h.lock()()
	out := []*entity.LineItem{}
	for _, li := range r.h.s.lines {
		if li.InvoiceID != invoiceID || li.IsDeleted || !li.ProductWeight.IsPositive() {
			continue
		}
		li := cloneLine(li)
		out = append(out, &li)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// La store guarda copias propias de la planilla y de las pesadas: lo que entra o sale
// no comparte slices con lo guardado.

func cloneGrid(g entity.WeightGrid) entity.WeightGrid {
	if g == nil {
		return nil
	}
	out := make(entity.WeightGrid, len(g))
	for i, row := range g {
		if row == nil {
			continue
		}
		out[i] = make([]*float64, len(row))
		for j, cell := range row {
			if cell != nil {
				v := *cell
				out[i][j] = &v
			}
		}
	}
	return out
}

func cloneInvoice(inv entity.Invoice) entity.Invoice {
	inv.WeightGrid = cloneGrid(inv.WeightGrid)
	return inv
}

func cloneLine(li entity.LineItem) entity.LineItem {
	if li.ProductWeightList != nil {
		li.ProductWeightList = append([]float64(nil), li.ProductWeightList...)
	}
	return li
}
