package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo reportes calculados sobre el contenido de la store.
type ReportRepo struct {
	h handle
}

// liveInvoices facturas no borradas que pasan el filtro, por id ASC.
func (r *ReportRepo) liveInvoices(match func(inv *entity.Invoice) bool) []*entity.Invoice {
	out := []*entity.Invoice{}
	for _, inv := range r.h.s.invoices {
		inv := inv
		if inv.IsDeleted || !match(&inv) {
			continue
		}
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func matchCriteria(c repository.InvoiceCriteria) func(inv *entity.Invoice) bool {
	return func(inv *entity.Invoice) bool {
		return c.Range.Contains(inv.CreatedAt) && c.MatchesCustomer(inv.CustomerID)
	}
}

func matchRange(dr repository.DateRange) func(inv *entity.Invoice) bool {
	return func(inv *entity.Invoice) bool { return dr.Contains(inv.CreatedAt) }
}

func (r *ReportRepo) ListInvoices(ctx context.Context, c repository.InvoiceCriteria) ([]repository.InvoiceRow, error) {
	defer r.h.lock()()
	invs := r.liveInvoices(matchCriteria(c))
	sort.Slice(invs, func(i, j int) bool { return invs[i].ID > invs[j].ID })

	rows := make([]repository.InvoiceRow, 0, len(invs))
	for _, inv := range paginate(invs, c.Page) {
		row := repository.InvoiceRow{Invoice: inv}
		if u, ok := r.h.s.users[inv.CreatedBy]; ok {
			row.CreatorName = u.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *ReportRepo) CountInvoices(ctx context.Context, c repository.InvoiceCriteria) (int, error) {
	defer r.h.lock()()
	return len(r.liveInvoices(matchCriteria(c))), nil
}

func (r *ReportRepo) dayBuckets(dr repository.DateRange) []repository.DateStat {
	byDay := map[time.Time]*repository.DateStat{}
	for _, inv := range r.liveInvoices(matchRange(dr)) {
		t := inv.CreatedAt.In(r.h.s.loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		s, ok := byDay[day]
		if !ok {
			s = &repository.DateStat{Date: day, Weight: decimal.Zero, Price: decimal.Zero}
			byDay[day] = s
		}
		s.Weight = s.Weight.Add(inv.TotalWeight)
		s.Price = s.Price.Add(inv.TotalPrice)
	}
	out := make([]repository.DateStat, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *ReportRepo) DateStats(ctx context.Context, dr repository.DateRange, page repository.Page) ([]repository.DateStat, error) {
	defer r.h.lock()()
	return paginate(r.dayBuckets(dr), page), nil
}

func (r *ReportRepo) CountDateStats(ctx context.Context, dr repository.DateRange) (int, error) {
	defer r.h.lock()()
	return len(r.dayBuckets(dr)), nil
}

func (r *ReportRepo) TotalStats(ctx context.Context, dr repository.DateRange) (*repository.TotalStat, error) {
	defer r.h.lock()()
	invs := r.liveInvoices(matchRange(dr))
	if len(invs) == 0 {
		return nil, nil
	}
	total := &repository.TotalStat{Weight: decimal.Zero, Price: decimal.Zero}
	for _, inv := range invs {
		total.Weight = total.Weight.Add(inv.TotalWeight)
		total.Price = total.Price.Add(inv.TotalPrice)
	}
	return total, nil
}

func (r *ReportRepo) Customers(ctx context.Context) ([]repository.CustomerRef, error) {
	defer r.h.lock()()
	invs := r.liveInvoices(func(*entity.Invoice) bool { return true })
	out := make([]repository.CustomerRef, 0, len(invs))
	for _, inv := range invs {
		out = append(out, repository.CustomerRef{CustomerID: inv.CustomerID, CustomerName: inv.CustomerName})
	}
	return out, nil
}

func (r *ReportRepo) ProductStats(ctx context.Context, dr repository.DateRange) ([]repository.ProductStat, error) {
	defer r.h.lock()()
	live := map[int64]bool{}
	for _, inv := range r.liveInvoices(matchRange(dr)) {
		live[inv.ID] = true
	}
	byProduct := map[int64]*repository.ProductStat{}
	for _, li := range r.h.s.lines {
		if li.IsDeleted || !live[li.InvoiceID] {
			continue
		}
		p, ok := r.h.s.products[li.ProductID]
		if !ok {
			continue
		}
		s, ok := byProduct[p.ID]
		if !ok {
			s = &repository.ProductStat{ProductID: p.ID, Name: p.Name, Order: p.Order, IsOriginal: p.IsOriginal, Weight: decimal.Zero}
			byProduct[p.ID] = s
		}
		s.Weight = s.Weight.Add(li.ProductWeight)
	}
	out := make([]repository.ProductStat, 0, len(byProduct))
	for _, s := range byProduct {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}
