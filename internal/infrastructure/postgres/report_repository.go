package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para reportes de ventas (read-only).
// Los días se agrupan en la zona del negocio, no en la del servidor.
type ReportRepo struct {
	q  Querier
	tz string
}

// NewReportRepository construye el adaptador; loc debe ser una zona IANA que PostgreSQL conozca.
func NewReportRepository(q Querier, loc *time.Location) *ReportRepo {
	tz := "UTC"
	if loc != nil {
		tz = loc.String()
	}
	return &ReportRepo{q: q, tz: tz}
}

func invoiceWhere(c repository.InvoiceCriteria) *where {
	w := &where{conds: []string{"i.is_deleted = FALSE"}}
	w.addRange("i.created_at", c.Range)
	if len(c.CustomerIDs) > 0 {
		w.add("i.customer_id = ANY($%d)", c.CustomerIDs)
	}
	return w
}

// rangeWhere filtra facturas no borradas del rango; pre son argumentos que ocupan los primeros placeholders.
func rangeWhere(r repository.DateRange, pre ...any) *where {
	w := &where{conds: []string{"i.is_deleted = FALSE"}, args: pre}
	w.addRange("i.created_at", r)
	return w
}

// ListInvoices facturas con el nombre del creador, id DESC.
func (r *ReportRepo) ListInvoices(ctx context.Context, c repository.InvoiceCriteria) ([]repository.InvoiceRow, error) {
	w := invoiceWhere(c)
	query := `
		SELECT ` + invoiceColumns + `, COALESCE(u.name, '')
		FROM invoices i
		LEFT JOIN users u ON u.username = i.created_by` +
		w.sql() + ` ORDER BY i.id DESC` + w.page(c.Page)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	out := []repository.InvoiceRow{}
	for rows.Next() {
		var creator string
		inv, err := scanInvoice(rows, &creator)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, repository.InvoiceRow{Invoice: inv, CreatorName: creator})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return out, nil
}

// CountInvoices mismo filtro que ListInvoices, sin página.
func (r *ReportRepo) CountInvoices(ctx context.Context, c repository.InvoiceCriteria) (int, error) {
	w := invoiceWhere(c)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices i`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// DateStats sumas por día (zona del negocio), día DESC.
func (r *ReportRepo) DateStats(ctx context.Context, dr repository.DateRange, page repository.Page) ([]repository.DateStat, error) {
	w := rangeWhere(dr, r.tz)
	query := `
		SELECT (i.created_at AT TIME ZONE $1)::date AS day,
			COALESCE(SUM(i.total_weight), 0),
			COALESCE(SUM(i.total_price), 0)
		FROM invoices i` + w.sql() + `
		GROUP BY day
		ORDER BY day DESC` + w.page(page)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("date stats: %w", err)
	}
	defer rows.Close()

	out := []repository.DateStat{}
	for rows.Next() {
		var s repository.DateStat
		if err := rows.Scan(&s.Date, &s.Weight, &s.Price); err != nil {
			return nil, fmt.Errorf("scan date stat: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("date stats: %w", err)
	}
	return out, nil
}

// CountDateStats número de días distintos con facturas.
func (r *ReportRepo) CountDateStats(ctx context.Context, dr repository.DateRange) (int, error) {
	w := rangeWhere(dr, r.tz)
	query := `SELECT COUNT(DISTINCT (i.created_at AT TIME ZONE $1)::date) FROM invoices i` + w.sql()
	var n int
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count date stats: %w", err)
	}
	return n, nil
}

// TotalStats nil cuando ninguna fila coincide.
func (r *ReportRepo) TotalStats(ctx context.Context, dr repository.DateRange) (*repository.TotalStat, error) {
	w := rangeWhere(dr)
	query := `
		SELECT COUNT(*), COALESCE(SUM(i.total_price), 0), COALESCE(SUM(i.total_weight), 0)
		FROM invoices i` + w.sql()
	var (
		n int
		t repository.TotalStat
	)
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&n, &t.Price, &t.Weight); err != nil {
		return nil, fmt.Errorf("total stats: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return &t, nil
}

// Customers un par por factura no borrada, por id.
func (r *ReportRepo) Customers(ctx context.Context) ([]repository.CustomerRef, error) {
	rows, err := r.q.Query(ctx, `SELECT customer_id, customer_name FROM invoices WHERE is_deleted = FALSE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	defer rows.Close()

	out := []repository.CustomerRef{}
	for rows.Next() {
		var c repository.CustomerRef
		if err := rows.Scan(&c.CustomerID, &c.CustomerName); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	return out, nil
}

// ProductStats peso vendido por producto (líneas de facturas no borradas), por sort_order.
func (r *ReportRepo) ProductStats(ctx context.Context, dr repository.DateRange) ([]repository.ProductStat, error) {
	w := rangeWhere(dr)
	w.conds = append(w.conds, "li.is_deleted = FALSE")
	query := `
		SELECT p.id, p.name, p.sort_order, p.is_original, COALESCE(SUM(li.product_weight), 0)
		FROM invoice_line_items li
		JOIN invoices i ON i.id = li.invoice_id
		JOIN products p ON p.id = li.product_id` + w.sql() + `
		GROUP BY p.id, p.name, p.sort_order, p.is_original
		ORDER BY p.sort_order ASC, p.id ASC`

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	defer rows.Close()

	out := []repository.ProductStat{}
	for rows.Next() {
		var s repository.ProductStat
		if err := rows.Scan(&s.ProductID, &s.Name, &s.Order, &s.IsOriginal, &s.Weight); err != nil {
			return nil, fmt.Errorf("scan product stat: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	return out, nil
}
