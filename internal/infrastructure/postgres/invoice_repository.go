package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `i.id, i.customer_id, i.customer_name, i.weight_grid, i.total_weight, i.total_price,
	i.depreciation_weight, i.is_paid, i.is_deleted, i.created_by, i.created_at, i.updated_at`

// InvoiceRepo implementación del puerto InvoiceRepository (cabecera). Usable con pool o tx.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta la cabecera y asigna inv.ID. La planilla se guarda como texto JSON.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	grid, err := entity.EncodeWeightGrid(inv.WeightGrid)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (customer_id, customer_name, weight_grid, total_weight, total_price,
			depreciation_weight, is_paid, is_deleted, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		inv.CustomerID, inv.CustomerName, grid, inv.TotalWeight, inv.TotalPrice,
		inv.DepreciationWeight, inv.IsPaid, inv.IsDeleted, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// FindByID obtiene la cabecera en cualquier estado de borrado.
func (r *InvoiceRepo) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Save upsert por id.
func (r *InvoiceRepo) Save(ctx context.Context, inv *entity.Invoice) error {
	grid, err := entity.EncodeWeightGrid(inv.WeightGrid)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (id, customer_id, customer_name, weight_grid, total_weight, total_price,
			depreciation_weight, is_paid, is_deleted, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			customer_name = EXCLUDED.customer_name,
			weight_grid = EXCLUDED.weight_grid,
			total_weight = EXCLUDED.total_weight,
			total_price = EXCLUDED.total_price,
			depreciation_weight = EXCLUDED.depreciation_weight,
			is_paid = EXCLUDED.is_paid,
			is_deleted = EXCLUDED.is_deleted,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.CustomerID, inv.CustomerName, grid, inv.TotalWeight, inv.TotalPrice,
		inv.DepreciationWeight, inv.IsPaid, inv.IsDeleted, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	return nil
}

// scanInvoice lee las columnas de invoiceColumns más los destinos extra (p. ej. el nombre del creador).
func scanInvoice(row pgx.Row, extra ...any) (*entity.Invoice, error) {
	var (
		inv  entity.Invoice
		grid string
	)
	dest := []any{
		&inv.ID, &inv.CustomerID, &inv.CustomerName, &grid, &inv.TotalWeight, &inv.TotalPrice,
		&inv.DepreciationWeight, &inv.IsPaid, &inv.IsDeleted, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	g, err := entity.DecodeWeightGrid(grid)
	if err != nil {
		return nil, err
	}
	inv.WeightGrid = g
	return &inv, nil
}
