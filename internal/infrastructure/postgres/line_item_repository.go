package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// LineItemRepo líneas de factura sobre PostgreSQL. Usable con pool o tx.
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador.
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

// CreateMany inserta el lote con un pgx.Batch y asigna los IDs.
func (r *LineItemRepo) CreateMany(ctx context.Context, items []*entity.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `
		INSERT INTO invoice_line_items (invoice_id, product_id, product_name, product_price, product_order,
			product_weight, product_weight_list, product_is_original, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	b := &pgx.Batch{}
	for _, li := range items {
		list, err := entity.EncodeWeightList(li.ProductWeightList)
		if err != nil {
			return err
		}
		b.Queue(query,
			li.InvoiceID, li.ProductID, li.ProductName, li.ProductPrice, li.ProductOrder,
			li.ProductWeight, list, li.ProductIsOriginal, li.IsDeleted, li.CreatedAt, li.UpdatedAt,
		)
	}

	br := r.q.SendBatch(ctx, b)
	for i, li := range items {
		if err := br.QueryRow().Scan(&li.ID); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert line items (fila %d): %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert line items: %w", err)
	}
	return nil
}

// FindByInvoiceID líneas no borradas con peso > 0, por id.
func (r *LineItemRepo) FindByInvoiceID(ctx context.Context, invoiceID int64) ([]*entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, product_id, product_name, product_price, product_order,
			product_weight, product_weight_list, product_is_original, is_deleted, created_at, updated_at
		FROM invoice_line_items
		WHERE invoice_id = $1 AND is_deleted = FALSE AND product_weight > 0
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	list := []*entity.LineItem{}
	for rows.Next() {
		var (
			li      entity.LineItem
			weights string
		)
		if err := rows.Scan(&li.ID, &li.InvoiceID, &li.ProductID, &li.ProductName, &li.ProductPrice, &li.ProductOrder,
			&li.ProductWeight, &weights, &li.ProductIsOriginal, &li.IsDeleted, &li.CreatedAt, &li.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		if li.ProductWeightList, err = entity.DecodeWeightList(weights); err != nil {
			return nil, err
		}
		list = append(list, &li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	return list, nil
}
