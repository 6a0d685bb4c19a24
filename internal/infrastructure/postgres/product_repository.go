package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, sort_order, is_original, is_deleted, created_at, updated_at`

const upsertProductSQL = `
	INSERT INTO products (id, name, price, sort_order, is_original, is_deleted, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		price = EXCLUDED.price,
		sort_order = EXCLUDED.sort_order,
		is_original = EXCLUDED.is_original,
		is_deleted = EXCLUDED.is_deleted,
		updated_at = EXCLUDED.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, price, sort_order, is_original, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Price, p.Order, p.IsOriginal, p.IsDeleted, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por ID (borrado o no).
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindByIDs resuelve los ids en orden de id; los inexistentes se omiten.
func (r *ProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id`
	return r.queryProducts(ctx, "find products", query, ids)
}

// List productos por sort_order ASC (y id para desempatar).
func (r *ProductRepo) List(ctx context.Context, c repository.ProductCriteria) ([]*entity.Product, error) {
	w := productWhere(c)
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() + ` ORDER BY sort_order ASC, id ASC` + w.page(c.Page)
	return r.queryProducts(ctx, "list products", query, w.args...)
}

// Count cuenta los productos del criterio (ignora la página).
func (r *ProductRepo) Count(ctx context.Context, c repository.ProductCriteria) (int, error) {
	w := productWhere(c)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Save upsert por id.
func (r *ProductRepo) Save(ctx context.Context, p *entity.Product) error {
	if _, err := r.q.Exec(ctx, upsertProductSQL, productArgs(p)...); err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// SaveMany upsert de todo el lote en un único pgx.Batch.
func (r *ProductRepo) SaveMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, p := range products {
		b.Queue(upsertProductSQL, productArgs(p)...)
	}
	return execBatch(r.q.SendBatch(ctx, b), len(products), "save products")
}

func (r *ProductRepo) queryProducts(ctx context.Context, what, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	defer rows.Close()

	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", what, err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return list, nil
}

func productWhere(c repository.ProductCriteria) *where {
	w := &where{}
	if !c.IncludeDeleted {
		w.conds = append(w.conds, "is_deleted = FALSE")
	}
	return w
}

func productArgs(p *entity.Product) []any {
	return []any{p.ID, p.Name, p.Price, p.Order, p.IsOriginal, p.IsDeleted, p.CreatedAt, p.UpdatedAt}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Order, &p.IsOriginal, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
