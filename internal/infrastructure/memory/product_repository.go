package memory

import (
	"context"
	"sort"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria. Guarda y devuelve copias.
type ProductRepo struct {
	h handle
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	defer r.h.lock()()
	r.h.s.nextProduct++
	p.ID = r.h.s.nextProduct
	r.h.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	defer r.h.lock()()
	p, ok := r.h.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	defer r.h.lock()()
	seen := map[int64]bool{}
	out := []*entity.Product{}
	for _, id := range ids {
		p, ok := r.h.s.products[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) List(ctx context.Context, c repository.ProductCriteria) ([]*entity.Product, error) {
	defer r.h.lock()()
	all := r.filter(c)
	sort.Slice(all, func(i, j int) bool {
		if all[i].Order != all[j].Order {
			return all[i].Order < all[j].Order
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, c.Page), nil
}

func (r *ProductRepo) Count(ctx context.Context, c repository.ProductCriteria) (int, error) {
	defer r.h.lock()()
	return len(r.filter(c)), nil
}

func (r *ProductRepo) Save(ctx context.Context, p *entity.Product) error {
	defer r.h.lock()()
	r.h.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) SaveMany(ctx context.Context, products []*entity.Product) error {
	defer r.h.lock()()
	for _, p := range products {
		r.h.s.products[p.ID] = *p
	}
	return nil
}

func (r *ProductRepo) filter(c repository.ProductCriteria) []*entity.Product {
	out := []*entity.Product{}
	for _, p := range r.h.s.products {
		if p.IsDeleted && !c.IncludeDeleted {
			continue
		}
		p := p
		out = append(out, &p)
	}
	return out
}

// paginate aplica la página 1-indexada sobre una lista ya ordenada.
func paginate[T any](list []T, p repository.Page) []T {
	if !p.Enabled() {
		return list
	}
	start := p.Offset()
	if start >= len(list) {
		return []T{}
	}
	end := start + p.Limit()
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
