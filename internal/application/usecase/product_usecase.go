package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/softdelete"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// ProductUseCase catálogo de productos. El precio lo mantiene la creación de facturas.
type ProductUseCase struct {
	repo     repository.ProductRepository
	pageSize int
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pageSize int, now func() time.Time) *ProductUseCase {
	if pageSize <= 0 {
		pageSize = repository.DefaultPageSize
	}
	if now == nil {
		now = time.Now
	}
	return &ProductUseCase{repo: repo, pageSize: pageSize, now: now}
}

// List productos no borrados por order ASC, con el total del catálogo.
func (uc *ProductUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	criteria := repository.ProductCriteria{Page: repository.NewPage(q.Page, uc.pageSize)}
	var (
		total    int
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.repo.Count(gctx, criteria)
		total = n
		return err
	})
	g.Go(func() error {
		list, err := uc.repo.List(gctx, criteria)
		products = list
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.ListResponse[dto.ProductResponse]{Items: dto.ToProductResponses(products), Total: total}, nil
}

// GetByID obtiene un producto, borrado o no; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Create agrega el producto al final del catálogo (order = cantidad actual + 1).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	count, err := uc.repo.Count(ctx, repository.ProductCriteria{})
	if err != nil {
		return nil, err
	}
	product := entity.NewProduct(in.Name, in.Price, count+1, in.IsOriginal, uc.now())
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Update modifica nombre, precio y/o origen; (nil, nil) si no existe o está borrado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.IsOriginal != nil {
		product.IsOriginal = *in.IsOriginal
	}
	product.UpdatedAt = entity.StampTime(uc.now())
	if err := uc.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete borrado lógico; (nil, nil) para id <= 0 o inexistente.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := softdelete.Delete[entity.Product](ctx, uc.repo, id, uc.now(), softdelete.MarkProduct)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// UpdateOrder reasigna la posición de los productos en un solo lote.
// Lista vacía devuelve false. Los ids que no existen se ignoran y order ausente se guarda como 0.
func (uc *ProductUseCase) UpdateOrder(ctx context.Context, list []dto.ProductOrderItem) (bool, error) {
	if len(list) == 0 {
		return false, nil
	}
	ids := make([]int64, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.ID)
	}
	products, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	ts := entity.StampTime(uc.now())
	for _, p := range products {
		p.Order = 0
		for _, item := range list {
			if item.ID == p.ID {
				if item.Order != nil {
					p.Order = *item.Order
				}
				break
			}
		}
		p.UpdatedAt = ts
	}
	if err := uc.repo.SaveMany(ctx, products); err != nil {
		return false, err
	}
	return true, nil
}
