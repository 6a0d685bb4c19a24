package repository

import (
	"context"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// FindByID devuelve (nil, nil) si no existe, incluya o no los borrados.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByIDs resuelve los ids dados; los que no existen se omiten sin error.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	List(ctx context.Context, c ProductCriteria) ([]*entity.Product, error)
	Count(ctx context.Context, c ProductCriteria) (int, error)
	// Save hace upsert por id.
	Save(ctx context.Context, product *entity.Product) error
	// SaveMany persiste el lote completo en una sola ida al almacén.
	SaveMany(ctx context.Context, products []*entity.Product) error
}
