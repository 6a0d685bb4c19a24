package dto

import (
	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// CreateProductRequest entrada para crear un producto (el orden se asigna al final del catálogo).
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price"`
	IsOriginal bool            `json:"is_original"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no se tocan.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price      *decimal.Decimal `json:"price"`
	IsOriginal *bool            `json:"is_original"`
}

// ProductOrderItem nueva posición de un producto. Order nil se guarda como 0.
type ProductOrderItem struct {
	ID    int64 `json:"id" validate:"required,gt=0"`
	Order *int  `json:"order"`
}

// UpdateProductOrderRequest body de PUT /api/products/update-order.
type UpdateProductOrderRequest struct {
	List []ProductOrderItem `json:"list" validate:"dive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Order       int             `json:"order"`
	IsOriginal  bool            `json:"is_original"`
	IsDeleted   bool            `json:"is_deleted"`
	CreatedDate string          `json:"created_date"`
	UpdatedDate string          `json:"updated_date"`
}

// ProductStatsResponse producto con el peso vendido en el rango.
type ProductStatsResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Order       int             `json:"order"`
	IsOriginal  bool            `json:"is_original"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// ToProductResponse mapea un producto.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Order:       p.Order,
		IsOriginal:  p.IsOriginal,
		IsDeleted:   p.IsDeleted,
		CreatedDate: formatDateTime(p.CreatedAt),
		UpdatedDate: formatDateTime(p.UpdatedAt),
	}
}

// ToProductResponses mapea una lista de productos.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToProductResponse(p))
	}
	return out
}

// ToProductStatsResponses mapea las estadísticas por producto.
func ToProductStatsResponses(stats []repository.ProductStat) []ProductStatsResponse {
	out := make([]ProductStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, ProductStatsResponse{
			ID:          s.ProductID,
			Name:        s.Name,
			Order:       s.Order,
			IsOriginal:  s.IsOriginal,
			TotalWeight: s.Weight,
		})
	}
	return out
}
