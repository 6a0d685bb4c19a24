package dto

import (
	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// CreateInvoiceRequest body para POST /api/invoices.
// Los totales los calcula el cliente; created_by lo pone el handler con el usuario del token.
type CreateInvoiceRequest struct {
	CustomerID         string               `json:"customer_id" validate:"required,max=100"`
	CustomerName       string               `json:"customer_name" validate:"max=200"`
	WeightGrid         entity.WeightGrid    `json:"weight_grid"`
	ProductList        []InvoiceItemRequest `json:"product_list" validate:"required,min=1,dive"`
	TotalPrice         decimal.Decimal      `json:"total_price"`
	TotalWeight        decimal.Decimal      `json:"total_weight"`
	DepreciationWeight decimal.NullDecimal  `json:"depreciation_weight"`
	CreatedBy          string               `json:"-"`
}

// InvoiceItemRequest línea pedida: foto del producto + peso vendido.
type InvoiceItemRequest struct {
	ProductID         int64           `json:"product_id" validate:"required,gt=0"`
	ProductName       string          `json:"product_name" validate:"max=200"`
	ProductPrice      decimal.Decimal `json:"product_price"`
	ProductOrder      int             `json:"product_order"`
	ProductWeight     decimal.Decimal `json:"product_weight"`
	ProductWeightList []float64       `json:"product_weight_list,omitempty"`
	ProductIsOriginal bool            `json:"product_is_original"`
}

// InvoiceListQuery filtros de GET /api/invoices.
type InvoiceListQuery struct {
	DateRangeQuery
	PageQuery
	CustomerIDList []string `query:"customer_id_list"`
}

// DateStatsQuery filtros de GET /api/invoices/date-stats-list.
type DateStatsQuery struct {
	DateRangeQuery
	PageQuery
}

// InvoiceResponse cabecera de factura.
type InvoiceResponse struct {
	ID                 int64               `json:"id"`
	CustomerID         string              `json:"customer_id"`
	CustomerName       string              `json:"customer_name"`
	TotalWeight        decimal.Decimal     `json:"total_weight"`
	DepreciationWeight decimal.NullDecimal `json:"depreciation_weight"`
	TotalPrice         decimal.Decimal     `json:"total_price"`
	IsPaid             bool                `json:"is_paid"`
	IsDeleted          bool                `json:"is_deleted"`
	CreatedBy          string              `json:"created_by"`
	CreatedDate        string              `json:"created_date"`
	UpdatedDate        string              `json:"updated_date"`
}

// InvoiceListItemResponse fila del listado con el nombre del creador.
type InvoiceListItemResponse struct {
	InvoiceResponse
	UserName string `json:"user_name"`
}

// InvoiceDetailResponse respuesta de GET /api/invoices/:id.
type InvoiceDetailResponse struct {
	InvoiceResponse
	UserName    string             `json:"user_name"`
	WeightGrid  entity.WeightGrid  `json:"weight_grid"`
	ProductList []LineItemResponse `json:"product_list"`
}

// LineItemResponse línea de factura.
type LineItemResponse struct {
	ID                int64           `json:"id"`
	InvoiceID         int64           `json:"invoice_id"`
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	ProductPrice      decimal.Decimal `json:"product_price"`
	ProductOrder      int             `json:"product_order"`
	ProductWeight     decimal.Decimal `json:"product_weight"`
	ProductWeightList []float64       `json:"product_weight_list,omitempty"`
	ProductIsOriginal bool            `json:"product_is_original"`
}

// DateStatsResponse suma de un día (date en dd/mm/yyyy).
type DateStatsResponse struct {
	Date        string          `json:"date"`
	TotalWeight decimal.Decimal `json:"total_weight"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// TotalStatsResponse suma global del rango.
type TotalStatsResponse struct {
	TotalPrice  decimal.Decimal `json:"total_price"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// CustomerResponse par cliente de una factura.
type CustomerResponse struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

// ToInvoiceResponse mapea la cabecera.
func ToInvoiceResponse(inv *entity.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{
		ID:                 inv.ID,
		CustomerID:         inv.CustomerID,
		CustomerName:       inv.CustomerName,
		TotalWeight:        inv.TotalWeight,
		DepreciationWeight: inv.DepreciationWeight,
		TotalPrice:         inv.TotalPrice,
		IsPaid:             inv.IsPaid,
		IsDeleted:          inv.IsDeleted,
		CreatedBy:          inv.CreatedBy,
		CreatedDate:        formatDateTime(inv.CreatedAt),
		UpdatedDate:        formatDateTime(inv.UpdatedAt),
	}
}

// ToInvoiceListItems mapea las filas del reporte.
func ToInvoiceListItems(rows []repository.InvoiceRow) []InvoiceListItemResponse {
	out := make([]InvoiceListItemResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, InvoiceListItemResponse{
			InvoiceResponse: *ToInvoiceResponse(r.Invoice),
			UserName:        r.CreatorName,
		})
	}
	return out
}

// ToLineItemResponse mapea una línea.
func ToLineItemResponse(li *entity.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                li.ID,
		InvoiceID:         li.InvoiceID,
		ProductID:         li.ProductID,
		ProductName:       li.ProductName,
		ProductPrice:      li.ProductPrice,
		ProductOrder:      li.ProductOrder,
		ProductWeight:     li.ProductWeight,
		ProductWeightList: li.ProductWeightList,
		ProductIsOriginal: li.ProductIsOriginal,
	}
}

// ToDateStatsResponses formatea los días como dd/mm/yyyy.
func ToDateStatsResponses(stats []repository.DateStat) []DateStatsResponse {
	out := make([]DateStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, DateStatsResponse{
			Date:        s.Date.Format(DateLayout),
			TotalWeight: s.Weight,
			TotalPrice:  s.Price,
		})
	}
	return out
}

// ToCustomerResponses mapea los pares cliente.
func ToCustomerResponses(refs []repository.CustomerRef) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, CustomerResponse{CustomerID: r.CustomerID, CustomerName: r.CustomerName})
	}
	return out
}
