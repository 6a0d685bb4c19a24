package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// CreateInvoiceUseCase crea la factura, actualiza el precio de catálogo y guarda las líneas
// en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner    InvoiceTxRunner
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso. now nil usa time.Now.
func NewCreateInvoiceUseCase(txRunner InvoiceTxRunner, productRepo repository.ProductRepository, now func() time.Time) *CreateInvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreateInvoiceUseCase{txRunner: txRunner, productRepo: productRepo, now: now}
}

// CreateInvoice devuelve (false, nil) si la petición está vacía o ningún producto existe; en ese caso
// no se abre transacción. Cualquier error dentro de la transacción deshace todo y se devuelve sin envolver.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in *dto.CreateInvoiceRequest) (bool, error) {
	if in == nil || len(in.ProductList) == 0 {
		return false, nil
	}

	// Productos resueltos fuera de la tx (solo lectura). Se incluyen los borrados.
	ids := make([]int64, 0, len(in.ProductList))
	for _, item := range in.ProductList {
		ids = append(ids, item.ProductID)
	}
	products, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	if len(products) == 0 {
		return false, nil
	}

	now := uc.now()
	err = uc.txRunner.RunInvoice(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
		lineRepo repository.LineItemRepository,
	) error {
		// 1) Cabecera con los totales tal como vienen
		inv := entity.NewInvoice(entity.InvoiceHeader{
			CustomerID:         in.CustomerID,
			CustomerName:       in.CustomerName,
			WeightGrid:         in.WeightGrid,
			TotalWeight:        in.TotalWeight,
			TotalPrice:         in.TotalPrice,
			DepreciationWeight: in.DepreciationWeight,
			CreatedBy:          in.CreatedBy,
		}, now)
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}

		// 2) Precio de catálogo = último precio vendido
		syncCatalogPrices(products, in.ProductList, now)
		if err := productRepo.SaveMany(ctx, products); err != nil {
			return err
		}

		// 3) Líneas con peso > 0, fotografiadas desde la petición
		return lineRepo.CreateMany(ctx, buildLineItems(inv.ID, in.ProductList, now))
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// syncCatalogPrices pone en cada producto el precio de la primera línea pedida con su id.
// Un producto resuelto sin línea que lo pida queda a cero.
func syncCatalogPrices(products []*entity.Product, items []dto.InvoiceItemRequest, now time.Time) {
	ts := entity.StampTime(now)
	for _, p := range products {
		price := decimal.Zero
		for _, item := range items {
			if item.ProductID == p.ID {
				price = item.ProductPrice
				break
			}
		}
		p.Price = price
		p.UpdatedAt = ts
	}
}

func buildLineItems(invoiceID int64, items []dto.InvoiceItemRequest, now time.Time) []*entity.LineItem {
	lines := make([]*entity.LineItem, 0, len(items))
	for _, item := range items {
		if !item.ProductWeight.GreaterThan(decimal.Zero) {
			continue
		}
		lines = append(lines, entity.NewLineItem(invoiceID, entity.LineSnapshot{
			ProductID:  item.ProductID,
			Name:       item.ProductName,
			Price:      item.ProductPrice,
			Order:      item.ProductOrder,
			IsOriginal: item.ProductIsOriginal,
			Weight:     item.ProductWeight,
			WeightList: item.ProductWeightList,
		}, now))
	}
	return lines
}
