package billing

import (
	"context"
	"time"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/softdelete"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// InvoiceUseCase lectura y borrado lógico de facturas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	lineRepo    repository.LineItemRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. now nil usa time.Now.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	lineRepo repository.LineItemRepository,
	userRepo repository.UserRepository,
	now func() time.Time,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, lineRepo: lineRepo, userRepo: userRepo, now: now}
}

// GetByID devuelve la factura en cualquier estado de borrado; (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	inv, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(inv), nil
}

// GetDetail devuelve la factura no borrada con su creador, líneas y planilla.
// (nil, nil) si falta la factura, el usuario creador o las líneas.
func (uc *InvoiceUseCase) GetDetail(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	data, err := uc.loadDetail(ctx, id)
	if err != nil || data == nil {
		return nil, err
	}
	lines := make([]dto.LineItemResponse, 0, len(data.Lines))
	for _, li := range data.Lines {
		lines = append(lines, dto.ToLineItemResponse(li))
	}
	return &dto.InvoiceDetailResponse{
		InvoiceResponse: *dto.ToInvoiceResponse(data.Invoice),
		UserName:        data.CreatorName,
		WeightGrid:      data.Invoice.WeightGrid,
		ProductList:     lines,
	}, nil
}

// Delete borrado lógico; (nil, nil) para id <= 0 o inexistente.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := softdelete.Delete[entity.Invoice](ctx, uc.invoiceRepo, id, uc.now(), softdelete.MarkInvoice)
	if err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(inv), nil
}

func (uc *InvoiceUseCase) loadDetail(ctx context.Context, id int64) (*InvoicePDFData, error) {
	if id <= 0 {
		return nil, nil
	}
	inv, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.IsDeleted {
		return nil, nil
	}
	user, err := uc.userRepo.FindByUsername(ctx, inv.CreatedBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	lines, err := uc.lineRepo.FindByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return &InvoicePDFData{Invoice: inv, CreatorName: user.Name, Lines: lines}, nil
}
