package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// ReportUseCase listados y agregados de ventas. Las facturas borradas nunca cuentan.
type ReportUseCase struct {
	repo     repository.ReportRepository
	loc      *time.Location
	pageSize int
}

// NewReportUseCase construye el caso de uso; loc es la zona del negocio en la que se
// interpretan las fechas y pageSize <= 0 usa repository.DefaultPageSize.
func NewReportUseCase(repo repository.ReportRepository, loc *time.Location, pageSize int) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	if pageSize <= 0 {
		pageSize = repository.DefaultPageSize
	}
	return &ReportUseCase{repo: repo, loc: loc, pageSize: pageSize}
}

// ListInvoices devuelve la página pedida y el total del filtro. Cuenta y página se consultan en paralelo.
// Si hay filas pero la página queda vacía devuelve domain.ErrNoData.
func (uc *ReportUseCase) ListInvoices(ctx context.Context, q dto.InvoiceListQuery) (*dto.ListResponse[dto.InvoiceListItemResponse], error) {
	criteria, err := uc.invoiceCriteria(q)
	if err != nil {
		return nil, err
	}

	var (
		total int
		rows  []repository.InvoiceRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.repo.CountInvoices(gctx, criteria)
		total = n
		return err
	})
	g.Go(func() error {
		r, err := uc.repo.ListInvoices(gctx, criteria)
		rows = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	if total > 0 && len(rows) == 0 {
		return nil, domain.ErrNoData
	}
	return &dto.ListResponse[dto.InvoiceListItemResponse]{Items: dto.ToInvoiceListItems(rows), Total: total}, nil
}

// CountInvoices cuenta las facturas no borradas del filtro (ignora la página).
func (uc *ReportUseCase) CountInvoices(ctx context.Context, q dto.InvoiceListQuery) (int, error) {
	criteria, err := uc.invoiceCriteria(q)
	if err != nil {
		return 0, err
	}
	return uc.repo.CountInvoices(ctx, criteria)
}

// DateStats sumas por día calendario, día descendente, con el número total de días.
func (uc *ReportUseCase) DateStats(ctx context.Context, q dto.DateStatsQuery) (*dto.ListResponse[dto.DateStatsResponse], error) {
	r, err := uc.dateRange(q.DateRangeQuery)
	if err != nil {
		return nil, err
	}
	page := repository.NewPage(q.Page, uc.pageSize)

	var (
		total int
		stats []repository.DateStat
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.repo.CountDateStats(gctx, r)
		total = n
		return err
	})
	g.Go(func() error {
		s, err := uc.repo.DateStats(gctx, r, page)
		stats = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("date stats: %w", err)
	}
	if total > 0 && len(stats) == 0 {
		return nil, domain.ErrNoData
	}
	return &dto.ListResponse[dto.DateStatsResponse]{Items: dto.ToDateStatsResponses(stats), Total: total}, nil
}

// CountDateStats número de días con ventas en el rango.
func (uc *ReportUseCase) CountDateStats(ctx context.Context, q dto.DateRangeQuery) (int, error) {
	r, err := uc.dateRange(q)
	if err != nil {
		return 0, err
	}
	return uc.repo.CountDateStats(ctx, r)
}

// TotalStats suma global del rango; (nil, nil) cuando ninguna factura coincide.
func (uc *ReportUseCase) TotalStats(ctx context.Context, q dto.DateRangeQuery) (*dto.TotalStatsResponse, error) {
	r, err := uc.dateRange(q)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalStats(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("total stats: %w", err)
	}
	if total == nil {
		return nil, nil
	}
	return &dto.TotalStatsResponse{TotalPrice: total.Price, TotalWeight: total.Weight}, nil
}

// CustomerList pares cliente de todas las facturas no borradas, sin deduplicar.
func (uc *ReportUseCase) CustomerList(ctx context.Context) (*dto.ListResponse[dto.CustomerResponse], error) {
	refs, err := uc.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer list: %w", err)
	}
	items := dto.ToCustomerResponses(refs)
	return &dto.ListResponse[dto.CustomerResponse]{Items: items, Total: len(items)}, nil
}

// ProductStats peso vendido por producto en el rango.
func (uc *ReportUseCase) ProductStats(ctx context.Context, q dto.DateRangeQuery) (*dto.ListResponse[dto.ProductStatsResponse], error) {
	r, err := uc.dateRange(q)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.ProductStats(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	items := dto.ToProductStatsResponses(stats)
	return &dto.ListResponse[dto.ProductStatsResponse]{Items: items, Total: len(items)}, nil
}

func (uc *ReportUseCase) invoiceCriteria(q dto.InvoiceListQuery) (repository.InvoiceCriteria, error) {
	r, err := uc.dateRange(q.DateRangeQuery)
	if err != nil {
		return repository.InvoiceCriteria{}, err
	}
	return repository.InvoiceCriteria{
		Range:       r,
		CustomerIDs: q.CustomerIDList,
		Page:        repository.NewPage(q.Page, uc.pageSize),
	}, nil
}

func (uc *ReportUseCase) dateRange(q dto.DateRangeQuery) (repository.DateRange, error) {
	start, end, err := q.ParseDates(uc.loc)
	if err != nil {
		return repository.DateRange{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return repository.NewDateRange(start, end, uc.loc), nil
}
