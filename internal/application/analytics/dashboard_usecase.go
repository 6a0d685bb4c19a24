// Package analytics resumen de ventas para el tablero: hoy, mes en curso y productos más vendidos.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

const dashboardTopProducts = 5 // productos en el widget del tablero

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
//
// Fuente de datos: ReportRepository (consultas read-only); las facturas borradas no cuentan.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	loc        *time.Location
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil usa time.Now.
func NewDashboardUseCase(reportRepo repository.ReportRepository, loc *time.Location, now func() time.Time) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{reportRepo: reportRepo, loc: loc, now: now}
}

// GetSummary construye el resumen.
//
// Tres consultas en paralelo:
//  1. TotalStats(hoy)
//  2. TotalStats(mes)
//  3. ProductStats(mes) → top por peso vendido
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := uc.now().In(uc.loc)

	// Hoy y mes en curso (día 1 hasta hoy), ambos inclusivos hasta las 23:59:59
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
	todayRange := repository.NewDateRange(&today, &today, uc.loc)
	monthRange := repository.NewDateRange(&monthStart, &today, uc.loc)

	type totalsResult struct {
		stat *repository.TotalStat
		err  error
	}
	type productsResult struct {
		stats []repository.ProductStat
		err   error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		s, err := uc.reportRepo.TotalStats(ctx, todayRange)
		todayCh <- totalsResult{s, err}
	}()
	go func() {
		s, err := uc.reportRepo.TotalStats(ctx, monthRange)
		monthCh <- totalsResult{s, err}
	}()
	go func() {
		s, err := uc.reportRepo.ProductStats(ctx, monthRange)
		productsCh <- productsResult{s, err}
	}()

	todayRes := <-todayCh
	monthRes := <-monthCh
	productsRes := <-productsCh

	if todayRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", todayRes.err)
	}
	if monthRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", monthRes.err)
	}
	if productsRes.err != nil {
		return nil, fmt.Errorf("dashboard: productos del mes: %w", productsRes.err)
	}

	todayPrice, todayWeight := totalsOrZero(todayRes.stat)
	monthPrice, monthWeight := totalsOrZero(monthRes.stat)

	return &dto.DashboardSummaryResponse{
		TodayPrice:  todayPrice,
		TodayWeight: todayWeight,
		MonthPrice:  monthPrice,
		MonthWeight: monthWeight,
		TopProducts: dto.ToProductStatsResponses(topByWeight(productsRes.stats, dashboardTopProducts)),
		DateLabel:   monthLabel(now),
	}, nil
}

func totalsOrZero(s *repository.TotalStat) (price, weight decimal.Decimal) {
	if s == nil {
		return decimal.Zero, decimal.Zero
	}
	return s.Price, s.Weight
}

// topByWeight los n productos con más peso vendido; empate por orden de catálogo.
func topByWeight(stats []repository.ProductStat, n int) []repository.ProductStat {
	out := append([]repository.ProductStat(nil), stats...)
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Weight.Cmp(out[j].Weight); c != 0 {
			return c > 0
		}
		return out[i].Order < out[j].Order
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Tháng 3/2024".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("Tháng %d/%d", int(t.Month()), t.Year())
}
