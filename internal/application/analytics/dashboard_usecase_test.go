package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/analytics"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// stubReports devuelve totales distintos según el rango pedido.
type stubReports struct {
	repository.ReportRepository
	today, month *repository.TotalStat
	products     []repository.ProductStat
	err          error
	ranges       []repository.DateRange
}

func (s *stubReports) TotalStats(_ context.Context, r repository.DateRange) (*repository.TotalStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	if r.From != nil && r.From.Day() == 1 {
		return s.month, nil
	}
	return s.today, nil
}

func (s *stubReports) ProductStats(_ context.Context, r repository.DateRange) ([]repository.ProductStat, error) {
	s.ranges = append(s.ranges, r)
	return s.products, nil
}

func fixedNow() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }

func TestGetSummary_TotalesYTop(t *testing.T) {
	products := make([]repository.ProductStat, 0, 7)
	for i := 1; i <= 7; i++ {
		products = append(products, repository.ProductStat{ProductID: int64(i), Order: i, Weight: decimal.NewFromInt(int64(i % 4))})
	}
	repo := &stubReports{
		today:    &repository.TotalStat{Price: decimal.NewFromInt(1500), Weight: decimal.NewFromInt(3)},
		month:    &repository.TotalStat{Price: decimal.NewFromInt(9000), Weight: decimal.NewFromInt(20)},
		products: products,
	}
	uc := analytics.NewDashboardUseCase(repo, time.UTC, fixedNow)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(out.TodayPrice))
	assert.True(t, decimal.NewFromInt(20).Equal(out.MonthWeight))
	assert.Equal(t, "Tháng 3/2024", out.DateLabel)

	// pesos: 1,2,3,0,1,2,3 → top 5 por peso, empate por orden
	require.Len(t, out.TopProducts, 5)
	ids := make([]int64, 0, 5)
	for _, p := range out.TopProducts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 7, 2, 6, 1}, ids)

	require.Len(t, repo.ranges, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *repo.ranges[0].From)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), *repo.ranges[0].To)
}

func TestGetSummary_SinVentas_DevuelveCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubReports{}, time.UTC, fixedNow)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TodayPrice.IsZero())
	assert.True(t, out.MonthWeight.IsZero())
	assert.Empty(t, out.TopProducts)
}

func TestGetSummary_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(&stubReports{err: boom}, time.UTC, fixedNow)

	_, err := uc.GetSummary(context.Background())
	require.ErrorIs(t, err, boom)
}
