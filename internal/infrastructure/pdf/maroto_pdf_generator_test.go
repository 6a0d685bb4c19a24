package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/pdf"
)

func TestGenerateInvoicePDF(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	grid := entity.EmptyWeightGrid()
	w := 12.5
	grid[0][0] = &w

	inv := entity.NewInvoice(entity.InvoiceHeader{
		CustomerID:   "KH01",
		CustomerName: "Chi Lan",
		WeightGrid:   grid,
		TotalWeight:  decimal.NewFromFloat(12.5),
		TotalPrice:   decimal.NewFromInt(250000),
		CreatedBy:    "thanh",
	}, now)
	inv.ID = 7

	line := entity.NewLineItem(7, entity.LineSnapshot{
		ProductID: 1, Name: "Thanh long ruot do", Price: decimal.NewFromInt(20000), Weight: decimal.NewFromFloat(12.5),
	}, now)

	gen := pdf.NewMarotoPDFGenerator("Nhap Thanh Long", time.UTC)
	b, err := gen.GenerateInvoicePDF(context.Background(), billing.InvoicePDFData{
		Invoice: inv, CreatorName: "Thanh", Lines: []*entity.LineItem{line},
	})
	require.NoError(t, err)
	assert.True(t, len(b) > 4)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateInvoicePDF_SinFactura(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("Nhap Thanh Long", time.UTC)
	_, err := gen.GenerateInvoicePDF(context.Background(), billing.InvoicePDFData{})
	assert.Error(t, err)
}
