package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

func TestPage_OffsetYLimit(t *testing.T) {
	tests := []struct {
		name    string
		page    repository.Page
		enabled bool
		offset  int
		limit   int
	}{
		{"sin paginar", repository.NewPage(0, 20), false, 0, 20},
		{"negativa", repository.NewPage(-1, 20), false, 0, 20},
		{"primera", repository.NewPage(1, 20), true, 0, 20},
		{"tercera", repository.NewPage(3, 20), true, 40, 20},
		{"tamaño por defecto", repository.NewPage(2, 0), true, repository.DefaultPageSize, repository.DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.enabled, tt.page.Enabled())
			assert.Equal(t, tt.offset, tt.page.Offset())
			assert.Equal(t, tt.limit, tt.page.Limit())
		})
	}
}

func TestNewDateRange_ExpandeADiaCompleto(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	start := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	end := time.Date(2024, 3, 10, 8, 0, 0, 0, loc)

	r := repository.NewDateRange(&start, &end, loc)
	require.NotNil(t, r.From)
	require.NotNil(t, r.To)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), *r.From)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, loc), *r.To)

	// extremos inclusivos
	assert.True(t, r.Contains(time.Date(2024, 3, 10, 23, 59, 59, 0, loc)))
	assert.True(t, r.Contains(*r.From))
	assert.False(t, r.Contains(time.Date(2024, 3, 11, 0, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, loc)))
}

func TestNewDateRange_ExtremosAbiertos(t *testing.T) {
	r := repository.NewDateRange(nil, nil, time.UTC)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
	assert.True(t, r.Contains(time.Unix(0, 0)))

	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	r = repository.NewDateRange(nil, &end, time.UTC)
	assert.True(t, r.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestInvoiceCriteria_MatchesCustomer(t *testing.T) {
	all := repository.InvoiceCriteria{}
	assert.True(t, all.MatchesCustomer("cualquiera"))

	some := repository.InvoiceCriteria{CustomerIDs: []string{"KH01", "KH02"}}
	assert.True(t, some.MatchesCustomer("KH02"))
	assert.False(t, some.MatchesCustomer("KH03"))
}
