package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

func ptr(f float64) *float64 { return &f }

func TestEmptyWeightGrid_Dimensiones(t *testing.T) {
	g := entity.EmptyWeightGrid()
	require.Len(t, g, entity.WeightGridRows)
	for _, row := range g {
		require.Len(t, row, entity.WeightGridCols)
		for _, cell := range row {
			assert.Nil(t, cell)
		}
	}
}

func TestWeightGrid_ConCeldasVacias_SeReleeIgual(t *testing.T) {
	g := entity.EmptyWeightGrid()
	g[0][0] = ptr(12.5)
	g[3][5] = ptr(0)
	g[6][2] = ptr(7)

	s, err := entity.EncodeWeightGrid(g)
	require.NoError(t, err)
	assert.Contains(t, s, "null")

	back, err := entity.DecodeWeightGrid(s)
	require.NoError(t, err)
	require.Len(t, back, entity.WeightGridRows)
	assert.Equal(t, 12.5, *back[0][0])
	assert.Equal(t, 0.0, *back[3][5])
	assert.Equal(t, 7.0, *back[6][2])
	assert.Nil(t, back[1][1])
}

func TestDecodeWeightGrid_FormaNoSeValida(t *testing.T) {
	back, err := entity.DecodeWeightGrid(`[[1,null],[2]]`)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Len(t, back[1], 1)
}

func TestDecodeWeightGrid_Vacio_DevuelvePlanillaVacia(t *testing.T) {
	back, err := entity.DecodeWeightGrid("")
	require.NoError(t, err)
	assert.Len(t, back, entity.WeightGridRows)
}

func TestDecodeWeightGrid_TextoInvalido(t *testing.T) {
	_, err := entity.DecodeWeightGrid("no-es-json")
	assert.Error(t, err)
}

func TestWeightList_VaciaSeGuardaComoTextoVacio(t *testing.T) {
	s, err := entity.EncodeWeightList(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = entity.EncodeWeightList([]float64{1.5, 2})
	require.NoError(t, err)
	list, err := entity.DecodeWeightList(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, list)
}

func TestNewInvoice_PagadaConPlanillaPorDefecto(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 999, time.UTC)
	inv := entity.NewInvoice(entity.InvoiceHeader{
		CustomerID:  "KH01",
		TotalWeight: decimal.NewFromInt(3),
		TotalPrice:  decimal.NewFromInt(3000),
		CreatedBy:   "vendedor",
	}, now)

	assert.True(t, inv.IsPaid)
	assert.False(t, inv.IsDeleted)
	assert.Len(t, inv.WeightGrid, entity.WeightGridRows)
	assert.Equal(t, now.Truncate(time.Second), inv.CreatedAt)
	assert.Equal(t, inv.CreatedAt, inv.UpdatedAt)
	assert.False(t, inv.DepreciationWeight.Valid)
}

func TestNewUser_ActivoYRol(t *testing.T) {
	u := entity.NewUser("admin", "Administrador", "hash", entity.RoleAdmin, time.Now())
	assert.True(t, u.IsActive)
	assert.True(t, u.IsAdmin())

	u.Role = entity.RoleRegular
	assert.False(t, u.IsAdmin())
}
