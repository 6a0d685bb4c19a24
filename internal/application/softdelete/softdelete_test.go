package softdelete_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/softdelete"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

type productStore struct {
	rows    map[int64]entity.Product
	saves   int
	findErr error
}

func (s *productStore) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	p, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *productStore) Save(_ context.Context, p *entity.Product) error {
	s.saves++
	s.rows[p.ID] = *p
	return nil
}

func TestDelete_MarcaSinTocarPrecio(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := &productStore{rows: map[int64]entity.Product{
		7: {ID: 7, Name: "Xoài", Price: decimal.NewFromInt(1200), CreatedAt: created, UpdatedAt: created},
	}}
	now := time.Date(2024, 3, 15, 10, 30, 0, 500, time.UTC)

	p, err := softdelete.Delete[entity.Product](context.Background(), s, 7, now, softdelete.MarkProduct)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.IsDeleted)
	assert.Equal(t, now.Truncate(time.Second), p.UpdatedAt)
	assert.True(t, decimal.NewFromInt(1200).Equal(s.rows[7].Price))
	assert.True(t, s.rows[7].IsDeleted)

	// segunda vez: sin error y vuelve a sellar
	later := now.Add(time.Hour)
	p, err = softdelete.Delete[entity.Product](context.Background(), s, 7, later, softdelete.MarkProduct)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, later.Truncate(time.Second), p.UpdatedAt)
	assert.Equal(t, 2, s.saves)
}

func TestDelete_IDNoValido_NoConsulta(t *testing.T) {
	s := &productStore{rows: map[int64]entity.Product{}, findErr: errors.New("no debería consultarse")}
	for _, id := range []int64{0, -5} {
		p, err := softdelete.Delete[entity.Product](context.Background(), s, id, time.Now(), softdelete.MarkProduct)
		require.NoError(t, err)
		assert.Nil(t, p)
	}
}

func TestDelete_Inexistente(t *testing.T) {
	s := &productStore{rows: map[int64]entity.Product{}}
	p, err := softdelete.Delete[entity.Product](context.Background(), s, 3, time.Now(), softdelete.MarkProduct)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Zero(t, s.saves)
}

func TestDelete_PropagaErrorDeLectura(t *testing.T) {
	boom := errors.New("conexión cerrada")
	s := &productStore{findErr: boom}
	_, err := softdelete.Delete[entity.Product](context.Background(), s, 1, time.Now(), softdelete.MarkProduct)
	assert.ErrorIs(t, err, boom)
}

func TestMarkInvoice_NoTocaTotales(t *testing.T) {
	inv := &entity.Invoice{ID: 1, TotalPrice: decimal.NewFromInt(5000), TotalWeight: decimal.NewFromInt(5)}
	at := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	softdelete.MarkInvoice(inv, at)
	assert.True(t, inv.IsDeleted)
	assert.Equal(t, at, inv.UpdatedAt)
	assert.True(t, decimal.NewFromInt(5000).Equal(inv.TotalPrice))
}
