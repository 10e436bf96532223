package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
	"github.com/woutmeijer/bouwkost/internal/service"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func newPriceBook(t *testing.T) service.PriceBookService {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	return service.NewPriceBookService(repo, testutil.NewTestUoW(database))
}

func TestPriceBookService_AddFillsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newPriceBook(t)

	e := &domain.PriceBookEntry{Code: "22.11.010", Name: "Heipalen", UnitPrice: 310}
	require.NoError(t, svc.Add(ctx, e))

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, domain.QuantityCount, e.Kind)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := svc.FindByCode(ctx, "22.11.010")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestPriceBookService_AddRequiresCode(t *testing.T) {
	svc := newPriceBook(t)

	err := svc.Add(context.Background(), &domain.PriceBookEntry{Name: "Naamloos"})

	assert.Error(t, err)
}

func TestPriceBookService_UpdateBumpsTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := newPriceBook(t)
	e := testutil.NewPriceBookEntry("12.10.010", "Ontgraven", testutil.WithKind(domain.QuantityVolume))
	require.NoError(t, svc.Add(ctx, e))
	created := e.UpdatedAt

	e.UnitPrice = 14.25
	require.NoError(t, svc.Update(ctx, e))

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.InDelta(t, 14.25, got.UnitPrice, 0.001)
	assert.False(t, got.UpdatedAt.Before(created))
}

func TestPriceBookService_RemoveThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newPriceBook(t)
	e := testutil.NewPriceBookEntry("12.10.010", "Ontgraven")
	require.NoError(t, svc.Add(ctx, e))

	require.NoError(t, svc.Remove(ctx, e.ID))

	_, err := svc.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPriceBookService_ImportAtomic(t *testing.T) {
	ctx := context.Background()
	svc := newPriceBook(t)

	err := svc.Import(ctx, []*domain.PriceBookEntry{
		{Code: "12.10.010", Name: "Ontgraven", UnitPrice: 12.50},
		{Code: "12.10.010", Name: "Duplicaat", UnitPrice: 99},
	})
	require.Error(t, err)

	all, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestPriceBookService_ImportThenListByPrefix(t *testing.T) {
	ctx := context.Background()
	svc := newPriceBook(t)

	require.NoError(t, svc.Import(ctx, []*domain.PriceBookEntry{
		{Code: "12.10.010", Name: "Ontgraven", UnitPrice: 12.50},
		{Code: "12.10.020", Name: "Aanvullen", UnitPrice: 8.75},
		{Code: "22.11.010", Name: "Heipalen", UnitPrice: 310},
	}))

	grondwerk, err := svc.ListByCodePrefix(ctx, "12.")
	require.NoError(t, err)
	assert.Len(t, grondwerk, 2)
}

func TestPriceBookEntry_InstantiateAsLeaf(t *testing.T) {
	e := testutil.NewPriceBookEntry("22.11.010", "Heipalen", testutil.WithUnitPrice(310))

	item := e.Instantiate("02.01", 12)

	assert.Equal(t, "Heipalen", item.Name)
	assert.Equal(t, "02.01", item.Identification)
	assert.InDelta(t, 3720, item.Subtotal(), 0.001)
}
