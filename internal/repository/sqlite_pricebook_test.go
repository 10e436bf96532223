package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/db"
	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func TestPriceBookRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	entry := testutil.NewPriceBookEntry("21.01", "Metselwerk buitenblad",
		testutil.WithUnitPrice(78.25),
		testutil.WithKind(domain.QuantityArea),
		testutil.WithSFBCode("21.1"))
	require.NoError(t, repo.Create(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metselwerk buitenblad", got.Name)
	assert.Equal(t, domain.QuantityArea, got.Kind)
	assert.InDelta(t, 78.25, got.UnitPrice, 1e-9)
	assert.Equal(t, "21.1", got.SFBCode)
}

func TestPriceBookRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPriceBookRepo_FindByCode(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	entry := testutil.NewPriceBookEntry("22.05", "Kalkzandsteen binnenblad")
	require.NoError(t, repo.Create(ctx, entry))

	got, err := repo.FindByCode(ctx, "22.05")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	_, err = repo.FindByCode(ctx, "99.99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPriceBookRepo_ListOrdersByCode(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("22.01", "b")))
	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("21.01", "a")))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "21.01", entries[0].Code)
	assert.Equal(t, "22.01", entries[1].Code)
}

func TestPriceBookRepo_ListByCodePrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("21.01", "a")))
	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("21.02", "b")))
	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("22.01", "c")))

	entries, err := repo.ListByCodePrefix(ctx, "21")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPriceBookRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	entry := testutil.NewPriceBookEntry("21.01", "Metselwerk")
	require.NoError(t, repo.Create(ctx, entry))

	entry.UnitPrice = 81.00
	entry.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.InDelta(t, 81.00, got.UnitPrice, 1e-9)
}

func TestPriceBookRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	entry := testutil.NewPriceBookEntry("21.01", "Metselwerk")
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err := repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPriceBookRepo_DuplicateCodeRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePriceBookRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewPriceBookEntry("21.01", "a")))
	err := repo.Create(ctx, testutil.NewPriceBookEntry("21.01", "b"))
	assert.Error(t, err)
}

func TestPriceBookRepo_TxRollback(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLitePriceBookRepo(tx)
		if err := txRepo.Create(ctx, testutil.NewPriceBookEntry("21.01", "a")); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	repo := repository.NewSQLitePriceBookRepo(database)
	entries, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, entries, "rolled-back insert must not be visible")
}
