package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormBatchRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	batch := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 300, 5)
	require.NoError(t, repo.Save(ctx, batch))

	found, err := repo.FindByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, found.ID)
	assert.Equal(t, stock.CategoryChick, found.Category)
	assert.Equal(t, 300, found.Quantity)
}

func TestGormBatchRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBatchRepository_FindAvailableByType_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	newer := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 100, 2)
	older := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 60, 10)
	otherType := newTestChickBatch(t, stock.ChickTypeLayerLocal, 50, 1)

	empty := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 40, 8)
	empty.Quantity = 0

	for _, b := range []*stock.Batch{newer, older, otherType, empty} {
		require.NoError(t, repo.Save(ctx, b))
	}

	batches, err := repo.FindAvailableByType(ctx, stock.CategoryChick, string(stock.ChickTypeBroilerLocal))
	require.NoError(t, err)

	// Depleted and other-type batches are excluded, oldest arrival first
	require.Len(t, batches, 2)
	assert.Equal(t, older.ID, batches[0].ID)
	assert.Equal(t, newer.ID, batches[1].ID)
}

func TestGormBatchRepository_FindAll_InStockFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	stocked := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 120, 3)
	depleted := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 80, 6)
	depleted.Quantity = 0

	require.NoError(t, repo.Save(ctx, stocked))
	require.NoError(t, repo.Save(ctx, depleted))

	filter := shared.DefaultFilter()
	filter.OrderBy = "arrival_date"
	filter.Filters["in_stock"] = true

	batches, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, stocked.ID, batches[0].ID)
}

func TestGormBatchRepository_FindByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	chicks := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 200, 4)
	feed, err := stock.NewFeedBatch(stock.FeedTypeStarter, 40, time.Now().AddDate(0, 0, -1), decimal.NewFromInt(70000), "Mukwano feeds")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, chicks))
	require.NoError(t, repo.Save(ctx, feed))

	filter := shared.DefaultFilter()
	filter.OrderBy = "arrival_date"

	batches, err := repo.FindByCategory(ctx, stock.CategoryFeed, filter)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, feed.ID, batches[0].ID)
}

func TestGormBatchRepository_SumQuantityByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestChickBatch(t, stock.ChickTypeBroilerLocal, 300, 5)))
	require.NoError(t, repo.Save(ctx, newTestChickBatch(t, stock.ChickTypeBroilerLocal, 120, 2)))
	require.NoError(t, repo.Save(ctx, newTestChickBatch(t, stock.ChickTypeLayerLocal, 80, 2)))

	total, err := repo.SumQuantityByType(ctx, stock.CategoryChick, string(stock.ChickTypeBroilerLocal))
	require.NoError(t, err)
	assert.Equal(t, 420, total)
}

func TestGormBatchRepository_SumQuantityByType_NoBatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)

	total, err := repo.SumQuantityByType(context.Background(), stock.CategoryChick, string(stock.ChickTypeLayerLocal))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGormBatchRepository_SaveAll_PersistsDeductions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	first := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 100, 8)
	second := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 100, 3)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	first.Quantity = 0
	second.Quantity = 70
	require.NoError(t, repo.SaveAll(ctx, []*stock.Batch{first, second}))

	reloaded, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, reloaded.Quantity)

	available, err := repo.FindAvailableByType(ctx, stock.CategoryChick, string(stock.ChickTypeBroilerLocal))
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, second.ID, available[0].ID)
}

func TestGormBatchRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	batch := newTestChickBatch(t, stock.ChickTypeBroilerLocal, 50, 1)
	require.NoError(t, repo.Save(ctx, batch))

	require.NoError(t, repo.Delete(ctx, batch.ID))

	_, err := repo.FindByID(ctx, batch.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, batch.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBatchRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestChickBatch(t, stock.ChickTypeBroilerLocal, 100, 2)))
	require.NoError(t, repo.Save(ctx, newTestChickBatch(t, stock.ChickTypeLayerLocal, 100, 2)))

	filter := shared.DefaultFilter()
	filter.Filters["type_code"] = string(stock.ChickTypeLayerLocal)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
