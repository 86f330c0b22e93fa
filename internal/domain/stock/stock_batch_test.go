package stock

import (
	"testing"
	"time"

	"github.com/poultry/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChickBatch(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid chick batch", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 500, arrival, 3, "Kampala hatchery")
		require.NoError(t, err)
		assert.Equal(t, CategoryChick, b.Category)
		assert.Equal(t, "broiler_local", b.TypeCode)
		assert.Equal(t, 500, b.Quantity)
		require.NotNil(t, b.AgeDays)
		assert.Equal(t, 3, *b.AgeDays)
		assert.True(t, b.UnitPrice.IsZero())
		require.Len(t, b.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeBatchReceived, b.GetDomainEvents()[0].EventType())
	})

	t.Run("accepts every stocked breed line", func(t *testing.T) {
		for _, ct := range []ChickType{ChickTypeBroilerLocal, ChickTypeBroilerExotic, ChickTypeLayerLocal, ChickTypeLayerExotic} {
			b, err := NewChickBatch(ct, 100, arrival, 0, "")
			require.NoError(t, err)
			assert.Equal(t, string(ct), b.TypeCode)
		}
	})

	t.Run("rejects invalid chick type", func(t *testing.T) {
		_, err := NewChickBatch(ChickType("duck"), 500, arrival, 0, "")
		assert.Error(t, err)
	})

	t.Run("rejects breed without the local or exotic suffix", func(t *testing.T) {
		_, err := NewChickBatch(ChickType("broiler"), 500, arrival, 0, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewChickBatch(ChickTypeLayerLocal, 0, arrival, 0, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative age", func(t *testing.T) {
		_, err := NewChickBatch(ChickTypeLayerLocal, 100, arrival, -1, "")
		assert.Error(t, err)
	})

	t.Run("rejects zero arrival date", func(t *testing.T) {
		_, err := NewChickBatch(ChickTypeLayerLocal, 100, time.Time{}, 0, "")
		assert.Error(t, err)
	})
}

func TestNewFeedBatch(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid feed batch", func(t *testing.T) {
		b, err := NewFeedBatch(FeedTypeStarter, 40, arrival, decimal.NewFromInt(72000), "Ugachick")
		require.NoError(t, err)
		assert.Equal(t, CategoryFeed, b.Category)
		assert.Equal(t, "starter", b.TypeCode)
		assert.Equal(t, 40, b.Quantity)
		assert.Nil(t, b.AgeDays)
		assert.True(t, b.UnitPrice.Equal(decimal.NewFromInt(72000)))
	})

	t.Run("accepts every stocked formulation", func(t *testing.T) {
		for _, ft := range []FeedType{FeedTypeStarter, FeedTypeGrower, FeedTypeFinisher} {
			b, err := NewFeedBatch(ft, 10, arrival, decimal.NewFromInt(70000), "")
			require.NoError(t, err)
			assert.Equal(t, string(ft), b.TypeCode)
		}
	})

	t.Run("rejects invalid feed type", func(t *testing.T) {
		_, err := NewFeedBatch(FeedType("layer"), 40, arrival, decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewFeedBatch(FeedTypeGrower, 40, arrival, decimal.NewFromInt(-1), "")
		assert.Error(t, err)
	})
}

func TestBatchDeduct(t *testing.T) {
	arrival := time.Now().AddDate(0, 0, -2)

	t.Run("deducts within available quantity", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 100, arrival, 0, "")
		require.NoError(t, err)
		b.ClearDomainEvents()

		require.NoError(t, b.Deduct(30))
		assert.Equal(t, 70, b.Quantity)
		assert.Empty(t, b.GetDomainEvents())
	})

	t.Run("publishes depletion event when batch empties", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 50, arrival, 0, "")
		require.NoError(t, err)
		b.ClearDomainEvents()

		require.NoError(t, b.Deduct(50))
		assert.Equal(t, 0, b.Quantity)
		assert.False(t, b.HasStock())
		require.Len(t, b.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeBatchDepleted, b.GetDomainEvents()[0].EventType())
	})

	t.Run("fails when deducting more than available", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 50, arrival, 0, "")
		require.NoError(t, err)

		err = b.Deduct(51)
		assert.ErrorIs(t, err, shared.ErrInsufficientBatch)
		assert.ErrorContains(t, err, "holds 50")
		assert.ErrorContains(t, err, "51 was requested")
		assert.Equal(t, 50, b.Quantity)
	})

	t.Run("fails when deducting zero", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 50, arrival, 0, "")
		require.NoError(t, err)
		assert.Error(t, b.Deduct(0))
	})
}

func TestBatchAdd(t *testing.T) {
	b, err := NewFeedBatch(FeedTypeStarter, 10, time.Now().AddDate(0, 0, -1), decimal.NewFromInt(72000), "")
	require.NoError(t, err)

	require.NoError(t, b.Add(5))
	assert.Equal(t, 15, b.Quantity)
	assert.Error(t, b.Add(0))
}

func TestBatchAgeAt(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("feed batch age is days since arrival", func(t *testing.T) {
		b, err := NewFeedBatch(FeedTypeStarter, 10, arrival, decimal.Zero, "")
		require.NoError(t, err)
		assert.Equal(t, 10, b.AgeAt(arrival.AddDate(0, 0, 10)))
	})

	t.Run("chick batch age includes arrival age", func(t *testing.T) {
		b, err := NewChickBatch(ChickTypeBroilerLocal, 10, arrival, 3, "")
		require.NoError(t, err)
		assert.Equal(t, 13, b.AgeAt(arrival.AddDate(0, 0, 10)))
	})

	t.Run("age never goes negative", func(t *testing.T) {
		b, err := NewFeedBatch(FeedTypeStarter, 10, arrival, decimal.Zero, "")
		require.NoError(t, err)
		assert.Equal(t, 0, b.AgeAt(arrival.AddDate(0, 0, -5)))
	})
}

func TestBatchIsStale(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b, err := NewChickBatch(ChickTypeBroilerLocal, 10, arrival, 5, "")
	require.NoError(t, err)

	t.Run("stale when over the limit", func(t *testing.T) {
		assert.True(t, b.IsStale(14, arrival.AddDate(0, 0, 10)))
	})

	t.Run("fresh when at or under the limit", func(t *testing.T) {
		assert.False(t, b.IsStale(14, arrival.AddDate(0, 0, 9)))
	})

	t.Run("zero limit disables the gate", func(t *testing.T) {
		assert.False(t, b.IsStale(0, arrival.AddDate(0, 5, 0)))
	})
}

func TestBatchTotalValue(t *testing.T) {
	b, err := NewFeedBatch(FeedTypeStarter, 10, time.Now().AddDate(0, 0, -1), decimal.NewFromInt(72000), "")
	require.NoError(t, err)
	assert.True(t, b.TotalValue().Equal(decimal.NewFromInt(720000)))
}
