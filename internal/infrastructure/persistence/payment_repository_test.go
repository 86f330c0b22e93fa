package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T, farmerID uuid.UUID, amount int64, purpose finance.PaymentPurpose) *finance.Payment {
	t.Helper()

	p, err := finance.NewPayment(farmerID, valueobject.NewMoneyUGXFromInt(amount), purpose, "officer-01", "")
	require.NoError(t, err)
	return p
}

func TestGormPaymentRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	p := newTestPayment(t, uuid.New(), 100000, finance.PaymentPurposeChicks)
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.True(t, found.Amount.Equal(p.Amount))
	assert.Equal(t, finance.PaymentPurposeChicks, found.Purpose)
}

func TestGormPaymentRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPaymentRepository_FindByFarmerID_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	farmerID := uuid.New()

	older := newTestPayment(t, farmerID, 50000, finance.PaymentPurposeChicks)
	older.PaidAt = time.Now().AddDate(0, 0, -30)
	newer := newTestPayment(t, farmerID, 80000, finance.PaymentPurposeFeeds)
	newer.PaidAt = time.Now().AddDate(0, 0, -2)

	require.NoError(t, repo.Save(ctx, newer))
	require.NoError(t, repo.Save(ctx, older))

	// Another farmer's money stays out of this ledger
	require.NoError(t, repo.Save(ctx, newTestPayment(t, uuid.New(), 99000, finance.PaymentPurposeBoth)))

	results, err := repo.FindByFarmerID(ctx, farmerID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, older.ID, results[0].ID)
	assert.Equal(t, newer.ID, results[1].ID)
}

func TestGormPaymentRepository_FindAll_PurposeFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestPayment(t, uuid.New(), 50000, finance.PaymentPurposeChicks)))
	require.NoError(t, repo.Save(ctx, newTestPayment(t, uuid.New(), 60000, finance.PaymentPurposeFeeds)))

	filter := shared.DefaultFilter()
	filter.OrderBy = "paid_at"
	filter.Filters["purpose"] = string(finance.PaymentPurposeFeeds)

	results, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, finance.PaymentPurposeFeeds, results[0].Purpose)
}

func TestGormPaymentRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	farmerID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestPayment(t, farmerID, 40000, finance.PaymentPurposeChicks)))
	require.NoError(t, repo.Save(ctx, newTestPayment(t, farmerID, 70000, finance.PaymentPurposeFeeds)))
	require.NoError(t, repo.Save(ctx, newTestPayment(t, uuid.New(), 10000, finance.PaymentPurposeOther)))

	filter := shared.DefaultFilter()
	filter.Filters["farmer_id"] = farmerID

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
