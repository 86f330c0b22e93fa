package persistence

import (
	"testing"
	"time"

	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/stock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the program schema.
// Row-locking queries are not exercised here since SQLite has no FOR UPDATE.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&farmer.Farmer{},
		&stock.Batch{},
		&stock.Allocation{},
		&request.Request{},
		&finance.Distribution{},
		&finance.Payment{},
	)
	require.NoError(t, err)

	return db
}

// newTestFarmer builds a valid registered farmer for persistence tests
func newTestFarmer(t *testing.T, name, nin string) *farmer.Farmer {
	t.Helper()

	dob := time.Now().AddDate(-25, 0, 0)
	f, err := farmer.NewFarmer(name, nin, "0772000001", farmer.GenderFemale, dob, "officer-01")
	require.NoError(t, err)
	return f
}

// newTestChickBatch builds a chick batch that arrived daysAgo days ago
func newTestChickBatch(t *testing.T, chickType stock.ChickType, quantity, daysAgo int) *stock.Batch {
	t.Helper()

	arrival := time.Now().AddDate(0, 0, -daysAgo)
	b, err := stock.NewChickBatch(chickType, quantity, arrival, 1, "Kampala hatchery")
	require.NoError(t, err)
	return b
}
