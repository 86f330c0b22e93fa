package persistence

import (
	"context"

	apprequest "github.com/poultry/backend/internal/application/request"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apprequest.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Farmers returns the farmer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Farmers() farmer.Repository {
	return NewGormFarmerRepository(r.tx)
}

// Requests returns the request repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Requests() request.Repository {
	return NewGormRequestRepository(r.tx)
}

// Batches returns the stock batch repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Batches() stock.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// Allocations returns the allocation repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Allocations() stock.AllocationRepository {
	return NewGormAllocationRepository(r.tx)
}

// Distributions returns the feed distribution repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Distributions() finance.DistributionRepository {
	return NewGormDistributionRepository(r.tx)
}

// Payments returns the payment repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Payments() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apprequest.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apprequest.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
