package request

import (
	"context"

	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/stock"
)

// TransactionScope provides transactional access to the repositories a
// request decision touches. Approvals and pickups mutate the request, the
// farmer, stock batches and financial records together, so every write
// within a scope commits or rolls back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories scoped to
// the current transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// Farmers returns the farmer repository scoped to the transaction
	Farmers() farmer.Repository
	// Requests returns the request repository scoped to the transaction
	Requests() request.Repository
	// Batches returns the stock batch repository scoped to the transaction
	Batches() stock.BatchRepository
	// Allocations returns the allocation repository scoped to the transaction
	Allocations() stock.AllocationRepository
	// Distributions returns the feed distribution repository scoped to the transaction
	Distributions() finance.DistributionRepository
	// Payments returns the payment repository scoped to the transaction
	Payments() finance.PaymentRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	farmerRepo       farmer.Repository
	requestRepo      request.Repository
	batchRepo        stock.BatchRepository
	allocationRepo   stock.AllocationRepository
	distributionRepo finance.DistributionRepository
	paymentRepo      finance.PaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	farmerRepo farmer.Repository,
	requestRepo request.Repository,
	batchRepo stock.BatchRepository,
	allocationRepo stock.AllocationRepository,
	distributionRepo finance.DistributionRepository,
	paymentRepo finance.PaymentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		farmerRepo:       farmerRepo,
		requestRepo:      requestRepo,
		batchRepo:        batchRepo,
		allocationRepo:   allocationRepo,
		distributionRepo: distributionRepo,
		paymentRepo:      paymentRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Farmers returns the farmer repository.
func (s *NoOpTransactionScope) Farmers() farmer.Repository {
	return s.farmerRepo
}

// Requests returns the request repository.
func (s *NoOpTransactionScope) Requests() request.Repository {
	return s.requestRepo
}

// Batches returns the stock batch repository.
func (s *NoOpTransactionScope) Batches() stock.BatchRepository {
	return s.batchRepo
}

// Allocations returns the allocation repository.
func (s *NoOpTransactionScope) Allocations() stock.AllocationRepository {
	return s.allocationRepo
}

// Distributions returns the feed distribution repository.
func (s *NoOpTransactionScope) Distributions() finance.DistributionRepository {
	return s.distributionRepo
}

// Payments returns the payment repository.
func (s *NoOpTransactionScope) Payments() finance.PaymentRepository {
	return s.paymentRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
