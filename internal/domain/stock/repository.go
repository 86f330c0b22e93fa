package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// BatchRepository defines the interface for stock batch persistence
type BatchRepository interface {
	// FindByID finds a batch by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByIDForUpdate finds a batch by ID with a row lock for update
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByIDsForUpdate finds several batches with row locks, ordered by ID
	// to keep lock acquisition order stable across concurrent transactions
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]Batch, error)

	// FindAvailableByType finds non-empty batches of the given category and
	// type ordered oldest arrival first
	FindAvailableByType(ctx context.Context, category Category, typeCode string) ([]Batch, error)

	// FindAvailableByTypeForUpdate is FindAvailableByType with row locks
	FindAvailableByTypeForUpdate(ctx context.Context, category Category, typeCode string) ([]Batch, error)

	// FindAll finds all batches matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// FindByCategory finds batches of the given category
	FindByCategory(ctx context.Context, category Category, filter shared.Filter) ([]Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, b *Batch) error

	// SaveAll creates or updates several batches
	SaveAll(ctx context.Context, batches []*Batch) error

	// Delete deletes a batch
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts batches matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// SumQuantityByType returns the total remaining quantity for a type
	SumQuantityByType(ctx context.Context, category Category, typeCode string) (int, error)
}

// AllocationRepository defines the interface for allocation persistence
type AllocationRepository interface {
	// FindByRequestID finds all allocations written for a request
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]Allocation, error)

	// FindByBatchID finds all allocations served from a batch
	FindByBatchID(ctx context.Context, batchID uuid.UUID) ([]Allocation, error)

	// SaveAll writes allocation lines
	SaveAll(ctx context.Context, allocations []*Allocation) error
}
