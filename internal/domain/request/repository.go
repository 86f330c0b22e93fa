package request

import (
	"context"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Repository defines the interface for request persistence
type Repository interface {
	// FindByID finds a request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)

	// FindByIDForUpdate finds a request by ID with a row lock for update
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Request, error)

	// FindByFarmerID finds all requests submitted by a farmer, newest first
	FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]Request, error)

	// FindLastByFarmerAndKind finds the farmer's most recent request of the
	// given kind by submission time, nil if none exists
	FindLastByFarmerAndKind(ctx context.Context, farmerID uuid.UUID, kind Kind) (*Request, error)

	// FindAll finds all requests matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Request, error)

	// FindByStatus finds requests in the given review state
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Request, error)

	// FindAwaitingPickup finds approved requests not yet collected
	FindAwaitingPickup(ctx context.Context, kind Kind, filter shared.Filter) ([]Request, error)

	// FindPicked finds all collected requests of the given kind
	FindPicked(ctx context.Context, kind Kind) ([]Request, error)

	// Save creates or updates a request
	Save(ctx context.Context, r *Request) error

	// Count counts requests matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts requests in the given review state
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
