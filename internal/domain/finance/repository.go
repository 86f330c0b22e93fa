package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// DistributionRepository defines the interface for feed distribution persistence
type DistributionRepository interface {
	// FindByID finds a distribution by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Distribution, error)

	// FindByFarmerID finds all distributions issued to a farmer
	FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]Distribution, error)

	// FindAll finds all distributions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Distribution, error)

	// FindDueBetween finds initial distributions whose due date falls in the
	// given window, earliest due first
	FindDueBetween(ctx context.Context, from, to time.Time) ([]Distribution, error)

	// Save creates or updates a distribution
	Save(ctx context.Context, d *Distribution) error

	// SaveAll creates or updates several distributions
	SaveAll(ctx context.Context, distributions []*Distribution) error

	// Count counts distributions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByFarmerID finds all payments received from a farmer
	FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]Payment, error)

	// FindAll finds all payments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)

	// Save creates a payment record
	Save(ctx context.Context, p *Payment) error

	// Count counts payments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
