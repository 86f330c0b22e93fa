package farmer

import (
	"context"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Repository defines the interface for farmer persistence
type Repository interface {
	// FindByID finds a farmer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Farmer, error)

	// FindByIDForUpdate finds a farmer by ID with a row lock for update
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Farmer, error)

	// FindByNIN finds a farmer by national identification number
	FindByNIN(ctx context.Context, nin string) (*Farmer, error)

	// FindAll finds all farmers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Farmer, error)

	// FindByType finds farmers by support tier
	FindByType(ctx context.Context, farmerType FarmerType, filter shared.Filter) ([]Farmer, error)

	// Save creates or updates a farmer
	Save(ctx context.Context, f *Farmer) error

	// Delete deletes a farmer
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts farmers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByNIN checks if a farmer with the given NIN is already registered
	ExistsByNIN(ctx context.Context, nin string) (bool, error)
}
