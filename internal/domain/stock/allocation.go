package stock

import (
	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Allocation records that part of an approved request was served from a batch
// Allocations are written once at approval and never updated
type Allocation struct {
	shared.BaseEntity
	RequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	BatchID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Allocation) TableName() string {
	return "allocations"
}

// NewAllocation creates an allocation line for a request
func NewAllocation(requestID, batchID uuid.UUID, quantity int) (*Allocation, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Allocation quantity must be positive")
	}

	return &Allocation{
		BaseEntity: shared.NewBaseEntity(),
		RequestID:  requestID,
		BatchID:    batchID,
		Quantity:   quantity,
	}, nil
}
