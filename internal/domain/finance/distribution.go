package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DistributionType distinguishes why feed left the store
type DistributionType string

const (
	// DistributionTypeInitial is the feed entitlement handed out with chicks,
	// payable later by the due date
	DistributionTypeInitial DistributionType = "initial"
	// DistributionTypePurchase is extra feed bought by the farmer, paid at pickup
	DistributionTypePurchase DistributionType = "purchase"
)

// IsValid checks if the distribution type is valid
func (t DistributionType) IsValid() bool {
	return t == DistributionTypeInitial || t == DistributionTypePurchase
}

// Distribution records feed bags issued to a farmer from one batch
// The unit price is snapshotted from the batch at issuance so later price
// changes never move what the farmer owes
type Distribution struct {
	shared.BaseEntity
	FarmerID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	RequestID *uuid.UUID       `gorm:"type:uuid;index"` // Set when issued against a feed request
	BatchID   *uuid.UUID       `gorm:"type:uuid;index"`
	Type      DistributionType `gorm:"type:varchar(10);not null;index"`
	FeedType  string           `gorm:"type:varchar(20);not null"`
	Bags      int              `gorm:"not null"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	DueDate   *time.Time       `gorm:"type:date;index"`
	IssuedAt  time.Time        `gorm:"not null"`
	IssuedBy  string           `gorm:"type:varchar(100)"`
	Notes     string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Distribution) TableName() string {
	return "feed_distributions"
}

// NewInitialDistribution issues entitlement bags with a payment due date
func NewInitialDistribution(farmerID uuid.UUID, batchID uuid.UUID, feedType string, bags int, unitPrice decimal.Decimal, dueDate time.Time, issuedBy string) (*Distribution, error) {
	d, err := newDistribution(farmerID, batchID, DistributionTypeInitial, feedType, bags, unitPrice, issuedBy)
	if err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Initial distributions require a due date")
	}
	d.DueDate = &dueDate
	return d, nil
}

// NewPurchaseDistribution issues purchased bags against a feed request
func NewPurchaseDistribution(farmerID, requestID, batchID uuid.UUID, feedType string, bags int, unitPrice decimal.Decimal, issuedBy string) (*Distribution, error) {
	d, err := newDistribution(farmerID, batchID, DistributionTypePurchase, feedType, bags, unitPrice, issuedBy)
	if err != nil {
		return nil, err
	}
	d.RequestID = &requestID
	return d, nil
}

func newDistribution(farmerID, batchID uuid.UUID, distType DistributionType, feedType string, bags int, unitPrice decimal.Decimal, issuedBy string) (*Distribution, error) {
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARMER", "Farmer ID is required")
	}
	if bags <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Bag count must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	d := &Distribution{
		BaseEntity: shared.NewBaseEntity(),
		FarmerID:   farmerID,
		Type:       distType,
		FeedType:   feedType,
		Bags:       bags,
		UnitPrice:  unitPrice,
		IssuedAt:   time.Now(),
		IssuedBy:   issuedBy,
	}
	if batchID != uuid.Nil {
		id := batchID
		d.BatchID = &id
	}
	return d, nil
}

// TotalAmount returns what the distribution is worth at its snapshot price
func (d *Distribution) TotalAmount() valueobject.Money {
	return valueobject.NewMoneyUGX(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Bags))))
}

// IsOverdue returns true for initial distributions past their due date
func (d *Distribution) IsOverdue(at time.Time) bool {
	if d.Type != DistributionTypeInitial || d.DueDate == nil {
		return false
	}
	return at.After(*d.DueDate)
}

// IsDueWithin returns true for initial distributions whose due date falls in
// the next lookahead days and is not already past
func (d *Distribution) IsDueWithin(lookaheadDays int, at time.Time) bool {
	if d.Type != DistributionTypeInitial || d.DueDate == nil {
		return false
	}
	if at.After(*d.DueDate) {
		return false
	}
	return !d.DueDate.After(at.AddDate(0, 0, lookaheadDays))
}
