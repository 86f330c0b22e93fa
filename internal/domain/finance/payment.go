package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentPurpose says which balance a payment settles
type PaymentPurpose string

const (
	PaymentPurposeChicks PaymentPurpose = "chicks"
	PaymentPurposeFeeds  PaymentPurpose = "feeds"
	// PaymentPurposeBoth splits evenly between the chick and feed balances
	PaymentPurposeBoth  PaymentPurpose = "both"
	PaymentPurposeOther PaymentPurpose = "other"
)

// IsValid checks if the purpose is valid
func (p PaymentPurpose) IsValid() bool {
	switch p {
	case PaymentPurposeChicks, PaymentPurposeFeeds, PaymentPurposeBoth, PaymentPurposeOther:
		return true
	}
	return false
}

// Payment records money received from a farmer
type Payment struct {
	shared.BaseEntity
	FarmerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RequestID      *uuid.UUID      `gorm:"type:uuid;index"` // Set when the payment settles a specific request
	DistributionID *uuid.UUID      `gorm:"type:uuid;index"` // Set when the payment settles a specific feed distribution
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Purpose        PaymentPurpose  `gorm:"type:varchar(10);not null;index"`
	PaidAt         time.Time       `gorm:"not null;index"`
	ReceivedBy     string          `gorm:"type:varchar(100)"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a payment from a farmer
func NewPayment(farmerID uuid.UUID, amount valueobject.Money, purpose PaymentPurpose, receivedBy, notes string) (*Payment, error) {
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARMER", "Farmer ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !purpose.IsValid() {
		return nil, shared.NewDomainError("INVALID_PURPOSE", "Payment purpose must be 'chicks', 'feeds', 'both' or 'other'")
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		FarmerID:   farmerID,
		Amount:     amount.Amount(),
		Purpose:    purpose,
		PaidAt:     time.Now(),
		ReceivedBy: receivedBy,
		Notes:      notes,
	}, nil
}

// LinkRequest ties the payment to the request it settles
func (p *Payment) LinkRequest(requestID uuid.UUID) {
	if requestID == uuid.Nil {
		return
	}
	id := requestID
	p.RequestID = &id
}

// LinkDistribution ties the payment to the feed distribution it settles
func (p *Payment) LinkDistribution(distributionID uuid.UUID) {
	if distributionID == uuid.Nil {
		return
	}
	id := distributionID
	p.DistributionID = &id
}

// AmountMoney returns the amount as a Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyUGX(p.Amount)
}

// ChickPortion returns the part of the payment that settles the chick balance
func (p *Payment) ChickPortion() valueobject.Money {
	switch p.Purpose {
	case PaymentPurposeChicks:
		return p.AmountMoney()
	case PaymentPurposeBoth:
		return p.AmountMoney().Halve()
	default:
		return valueobject.ZeroUGX()
	}
}

// FeedPortion returns the part of the payment that settles the feed balance
func (p *Payment) FeedPortion() valueobject.Money {
	switch p.Purpose {
	case PaymentPurposeFeeds:
		return p.AmountMoney()
	case PaymentPurposeBoth:
		return p.AmountMoney().Halve()
	default:
		return valueobject.ZeroUGX()
	}
}
