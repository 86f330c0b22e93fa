package finance

import (
	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeDistribution = "FeedDistribution"
	AggregateTypePayment      = "Payment"
)

// Event type constants
const (
	EventTypeFeedDistributed = "FeedDistributed"
	EventTypePaymentRecorded = "PaymentRecorded"
)

// FeedDistributedEvent is published when feed bags are issued to a farmer
type FeedDistributedEvent struct {
	shared.BaseDomainEvent
	DistributionID uuid.UUID        `json:"distribution_id"`
	FarmerID       uuid.UUID        `json:"farmer_id"`
	DistType       DistributionType `json:"dist_type"`
	Bags           int              `json:"bags"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
}

// NewFeedDistributedEvent creates a new FeedDistributedEvent
func NewFeedDistributedEvent(d *Distribution) *FeedDistributedEvent {
	return &FeedDistributedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedDistributed, AggregateTypeDistribution, d.ID),
		DistributionID:  d.ID,
		FarmerID:        d.FarmerID,
		DistType:        d.Type,
		Bags:            d.Bags,
		UnitPrice:       d.UnitPrice,
	}
}

// PaymentRecordedEvent is published when money is received from a farmer
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	FarmerID  uuid.UUID       `json:"farmer_id"`
	Amount    decimal.Decimal `json:"amount"`
	Purpose   PaymentPurpose  `json:"purpose"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, p.ID),
		PaymentID:       p.ID,
		FarmerID:        p.FarmerID,
		Amount:          p.Amount,
		Purpose:         p.Purpose,
	}
}
