package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/stock"
)

// Kind distinguishes what a request asks for
type Kind string

const (
	KindChick Kind = "chick"
	KindFeed  Kind = "feed"
)

// IsValid checks if the kind is valid
func (k Kind) IsValid() bool {
	return k == KindChick || k == KindFeed
}

// Category returns the stock category a request of this kind draws from
func (k Kind) Category() stock.Category {
	if k == KindFeed {
		return stock.CategoryFeed
	}
	return stock.CategoryChick
}

// Status represents the review state of a request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request represents a farmer's application for chicks or feed
// It is the aggregate root for the review and pickup lifecycle
type Request struct {
	shared.BaseAggregateRoot
	FarmerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind         Kind       `gorm:"type:varchar(10);not null"`
	TypeCode     string     `gorm:"type:varchar(20);not null"`
	Quantity     int        `gorm:"not null"`
	Status       Status     `gorm:"type:varchar(10);not null;default:'pending';index"`
	SubmittedAt  time.Time  `gorm:"not null;index"`
	Notes        string     `gorm:"type:text"`
	DecidedBy    string     `gorm:"type:varchar(100)"`
	DecisionNote string     `gorm:"type:text"`
	DecidedAt    *time.Time
	Picked       bool       `gorm:"not null;default:false;index"`
	PickedAt     *time.Time
	PickedBy     string     `gorm:"type:varchar(100)"`
	PickupNotes  string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Request) TableName() string {
	return "requests"
}

// NewChickRequest submits a request for day-old chicks
func NewChickRequest(farmerID uuid.UUID, chickType stock.ChickType, quantity int, notes string) (*Request, error) {
	if !chickType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Chick type must be 'broiler_local', 'broiler_exotic', 'layer_local' or 'layer_exotic'")
	}
	return newRequest(farmerID, KindChick, string(chickType), quantity, notes)
}

// NewFeedRequest submits a request to purchase extra feed bags
func NewFeedRequest(farmerID uuid.UUID, feedType stock.FeedType, quantity int, notes string) (*Request, error) {
	if !feedType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Feed type must be 'starter', 'grower' or 'finisher'")
	}
	return newRequest(farmerID, KindFeed, string(feedType), quantity, notes)
}

func newRequest(farmerID uuid.UUID, kind Kind, typeCode string, quantity int, notes string) (*Request, error) {
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARMER", "Farmer ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}

	r := &Request{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FarmerID:          farmerID,
		Kind:              kind,
		TypeCode:          typeCode,
		Quantity:          quantity,
		Status:            StatusPending,
		SubmittedAt:       time.Now(),
		Notes:             notes,
	}

	r.AddDomainEvent(NewRequestSubmittedEvent(r))

	return r, nil
}

// Approve moves a pending request to approved
func (r *Request) Approve(decidedBy, note string) error {
	if r.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be approved")
	}

	now := time.Now()
	r.Status = StatusApproved
	r.DecidedBy = decidedBy
	r.DecisionNote = note
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewRequestApprovedEvent(r))

	return nil
}

// Reject moves a pending request to rejected
func (r *Request) Reject(decidedBy, note string) error {
	if r.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be rejected")
	}

	now := time.Now()
	r.Status = StatusRejected
	r.DecidedBy = decidedBy
	r.DecisionNote = note
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewRequestRejectedEvent(r))

	return nil
}

// MarkPicked records that the farmer collected an approved request
func (r *Request) MarkPicked(pickedBy, notes string) error {
	if r.Status != StatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Only approved requests can be picked up")
	}
	if r.Picked {
		return shared.NewDomainError("ALREADY_PICKED", "Request has already been picked up")
	}

	now := time.Now()
	r.Picked = true
	r.PickedAt = &now
	r.PickedBy = pickedBy
	r.PickupNotes = notes
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewRequestPickedUpEvent(r))

	return nil
}

// IsPending returns true while the request awaits review
func (r *Request) IsPending() bool {
	return r.Status == StatusPending
}

// IsApproved returns true if the request was approved
func (r *Request) IsApproved() bool {
	return r.Status == StatusApproved
}

// IsAwaitingPickup returns true for approved requests not yet collected
func (r *Request) IsAwaitingPickup() bool {
	return r.Status == StatusApproved && !r.Picked
}
