package farmer

import (
	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeFarmer = "Farmer"

// Event type constants
const (
	EventTypeFarmerRegistered = "FarmerRegistered"
	EventTypeFarmerPromoted   = "FarmerPromoted"
)

// FarmerRegisteredEvent is published when a new farmer joins the program
type FarmerRegisteredEvent struct {
	shared.BaseDomainEvent
	FarmerID uuid.UUID  `json:"farmer_id"`
	Name     string     `json:"name"`
	NIN      string     `json:"nin"`
	Type     FarmerType `json:"type"`
}

// NewFarmerRegisteredEvent creates a new FarmerRegisteredEvent
func NewFarmerRegisteredEvent(f *Farmer) *FarmerRegisteredEvent {
	return &FarmerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFarmerRegistered, AggregateTypeFarmer, f.ID),
		FarmerID:        f.ID,
		Name:            f.Name,
		NIN:             f.NIN,
		Type:            f.Type,
	}
}

// FarmerPromotedEvent is published when a starter moves to the returning tier
type FarmerPromotedEvent struct {
	shared.BaseDomainEvent
	FarmerID uuid.UUID `json:"farmer_id"`
	Name     string    `json:"name"`
}

// NewFarmerPromotedEvent creates a new FarmerPromotedEvent
func NewFarmerPromotedEvent(f *Farmer) *FarmerPromotedEvent {
	return &FarmerPromotedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFarmerPromoted, AggregateTypeFarmer, f.ID),
		FarmerID:        f.ID,
		Name:            f.Name,
	}
}
