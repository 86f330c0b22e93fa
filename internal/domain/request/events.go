package request

import (
	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeRequest = "Request"

// Event type constants
const (
	EventTypeRequestSubmitted = "RequestSubmitted"
	EventTypeRequestApproved  = "RequestApproved"
	EventTypeRequestRejected  = "RequestRejected"
	EventTypeRequestPickedUp  = "RequestPickedUp"
)

// RequestSubmittedEvent is published when a farmer submits a request
type RequestSubmittedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	Kind      Kind      `json:"kind"`
	TypeCode  string    `json:"type_code"`
	Quantity  int       `json:"quantity"`
}

// NewRequestSubmittedEvent creates a new RequestSubmittedEvent
func NewRequestSubmittedEvent(r *Request) *RequestSubmittedEvent {
	return &RequestSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestSubmitted, AggregateTypeRequest, r.ID),
		RequestID:       r.ID,
		FarmerID:        r.FarmerID,
		Kind:            r.Kind,
		TypeCode:        r.TypeCode,
		Quantity:        r.Quantity,
	}
}

// RequestApprovedEvent is published when a request passes review
type RequestApprovedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	Kind      Kind      `json:"kind"`
	Quantity  int       `json:"quantity"`
	DecidedBy string    `json:"decided_by"`
}

// NewRequestApprovedEvent creates a new RequestApprovedEvent
func NewRequestApprovedEvent(r *Request) *RequestApprovedEvent {
	return &RequestApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestApproved, AggregateTypeRequest, r.ID),
		RequestID:       r.ID,
		FarmerID:        r.FarmerID,
		Kind:            r.Kind,
		Quantity:        r.Quantity,
		DecidedBy:       r.DecidedBy,
	}
}

// RequestRejectedEvent is published when a request fails review
type RequestRejectedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	Reason    string    `json:"reason"`
	DecidedBy string    `json:"decided_by"`
}

// NewRequestRejectedEvent creates a new RequestRejectedEvent
func NewRequestRejectedEvent(r *Request) *RequestRejectedEvent {
	return &RequestRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestRejected, AggregateTypeRequest, r.ID),
		RequestID:       r.ID,
		FarmerID:        r.FarmerID,
		Reason:          r.DecisionNote,
		DecidedBy:       r.DecidedBy,
	}
}

// RequestPickedUpEvent is published when the farmer collects the goods
type RequestPickedUpEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	Kind      Kind      `json:"kind"`
	Quantity  int       `json:"quantity"`
	PickedBy  string    `json:"picked_by"`
}

// NewRequestPickedUpEvent creates a new RequestPickedUpEvent
func NewRequestPickedUpEvent(r *Request) *RequestPickedUpEvent {
	return &RequestPickedUpEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestPickedUp, AggregateTypeRequest, r.ID),
		RequestID:       r.ID,
		FarmerID:        r.FarmerID,
		Kind:            r.Kind,
		Quantity:        r.Quantity,
		PickedBy:        r.PickedBy,
	}
}
