package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/shopspring/decimal"
)

// SubmitChickRequestRequest represents a farmer's application for chicks
type SubmitChickRequestRequest struct {
	FarmerID  uuid.UUID `json:"farmer_id" binding:"required"`
	ChickType string    `json:"chick_type" binding:"required,oneof=broiler_local broiler_exotic layer_local layer_exotic"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Notes     string    `json:"notes"`
}

// SubmitFeedRequestRequest represents a farmer's application to buy extra feed
type SubmitFeedRequestRequest struct {
	FarmerID uuid.UUID `json:"farmer_id" binding:"required"`
	FeedType string    `json:"feed_type" binding:"required,oneof=starter grower finisher"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
	Notes    string    `json:"notes"`
}

// AllocationLineInput is one operator-specified allocation line
type AllocationLineInput struct {
	BatchID  uuid.UUID `json:"batch_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// ApproveRequestRequest carries an approval decision.
// Allocations are optional; when omitted the stock is drawn oldest first
type ApproveRequestRequest struct {
	DecidedBy   string                `json:"decided_by" binding:"required,max=100"`
	Note        string                `json:"note"`
	Allocations []AllocationLineInput `json:"allocations" binding:"omitempty,dive"`
}

// RejectRequestRequest carries a rejection decision
type RejectRequestRequest struct {
	DecidedBy string `json:"decided_by" binding:"required,max=100"`
	Note      string `json:"note"`
}

// PickupRequest records a farmer collecting an approved request.
// For feed pickups AmountPaid must cover the price of the collected bags.
// For chick pickups both amounts are optional deposits taken at the counter:
// AmountPaid against the chicks, FeedAmountPaid against the entitlement bags
type PickupRequest struct {
	PickedBy       string          `json:"picked_by" binding:"required,max=100"`
	Notes          string          `json:"notes"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	FeedAmountPaid decimal.Decimal `json:"feed_amount_paid"`
}

// RequestListFilter represents filter options for the request list
type RequestListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Kind     string `form:"kind" binding:"omitempty,oneof=chick feed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// RequestResponse represents a request in API responses
type RequestResponse struct {
	ID           uuid.UUID  `json:"id"`
	FarmerID     uuid.UUID  `json:"farmer_id"`
	Kind         string     `json:"kind"`
	TypeCode     string     `json:"type_code"`
	Quantity     int        `json:"quantity"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	Notes        string     `json:"notes,omitempty"`
	DecidedBy    string     `json:"decided_by,omitempty"`
	DecisionNote string     `json:"decision_note,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	Picked       bool       `json:"picked"`
	PickedAt     *time.Time `json:"picked_at,omitempty"`
	PickedBy     string     `json:"picked_by,omitempty"`
	PickupNotes  string     `json:"pickup_notes,omitempty"`
}

// PickupResponse reports the outcome of a pickup.
// For chick pickups EntitlementBags says how many credit bags went out with
// the chicks and Warning flags a shortfall. For feed pickups AmountCharged
// is the price of the collected bags at their batch prices
type PickupResponse struct {
	Request         RequestResponse `json:"request"`
	EntitlementBags int             `json:"entitlement_bags,omitempty"`
	AmountCharged   decimal.Decimal `json:"amount_charged"`
	Warning         string          `json:"warning,omitempty"`
}

// ToRequestResponse converts a domain request to a response DTO
func ToRequestResponse(r *request.Request) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		FarmerID:     r.FarmerID,
		Kind:         string(r.Kind),
		TypeCode:     r.TypeCode,
		Quantity:     r.Quantity,
		Status:       string(r.Status),
		SubmittedAt:  r.SubmittedAt,
		Notes:        r.Notes,
		DecidedBy:    r.DecidedBy,
		DecisionNote: r.DecisionNote,
		DecidedAt:    r.DecidedAt,
		Picked:       r.Picked,
		PickedAt:     r.PickedAt,
		PickedBy:     r.PickedBy,
		PickupNotes:  r.PickupNotes,
	}
}
