package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents money received from a farmer.
// DistributionID optionally ties the payment to the feed distribution
// it settles
type RecordPaymentRequest struct {
	FarmerID       uuid.UUID       `json:"farmer_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Purpose        string          `json:"purpose" binding:"required,oneof=chicks feeds both other"`
	DistributionID *uuid.UUID      `json:"distribution_id"`
	ReceivedBy     string          `json:"received_by" binding:"required,max=100"`
	Notes          string          `json:"notes"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	FarmerID       uuid.UUID       `json:"farmer_id"`
	RequestID      *uuid.UUID      `json:"request_id,omitempty"`
	DistributionID *uuid.UUID      `json:"distribution_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Purpose        string          `json:"purpose"`
	PaidAt         time.Time       `json:"paid_at"`
	ReceivedBy     string          `json:"received_by"`
	Notes          string          `json:"notes,omitempty"`
}

// DistributionResponse represents a feed distribution in API responses
type DistributionResponse struct {
	ID        uuid.UUID       `json:"id"`
	FarmerID  uuid.UUID       `json:"farmer_id"`
	RequestID *uuid.UUID      `json:"request_id,omitempty"`
	BatchID   *uuid.UUID      `json:"batch_id,omitempty"`
	Type      string          `json:"type"`
	FeedType  string          `json:"feed_type"`
	Bags      int             `json:"bags"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	IssuedAt  time.Time       `json:"issued_at"`
	IssuedBy  string          `json:"issued_by,omitempty"`
}

// ReceivablesReport is the program-wide receivables picture: aggregate
// totals, the largest debtors, and the latest money received
type ReceivablesReport struct {
	AsOf           time.Time         `json:"as_of"`
	Totals         finance.Totals    `json:"totals"`
	Debtors        []finance.Balance `json:"debtors"`
	RecentPayments []PaymentResponse `json:"recent_payments"`
}

// DueSoonResponse lists distributions whose payment falls due shortly
type DueSoonResponse struct {
	From          time.Time              `json:"from"`
	To            time.Time              `json:"to"`
	Distributions []DistributionResponse `json:"distributions"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		FarmerID:       p.FarmerID,
		RequestID:      p.RequestID,
		DistributionID: p.DistributionID,
		Amount:         p.Amount,
		Purpose:        string(p.Purpose),
		PaidAt:         p.PaidAt,
		ReceivedBy:     p.ReceivedBy,
		Notes:          p.Notes,
	}
}

// ToDistributionResponse converts a domain distribution to a response DTO
func ToDistributionResponse(d *finance.Distribution) DistributionResponse {
	return DistributionResponse{
		ID:        d.ID,
		FarmerID:  d.FarmerID,
		RequestID: d.RequestID,
		BatchID:   d.BatchID,
		Type:      string(d.Type),
		FeedType:  d.FeedType,
		Bags:      d.Bags,
		UnitPrice: d.UnitPrice,
		Amount:    d.TotalAmount().Amount(),
		DueDate:   d.DueDate,
		IssuedAt:  d.IssuedAt,
		IssuedBy:  d.IssuedBy,
	}
}
