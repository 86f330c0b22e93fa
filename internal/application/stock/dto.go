package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// RecordChickIntakeRequest represents a chick delivery to record
type RecordChickIntakeRequest struct {
	ChickType   string `json:"chick_type" binding:"required,oneof=broiler_local broiler_exotic layer_local layer_exotic"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	ArrivalDate string `json:"arrival_date" binding:"required,datetime=2006-01-02"`
	AgeDays     int    `json:"age_days" binding:"min=0"`
	Source      string `json:"source" binding:"max=200"`
	Notes       string `json:"notes"`
}

// RecordFeedIntakeRequest represents a feed delivery to record
type RecordFeedIntakeRequest struct {
	FeedType    string          `json:"feed_type" binding:"required,oneof=starter grower finisher"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	ArrivalDate string          `json:"arrival_date" binding:"required,datetime=2006-01-02"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Source      string          `json:"source" binding:"max=200"`
	Notes       string          `json:"notes"`
}

// BatchResponse represents a stock batch in API responses
type BatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	TypeCode    string          `json:"type_code"`
	Quantity    int             `json:"quantity"`
	ArrivalDate time.Time       `json:"arrival_date"`
	AgeDays     *int            `json:"age_days,omitempty"`
	CurrentAge  int             `json:"current_age"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Source      string          `json:"source"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BatchListFilter represents filter options for the batch list
type BatchListFilter struct {
	Category string `form:"category" binding:"omitempty,oneof=chick feed"`
	TypeCode string `form:"type_code"`
	InStock  bool   `form:"in_stock"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// TypeSummary aggregates the position for one category and type
type TypeSummary struct {
	Category string `json:"category"`
	TypeCode string `json:"type_code"`
	Total    int    `json:"total"`
	Batches  int    `json:"batches"`

	// Chick age buckets; zero for feed
	Available int `json:"available"`
	Aging     int `json:"aging"`
	Expiring  int `json:"expiring"`
}

// SummaryResponse is the store-wide stock position
type SummaryResponse struct {
	AsOf  time.Time     `json:"as_of"`
	Types []TypeSummary `json:"types"`
}

// ToBatchResponse converts a domain batch to a response DTO
func ToBatchResponse(b *stock.Batch, at time.Time) BatchResponse {
	return BatchResponse{
		ID:          b.ID,
		Category:    string(b.Category),
		TypeCode:    b.TypeCode,
		Quantity:    b.Quantity,
		ArrivalDate: b.ArrivalDate,
		AgeDays:     b.AgeDays,
		CurrentAge:  b.AgeAt(at),
		UnitPrice:   b.UnitPrice,
		Source:      b.Source,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
