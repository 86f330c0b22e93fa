package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBatch = "StockBatch"

// Event type constants
const (
	EventTypeBatchReceived = "StockBatchReceived"
	EventTypeBatchDepleted = "StockBatchDepleted"
)

// BatchReceivedEvent is published when a new delivery is recorded
type BatchReceivedEvent struct {
	shared.BaseDomainEvent
	BatchID     uuid.UUID `json:"batch_id"`
	Category    Category  `json:"category"`
	TypeCode    string    `json:"type_code"`
	Quantity    int       `json:"quantity"`
	ArrivalDate time.Time `json:"arrival_date"`
}

// NewBatchReceivedEvent creates a new BatchReceivedEvent
func NewBatchReceivedEvent(b *Batch) *BatchReceivedEvent {
	return &BatchReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchReceived, AggregateTypeBatch, b.ID),
		BatchID:         b.ID,
		Category:        b.Category,
		TypeCode:        b.TypeCode,
		Quantity:        b.Quantity,
		ArrivalDate:     b.ArrivalDate,
	}
}

// BatchDepletedEvent is published when a batch reaches zero quantity
type BatchDepletedEvent struct {
	shared.BaseDomainEvent
	BatchID  uuid.UUID `json:"batch_id"`
	Category Category  `json:"category"`
	TypeCode string    `json:"type_code"`
}

// NewBatchDepletedEvent creates a new BatchDepletedEvent
func NewBatchDepletedEvent(b *Batch) *BatchDepletedEvent {
	return &BatchDepletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchDepleted, AggregateTypeBatch, b.ID),
		BatchID:         b.ID,
		Category:        b.Category,
		TypeCode:        b.TypeCode,
	}
}
