package event

import (
	"context"

	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// AuditLogHandler writes an audit trail entry for every program event.
// It subscribes to all lifecycle events so that farmer registrations,
// request decisions, stock movements and payments show up in the logs
// even when no other handler cares about them.
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates an audit handler writing to the given logger
func NewAuditLogHandler(logger *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		logger: logger.Named("audit"),
	}
}

// Handle logs the event with its aggregate identity
func (h *AuditLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	}

	switch e := event.(type) {
	case *farmer.FarmerRegisteredEvent:
		fields = append(fields, zap.String("nin", e.NIN))
	case *request.RequestSubmittedEvent:
		fields = append(fields,
			zap.String("kind", string(e.Kind)),
			zap.Int("quantity", e.Quantity),
		)
	case *request.RequestApprovedEvent:
		fields = append(fields, zap.String("decided_by", e.DecidedBy))
	case *request.RequestRejectedEvent:
		fields = append(fields, zap.String("decided_by", e.DecidedBy))
	case *finance.PaymentRecordedEvent:
		fields = append(fields,
			zap.String("purpose", string(e.Purpose)),
			zap.String("amount", e.Amount.String()),
		)
	}

	h.logger.Info(event.EventType(), fields...)
	return nil
}

// EventTypes returns the event types audited by this handler
func (h *AuditLogHandler) EventTypes() []string {
	return []string{
		farmer.EventTypeFarmerRegistered,
		farmer.EventTypeFarmerPromoted,
		stock.EventTypeBatchReceived,
		stock.EventTypeBatchDepleted,
		request.EventTypeRequestSubmitted,
		request.EventTypeRequestApproved,
		request.EventTypeRequestRejected,
		request.EventTypeRequestPickedUp,
		finance.EventTypeFeedDistributed,
		finance.EventTypePaymentRecorded,
	}
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
