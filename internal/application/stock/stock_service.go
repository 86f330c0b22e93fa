package stock

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// Chick age buckets for the stock summary, in days
const (
	chickAvailableMaxAge = 14
	chickAgingMaxAge     = 21
)

// Service handles stock intake and reporting
type Service struct {
	batchRepo stock.BatchRepository
	eventBus  shared.EventBus
	logger    *zap.Logger
}

// NewService creates a new stock service
func NewService(batchRepo stock.BatchRepository, eventBus shared.EventBus, logger *zap.Logger) *Service {
	return &Service{
		batchRepo: batchRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// RecordChickIntake records a delivery of chicks as a new batch
func (s *Service) RecordChickIntake(ctx context.Context, req RecordChickIntakeRequest) (*BatchResponse, error) {
	arrival, err := time.Parse("2006-01-02", req.ArrivalDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ARRIVAL_DATE", "Arrival date must be in YYYY-MM-DD format")
	}

	batch, err := stock.NewChickBatch(stock.ChickType(req.ChickType), req.Quantity, arrival, req.AgeDays, req.Source)
	if err != nil {
		return nil, err
	}
	batch.Notes = req.Notes

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, batch)

	s.logger.Info("chick intake recorded",
		zap.String("batch_id", batch.ID.String()),
		zap.String("chick_type", req.ChickType),
		zap.Int("quantity", req.Quantity))

	resp := ToBatchResponse(batch, time.Now())
	return &resp, nil
}

// RecordFeedIntake records a delivery of feed bags as a new batch
func (s *Service) RecordFeedIntake(ctx context.Context, req RecordFeedIntakeRequest) (*BatchResponse, error) {
	arrival, err := time.Parse("2006-01-02", req.ArrivalDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ARRIVAL_DATE", "Arrival date must be in YYYY-MM-DD format")
	}

	batch, err := stock.NewFeedBatch(stock.FeedType(req.FeedType), req.Quantity, arrival, req.UnitPrice, req.Source)
	if err != nil {
		return nil, err
	}
	batch.Notes = req.Notes

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, batch)

	s.logger.Info("feed intake recorded",
		zap.String("batch_id", batch.ID.String()),
		zap.String("feed_type", req.FeedType),
		zap.Int("quantity", req.Quantity))

	resp := ToBatchResponse(batch, time.Now())
	return &resp, nil
}

// GetBatch retrieves a batch by ID
func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBatchResponse(batch, time.Now())
	return &resp, nil
}

// ListBatches lists batches with pagination
func (s *Service) ListBatches(ctx context.Context, filter BatchListFilter) (*shared.Paginated[BatchResponse], error) {
	f := shared.DefaultFilter()
	f.OrderBy = "arrival_date"
	f.OrderDir = "asc"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	if filter.TypeCode != "" {
		f.Filters["type_code"] = filter.TypeCode
	}
	if filter.InStock {
		f.Filters["in_stock"] = true
	}

	batches, err := s.batchRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.batchRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i], now)
	}

	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Summary reports the remaining quantity per category and type
// Chick quantities are broken down by age into available, aging and
// expiring buckets so the store can see what must move first
func (s *Service) Summary(ctx context.Context) (*SummaryResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 0 // no pagination, summaries cover the whole store
	f.Filters["in_stock"] = true

	batches, err := s.batchRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	byType := make(map[string]*TypeSummary)
	var keys []string
	for i := range batches {
		b := &batches[i]
		key := string(b.Category) + "/" + b.TypeCode
		summary, ok := byType[key]
		if !ok {
			summary = &TypeSummary{Category: string(b.Category), TypeCode: b.TypeCode}
			byType[key] = summary
			keys = append(keys, key)
		}

		summary.Total += b.Quantity
		summary.Batches++

		if b.IsChick() {
			age := b.AgeAt(now)
			switch {
			case age <= chickAvailableMaxAge:
				summary.Available += b.Quantity
			case age <= chickAgingMaxAge:
				summary.Aging += b.Quantity
			default:
				summary.Expiring += b.Quantity
			}
		}
	}

	sort.Strings(keys)
	types := make([]TypeSummary, 0, len(keys))
	for _, key := range keys {
		types = append(types, *byType[key])
	}

	return &SummaryResponse{AsOf: now, Types: types}, nil
}

func (s *Service) publishEvents(ctx context.Context, batch *stock.Batch) {
	if s.eventBus == nil {
		return
	}

	for _, event := range batch.GetDomainEvents() {
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	batch.ClearDomainEvents()
}
