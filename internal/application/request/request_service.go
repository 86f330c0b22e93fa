package request

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"github.com/poultry/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// Service handles the request lifecycle from submission through pickup.
// Reads go through the plain repositories; decisions that move stock or
// money run inside a transaction scope
type Service struct {
	txScope     TransactionScope
	farmerRepo  farmer.Repository
	requestRepo request.Repository
	eventBus    shared.EventBus
	policy      Policy
	logger      *zap.Logger
}

// NewService creates a new request Service
func NewService(
	txScope TransactionScope,
	farmerRepo farmer.Repository,
	requestRepo request.Repository,
	eventBus shared.EventBus,
	policy Policy,
	logger *zap.Logger,
) *Service {
	return &Service{
		txScope:     txScope,
		farmerRepo:  farmerRepo,
		requestRepo: requestRepo,
		eventBus:    eventBus,
		policy:      policy,
		logger:      logger,
	}
}

// SubmitChickRequest submits a farmer's application for chicks.
// The quantity cap for the farmer's tier and the cooldown window since
// their last chick request are both enforced here, before any review
func (s *Service) SubmitChickRequest(ctx context.Context, req SubmitChickRequestRequest) (*RequestResponse, error) {
	f, err := s.farmerRepo.FindByID(ctx, req.FarmerID)
	if err != nil {
		return nil, err
	}
	if !f.IsActive() {
		return nil, shared.NewDomainError("INACTIVE_FARMER", "Farmer is not active in the program")
	}

	if err := request.ValidateQuantityCap(f.Type, req.Quantity, s.policy.Caps); err != nil {
		return nil, err
	}

	last, err := s.requestRepo.FindLastByFarmerAndKind(ctx, f.ID, request.KindChick)
	if err != nil {
		return nil, err
	}
	var lastSubmitted *time.Time
	if last != nil {
		lastSubmitted = &last.SubmittedAt
	}
	if err := request.ValidateCooldown(lastSubmitted, s.policy.CooldownDays, time.Now()); err != nil {
		return nil, err
	}

	r, err := request.NewChickRequest(f.ID, stock.ChickType(req.ChickType), req.Quantity, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r)

	s.logger.Info("chick request submitted",
		zap.String("request_id", r.ID.String()),
		zap.String("farmer_id", f.ID.String()),
		zap.Int("quantity", req.Quantity))

	resp := ToRequestResponse(r)
	return &resp, nil
}

// SubmitFeedRequest submits a farmer's application to buy extra feed.
// Feed requests carry no cap and no cooldown; the farmer pays in full
// at pickup instead
func (s *Service) SubmitFeedRequest(ctx context.Context, req SubmitFeedRequestRequest) (*RequestResponse, error) {
	f, err := s.farmerRepo.FindByID(ctx, req.FarmerID)
	if err != nil {
		return nil, err
	}
	if !f.IsActive() {
		return nil, shared.NewDomainError("INACTIVE_FARMER", "Farmer is not active in the program")
	}

	r, err := request.NewFeedRequest(f.ID, stock.FeedType(req.FeedType), req.Quantity, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r)

	resp := ToRequestResponse(r)
	return &resp, nil
}

// Approve approves a pending request.
// Chick approvals allocate and deduct stock in the same transaction, either
// from operator-specified batches or oldest first. Feed approvals only move
// the status; feed stock is deducted when the farmer collects and pays
func (s *Service) Approve(ctx context.Context, id uuid.UUID, req ApproveRequestRequest) (*RequestResponse, error) {
	var approved *request.Request

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		r, err := repos.Requests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if r.Kind == request.KindChick {
			if err := s.allocateChickStock(ctx, repos, r, req.Allocations); err != nil {
				return err
			}
		}

		if err := r.Approve(req.DecidedBy, req.Note); err != nil {
			return err
		}
		if err := repos.Requests().Save(ctx, r); err != nil {
			return err
		}

		approved = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, approved)

	s.logger.Info("request approved",
		zap.String("request_id", approved.ID.String()),
		zap.String("kind", string(approved.Kind)),
		zap.String("decided_by", req.DecidedBy))

	resp := ToRequestResponse(approved)
	return &resp, nil
}

// allocateChickStock deducts the approved quantity from chick batches and
// writes the allocation lines. All touched batches are row-locked first
func (s *Service) allocateChickStock(ctx context.Context, repos TransactionalRepositories, r *request.Request, lines []AllocationLineInput) error {
	now := time.Now()
	category := r.Kind.Category()

	var batches []stock.Batch
	var allocations []*stock.Allocation

	if len(lines) > 0 {
		ids := make([]uuid.UUID, 0, len(lines))
		seen := make(map[uuid.UUID]bool, len(lines))
		allocLines := make([]stock.AllocationLine, 0, len(lines))
		for _, line := range lines {
			if !seen[line.BatchID] {
				seen[line.BatchID] = true
				ids = append(ids, line.BatchID)
			}
			allocLines = append(allocLines, stock.AllocationLine{BatchID: line.BatchID, Quantity: line.Quantity})
		}

		var err error
		batches, err = repos.Batches().FindByIDsForUpdate(ctx, ids)
		if err != nil {
			return err
		}

		if err := stock.ValidateAllocations(allocLines, batches, category, r.TypeCode, r.Quantity, s.policy.MaxBatchAgeDays, now); err != nil {
			return err
		}

		ptrs := batchPointers(batches)
		if err := stock.ApplyAllocations(ptrs, allocLines); err != nil {
			return err
		}
		if err := repos.Batches().SaveAll(ctx, ptrs); err != nil {
			return err
		}

		for _, line := range allocLines {
			a, err := stock.NewAllocation(r.ID, line.BatchID, line.Quantity)
			if err != nil {
				return err
			}
			allocations = append(allocations, a)
		}
	} else {
		var err error
		batches, err = repos.Batches().FindAvailableByTypeForUpdate(ctx, category, r.TypeCode)
		if err != nil {
			return err
		}

		ok, available := stock.ValidateAvailability(batches, category, r.TypeCode, r.Quantity, s.policy.MaxBatchAgeDays, now)
		if !ok {
			return shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Requested %d %s but only %d available", r.Quantity, r.TypeCode, available))
		}

		plan, err := stock.SelectFIFO(batches, category, r.TypeCode, r.Quantity, s.policy.MaxBatchAgeDays, now)
		if err != nil {
			return err
		}
		if !plan.FullySatisfied {
			return shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Requested %d %s but only %d available", r.Quantity, r.TypeCode, plan.TotalSelected))
		}

		ptrs := batchPointers(batches)
		if err := stock.ApplySelections(ptrs, plan.Selections); err != nil {
			return err
		}
		if err := repos.Batches().SaveAll(ctx, ptrs); err != nil {
			return err
		}

		for _, sel := range plan.Selections {
			a, err := stock.NewAllocation(r.ID, sel.BatchID, sel.Quantity)
			if err != nil {
				return err
			}
			allocations = append(allocations, a)
		}
	}

	return repos.Allocations().SaveAll(ctx, allocations)
}

// Reject rejects a pending request. Stock is never touched
func (s *Service) Reject(ctx context.Context, id uuid.UUID, req RejectRequestRequest) (*RequestResponse, error) {
	var rejected *request.Request

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		r, err := repos.Requests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := r.Reject(req.DecidedBy, req.Note); err != nil {
			return err
		}
		if err := repos.Requests().Save(ctx, r); err != nil {
			return err
		}
		rejected = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, rejected)

	resp := ToRequestResponse(rejected)
	return &resp, nil
}

// MarkPicked records that the farmer collected an approved request.
//
// A chick pickup promotes the farmer to the returning tier and hands out the
// starter feed entitlement on credit, due after the configured grace period.
// The entitlement is best effort; a shortfall is reported as a warning and
// never blocks the chicks.
//
// A feed pickup deducts the bags oldest first and requires payment covering
// the full price of the collected bags at their batch prices
func (s *Service) MarkPicked(ctx context.Context, id uuid.UUID, req PickupRequest) (*PickupResponse, error) {
	var result PickupResponse
	var picked *request.Request

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		r, err := repos.Requests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if r.Kind == request.KindChick {
			if err := s.pickupChicks(ctx, repos, r, req, &result); err != nil {
				return err
			}
		} else {
			if err := s.pickupFeed(ctx, repos, r, req, &result); err != nil {
				return err
			}
		}

		picked = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, picked)

	s.logger.Info("request picked up",
		zap.String("request_id", picked.ID.String()),
		zap.String("kind", string(picked.Kind)),
		zap.String("picked_by", req.PickedBy))

	result.Request = ToRequestResponse(picked)
	return &result, nil
}

func (s *Service) pickupChicks(ctx context.Context, repos TransactionalRepositories, r *request.Request, req PickupRequest, result *PickupResponse) error {
	if err := r.MarkPicked(req.PickedBy, req.Notes); err != nil {
		return err
	}

	f, err := repos.Farmers().FindByIDForUpdate(ctx, r.FarmerID)
	if err != nil {
		return err
	}
	f.Promote()
	if err := repos.Farmers().Save(ctx, f); err != nil {
		return err
	}
	s.publishEvents(ctx, f)

	var entitled []*finance.Distribution
	if s.policy.EntitlementBags > 0 {
		entitled, err = s.issueEntitlement(ctx, repos, r, req.PickedBy, result)
		if err != nil {
			return err
		}
	}

	if req.AmountPaid.IsPositive() {
		p, err := finance.NewPayment(r.FarmerID, valueobject.NewMoneyUGX(req.AmountPaid), finance.PaymentPurposeChicks, req.PickedBy, req.Notes)
		if err != nil {
			return err
		}
		p.LinkRequest(r.ID)
		if err := repos.Payments().Save(ctx, p); err != nil {
			return err
		}
	}

	if req.FeedAmountPaid.IsPositive() {
		p, err := finance.NewPayment(r.FarmerID, valueobject.NewMoneyUGX(req.FeedAmountPaid), finance.PaymentPurposeFeeds, req.PickedBy, req.Notes)
		if err != nil {
			return err
		}
		p.LinkRequest(r.ID)
		if len(entitled) > 0 {
			p.LinkDistribution(entitled[0].ID)
		}
		if err := repos.Payments().Save(ctx, p); err != nil {
			return err
		}
	}

	return repos.Requests().Save(ctx, r)
}

// issueEntitlement hands out the credit feed bags that come with a chick
// pickup. When the store is short the farmer gets what is there
func (s *Service) issueEntitlement(ctx context.Context, repos TransactionalRepositories, r *request.Request, issuedBy string, result *PickupResponse) ([]*finance.Distribution, error) {
	now := time.Now()
	feedType := string(stock.FeedTypeStarter)

	batches, err := repos.Batches().FindAvailableByTypeForUpdate(ctx, stock.CategoryFeed, feedType)
	if err != nil {
		return nil, err
	}

	plan, err := stock.SelectFIFO(batches, stock.CategoryFeed, feedType, s.policy.EntitlementBags, 0, now)
	if err != nil {
		return nil, err
	}

	var distributions []*finance.Distribution
	if plan.TotalSelected > 0 {
		ptrs := batchPointers(batches)
		if err := stock.ApplySelections(ptrs, plan.Selections); err != nil {
			return nil, err
		}
		if err := repos.Batches().SaveAll(ctx, ptrs); err != nil {
			return nil, err
		}

		dueDate := now.AddDate(0, 0, s.policy.DueDateDays)
		distributions = make([]*finance.Distribution, 0, len(plan.Selections))
		for _, sel := range plan.Selections {
			d, err := finance.NewInitialDistribution(r.FarmerID, sel.BatchID, feedType, sel.Quantity, sel.UnitPrice, dueDate, issuedBy)
			if err != nil {
				return nil, err
			}
			distributions = append(distributions, d)
		}
		if err := repos.Distributions().SaveAll(ctx, distributions); err != nil {
			return nil, err
		}
	}

	result.EntitlementBags = plan.TotalSelected
	if !plan.FullySatisfied {
		result.Warning = fmt.Sprintf("only %d of %d entitlement bags in stock", plan.TotalSelected, s.policy.EntitlementBags)
		s.logger.Warn("entitlement short on pickup",
			zap.String("request_id", r.ID.String()),
			zap.Int("issued", plan.TotalSelected),
			zap.Int("entitled", s.policy.EntitlementBags))
	}

	return distributions, nil
}

func (s *Service) pickupFeed(ctx context.Context, repos TransactionalRepositories, r *request.Request, req PickupRequest, result *PickupResponse) error {
	now := time.Now()

	batches, err := repos.Batches().FindAvailableByTypeForUpdate(ctx, stock.CategoryFeed, r.TypeCode)
	if err != nil {
		return err
	}

	plan, err := stock.SelectFIFO(batches, stock.CategoryFeed, r.TypeCode, r.Quantity, 0, now)
	if err != nil {
		return err
	}
	if !plan.FullySatisfied {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Requested %d bags of %s but only %d available", r.Quantity, r.TypeCode, plan.TotalSelected))
	}

	if req.AmountPaid.LessThan(plan.TotalPrice) {
		return shared.NewDomainError("INSUFFICIENT_PAYMENT",
			fmt.Sprintf("Paid %s but %s is due for %d bags", req.AmountPaid.StringFixed(2), plan.TotalPrice.StringFixed(2), r.Quantity))
	}

	payment, err := finance.NewPayment(r.FarmerID, valueobject.NewMoneyUGX(req.AmountPaid), finance.PaymentPurposeFeeds, req.PickedBy, req.Notes)
	if err != nil {
		return err
	}
	payment.LinkRequest(r.ID)
	if err := repos.Payments().Save(ctx, payment); err != nil {
		return err
	}

	distributions := make([]*finance.Distribution, 0, len(plan.Selections))
	for _, sel := range plan.Selections {
		d, err := finance.NewPurchaseDistribution(r.FarmerID, r.ID, sel.BatchID, r.TypeCode, sel.Quantity, sel.UnitPrice, req.PickedBy)
		if err != nil {
			return err
		}
		distributions = append(distributions, d)
	}
	if err := repos.Distributions().SaveAll(ctx, distributions); err != nil {
		return err
	}

	ptrs := batchPointers(batches)
	if err := stock.ApplySelections(ptrs, plan.Selections); err != nil {
		return err
	}
	if err := repos.Batches().SaveAll(ctx, ptrs); err != nil {
		return err
	}

	if err := r.MarkPicked(req.PickedBy, req.Notes); err != nil {
		return err
	}

	result.AmountCharged = plan.TotalPrice
	return repos.Requests().Save(ctx, r)
}

// GetByID retrieves a request by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	r, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRequestResponse(r)
	return &resp, nil
}

// ListByFarmer retrieves all requests a farmer has submitted, newest first
func (s *Service) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]RequestResponse, error) {
	requests, err := s.requestRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// List retrieves requests with filtering and pagination
func (s *Service) List(ctx context.Context, filter RequestListFilter) ([]RequestResponse, int64, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "submitted_at"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Kind != "" {
		f.Filters["kind"] = filter.Kind
	}

	requests, err := s.requestRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.requestRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	return toResponses(requests), total, nil
}

// ListAwaitingPickup retrieves approved requests not yet collected
func (s *Service) ListAwaitingPickup(ctx context.Context, kind string, filter RequestListFilter) ([]RequestResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "submitted_at"
	f.OrderDir = "asc"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	requests, err := s.requestRepo.FindAwaitingPickup(ctx, request.Kind(kind), f)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func toResponses(requests []request.Request) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, ToRequestResponse(&requests[i]))
	}
	return responses
}

func batchPointers(batches []stock.Batch) []*stock.Batch {
	ptrs := make([]*stock.Batch, 0, len(batches))
	for i := range batches {
		ptrs = append(ptrs, &batches[i])
	}
	return ptrs
}

// publishEvents publishes domain events from an aggregate
func (s *Service) publishEvents(ctx context.Context, agg shared.AggregateRoot) {
	if s.eventBus == nil || agg == nil {
		return
	}

	for _, event := range agg.GetDomainEvents() {
		_ = s.eventBus.Publish(ctx, event)
	}
	agg.ClearDomainEvents()
}
