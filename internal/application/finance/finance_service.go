package finance

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// recentPaymentLimit caps how many latest payments the receivables report carries
const recentPaymentLimit = 10

// Service handles payments and receivables reporting.
// Balances are never stored; they are recomputed from the movement records
// every time, so a correction to any record corrects the balance with it
type Service struct {
	farmerRepo       farmer.Repository
	requestRepo      request.Repository
	distributionRepo finance.DistributionRepository
	paymentRepo      finance.PaymentRepository
	calculator       *finance.Calculator
	eventBus         shared.EventBus
	logger           *zap.Logger
}

// NewService creates a new finance Service
func NewService(
	farmerRepo farmer.Repository,
	requestRepo request.Repository,
	distributionRepo finance.DistributionRepository,
	paymentRepo finance.PaymentRepository,
	calculator *finance.Calculator,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *Service {
	return &Service{
		farmerRepo:       farmerRepo,
		requestRepo:      requestRepo,
		distributionRepo: distributionRepo,
		paymentRepo:      paymentRepo,
		calculator:       calculator,
		eventBus:         eventBus,
		logger:           logger,
	}
}

// RecordPayment records money received from a farmer.
// Any amount is accepted; partial payments simply leave a smaller balance
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	if _, err := s.farmerRepo.FindByID(ctx, req.FarmerID); err != nil {
		return nil, err
	}

	p, err := finance.NewPayment(
		req.FarmerID,
		valueobject.NewMoneyUGX(req.Amount),
		finance.PaymentPurpose(req.Purpose),
		req.ReceivedBy,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	if req.DistributionID != nil {
		d, err := s.distributionRepo.FindByID(ctx, *req.DistributionID)
		if err != nil {
			return nil, err
		}
		if d.FarmerID != req.FarmerID {
			return nil, shared.NewDomainError("INVALID_INPUT", "Distribution belongs to a different farmer")
		}
		p.LinkDistribution(d.ID)
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, finance.NewPaymentRecordedEvent(p))
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", p.ID.String()),
		zap.String("farmer_id", p.FarmerID.String()),
		zap.String("purpose", req.Purpose),
		zap.String("amount", p.Amount.String()))

	resp := ToPaymentResponse(p)
	return &resp, nil
}

// GetFarmerBalance computes one farmer's receivable position
func (s *Service) GetFarmerBalance(ctx context.Context, farmerID uuid.UUID) (*finance.Balance, error) {
	if _, err := s.farmerRepo.FindByID(ctx, farmerID); err != nil {
		return nil, err
	}

	picked, err := s.pickedChicksFor(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	distributions, err := s.distributionRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	balance := s.calculator.BalanceFor(farmerID, picked, distributions, payments, time.Now())
	return &balance, nil
}

// Receivables reports the program-wide position: per-category totals,
// the topN largest debtors (topN <= 0 returns all), and recent payments
func (s *Service) Receivables(ctx context.Context, topN int) (*ReceivablesReport, error) {
	picked, err := s.allPickedChicks(ctx)
	if err != nil {
		return nil, err
	}

	f := shared.DefaultFilter()
	f.PageSize = 0 // reports cover everything
	distributions, err := s.distributionRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	debtors := s.calculator.RankDebtors(picked, distributions, payments, now)
	totals := finance.Aggregate(s.calculator.AllBalances(picked, distributions, payments, now))
	if topN > 0 && len(debtors) > topN {
		debtors = debtors[:topN]
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaidAt.After(payments[j].PaidAt)
	})
	if len(payments) > recentPaymentLimit {
		payments = payments[:recentPaymentLimit]
	}
	recent := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		recent = append(recent, ToPaymentResponse(&payments[i]))
	}

	return &ReceivablesReport{
		AsOf:           now,
		Totals:         totals,
		Debtors:        debtors,
		RecentPayments: recent,
	}, nil
}

// DueSoon lists initial distributions whose payment falls due in the next
// lookahead days, earliest first
func (s *Service) DueSoon(ctx context.Context, lookaheadDays int) (*DueSoonResponse, error) {
	from := time.Now()
	to := from.AddDate(0, 0, lookaheadDays)

	distributions, err := s.distributionRepo.FindDueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]DistributionResponse, 0, len(distributions))
	for i := range distributions {
		responses = append(responses, ToDistributionResponse(&distributions[i]))
	}

	return &DueSoonResponse{From: from, To: to, Distributions: responses}, nil
}

// ListFarmerPayments retrieves all payments received from a farmer
func (s *Service) ListFarmerPayments(ctx context.Context, farmerID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses, nil
}

// ListFarmerDistributions retrieves all feed issued to a farmer
func (s *Service) ListFarmerDistributions(ctx context.Context, farmerID uuid.UUID) ([]DistributionResponse, error) {
	distributions, err := s.distributionRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	responses := make([]DistributionResponse, 0, len(distributions))
	for i := range distributions {
		responses = append(responses, ToDistributionResponse(&distributions[i]))
	}
	return responses, nil
}

func (s *Service) pickedChicksFor(ctx context.Context, farmerID uuid.UUID) ([]finance.PickedChicks, error) {
	requests, err := s.requestRepo.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	picked := make([]finance.PickedChicks, 0)
	for i := range requests {
		r := &requests[i]
		if r.Kind != request.KindChick || !r.Picked || r.PickedAt == nil {
			continue
		}
		picked = append(picked, finance.PickedChicks{
			FarmerID: r.FarmerID,
			Quantity: r.Quantity,
			PickedAt: *r.PickedAt,
		})
	}
	return picked, nil
}

func (s *Service) allPickedChicks(ctx context.Context) ([]finance.PickedChicks, error) {
	requests, err := s.requestRepo.FindPicked(ctx, request.KindChick)
	if err != nil {
		return nil, err
	}

	picked := make([]finance.PickedChicks, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		if r.PickedAt == nil {
			continue
		}
		picked = append(picked, finance.PickedChicks{
			FarmerID: r.FarmerID,
			Quantity: r.Quantity,
			PickedAt: *r.PickedAt,
		})
	}
	return picked, nil
}
