package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentRepository implements finance.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var p finance.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByFarmerID finds all payments received from a farmer
func (r *GormPaymentRepository) FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]finance.Payment, error) {
	var payments []finance.Payment
	if err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("paid_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll finds all payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Payment, error) {
	var payments []finance.Payment
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.Payment{}), filter)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates a payment record
func (r *GormPaymentRepository) Save(ctx context.Context, p *finance.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&finance.Payment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies pagination, ordering and conditions to the query
func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentSortFields, "paid_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyConditions applies key filters without pagination
func (r *GormPaymentRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "farmer_id":
			query = query.Where("farmer_id = ?", value)
		case "purpose":
			query = query.Where("purpose = ?", value)
		case "request_id":
			query = query.Where("request_id = ?", value)
		}
	}

	return query
}

// Ensure GormPaymentRepository implements finance.PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
