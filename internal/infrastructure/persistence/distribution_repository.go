package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/finance"
	"github.com/poultry/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDistributionRepository implements finance.DistributionRepository using GORM
type GormDistributionRepository struct {
	db *gorm.DB
}

// NewGormDistributionRepository creates a new GormDistributionRepository
func NewGormDistributionRepository(db *gorm.DB) *GormDistributionRepository {
	return &GormDistributionRepository{db: db}
}

// FindByID finds a distribution by ID
func (r *GormDistributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Distribution, error) {
	var d finance.Distribution
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByFarmerID finds all distributions issued to a farmer
func (r *GormDistributionRepository) FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]finance.Distribution, error) {
	var distributions []finance.Distribution
	if err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("issued_at ASC").
		Find(&distributions).Error; err != nil {
		return nil, err
	}
	return distributions, nil
}

// FindAll finds all distributions matching the filter
func (r *GormDistributionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Distribution, error) {
	var distributions []finance.Distribution
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.Distribution{}), filter)

	if err := query.Find(&distributions).Error; err != nil {
		return nil, err
	}
	return distributions, nil
}

// FindDueBetween finds initial distributions whose due date falls in the
// given window, earliest due first
func (r *GormDistributionRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]finance.Distribution, error) {
	var distributions []finance.Distribution
	if err := r.db.WithContext(ctx).
		Where("type = ? AND due_date IS NOT NULL AND due_date >= ? AND due_date <= ?",
			finance.DistributionTypeInitial, from, to).
		Order("due_date ASC").
		Find(&distributions).Error; err != nil {
		return nil, err
	}
	return distributions, nil
}

// Save creates or updates a distribution
func (r *GormDistributionRepository) Save(ctx context.Context, d *finance.Distribution) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// SaveAll creates or updates several distributions
func (r *GormDistributionRepository) SaveAll(ctx context.Context, distributions []*finance.Distribution) error {
	if len(distributions) == 0 {
		return nil
	}
	for _, d := range distributions {
		if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
			return err
		}
	}
	return nil
}

// Count counts distributions matching the filter
func (r *GormDistributionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&finance.Distribution{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies pagination, ordering and conditions to the query
func (r *GormDistributionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DistributionSortFields, "issued_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyConditions applies key filters without pagination
func (r *GormDistributionRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "farmer_id":
			query = query.Where("farmer_id = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "feed_type":
			query = query.Where("feed_type = ?", value)
		}
	}

	return query
}

// Ensure GormDistributionRepository implements finance.DistributionRepository
var _ finance.DistributionRepository = (*GormDistributionRepository)(nil)
