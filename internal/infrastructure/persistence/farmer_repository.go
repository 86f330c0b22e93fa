package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFarmerRepository implements farmer.Repository using GORM
type GormFarmerRepository struct {
	db *gorm.DB
}

// NewGormFarmerRepository creates a new GormFarmerRepository
func NewGormFarmerRepository(db *gorm.DB) *GormFarmerRepository {
	return &GormFarmerRepository{db: db}
}

// FindByID finds a farmer by ID
func (r *GormFarmerRepository) FindByID(ctx context.Context, id uuid.UUID) (*farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByIDForUpdate finds a farmer by ID with a row lock for update
func (r *GormFarmerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByNIN finds a farmer by national identification number
func (r *GormFarmerRepository) FindByNIN(ctx context.Context, nin string) (*farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.WithContext(ctx).First(&f, "nin = ?", nin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindAll finds all farmers matching the filter
func (r *GormFarmerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]farmer.Farmer, error) {
	var farmers []farmer.Farmer
	query := r.applyFilter(r.db.WithContext(ctx).Model(&farmer.Farmer{}), filter)

	if err := query.Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

// FindByType finds farmers by support tier
func (r *GormFarmerRepository) FindByType(ctx context.Context, farmerType farmer.FarmerType, filter shared.Filter) ([]farmer.Farmer, error) {
	var farmers []farmer.Farmer
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&farmer.Farmer{}).
			Where("type = ?", farmerType),
		filter,
	)

	if err := query.Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

// Save creates or updates a farmer
func (r *GormFarmerRepository) Save(ctx context.Context, f *farmer.Farmer) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete deletes a farmer
func (r *GormFarmerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&farmer.Farmer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts farmers matching the filter
func (r *GormFarmerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&farmer.Farmer{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNIN checks if a farmer with the given NIN is already registered
func (r *GormFarmerRepository) ExistsByNIN(ctx context.Context, nin string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&farmer.Farmer{}).
		Where("nin = ?", nin).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies pagination, ordering and conditions to the query
func (r *GormFarmerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FarmerSortFields, "registered_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyConditions applies search and key filters without pagination
func (r *GormFarmerRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR nin ILIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "village":
			query = query.Where("village = ?", value)
		case "district":
			query = query.Where("district = ?", value)
		}
	}

	return query
}

// Ensure GormFarmerRepository implements farmer.Repository
var _ farmer.Repository = (*GormFarmerRepository)(nil)
