package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/domain/stock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchRepository implements stock.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a batch by ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Batch, error) {
	var b stock.Batch
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByIDForUpdate finds a batch by ID with a row lock for update
func (r *GormBatchRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*stock.Batch, error) {
	var b stock.Batch
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByIDsForUpdate finds several batches with row locks, ordered by ID
// so concurrent transactions acquire locks in the same order
func (r *GormBatchRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]stock.Batch, error) {
	if len(ids) == 0 {
		return []stock.Batch{}, nil
	}

	var batches []stock.Batch
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindAvailableByType finds non-empty batches of the given category and type,
// oldest arrival first so allocation drains the oldest stock
func (r *GormBatchRepository) FindAvailableByType(ctx context.Context, category stock.Category, typeCode string) ([]stock.Batch, error) {
	return r.findAvailableByType(ctx, r.db, category, typeCode)
}

// FindAvailableByTypeForUpdate is FindAvailableByType with row locks
func (r *GormBatchRepository) FindAvailableByTypeForUpdate(ctx context.Context, category stock.Category, typeCode string) ([]stock.Batch, error) {
	return r.findAvailableByType(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), category, typeCode)
}

func (r *GormBatchRepository) findAvailableByType(ctx context.Context, db *gorm.DB, category stock.Category, typeCode string) ([]stock.Batch, error) {
	var batches []stock.Batch
	if err := db.WithContext(ctx).
		Where("category = ? AND type_code = ? AND quantity > 0", category, typeCode).
		Order("arrival_date ASC, created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindAll finds all batches matching the filter
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Batch, error) {
	var batches []stock.Batch
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.Batch{}), filter)

	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindByCategory finds batches of the given category
func (r *GormBatchRepository) FindByCategory(ctx context.Context, category stock.Category, filter shared.Filter) ([]stock.Batch, error) {
	var batches []stock.Batch
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&stock.Batch{}).
			Where("category = ?", category),
		filter,
	)

	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, b *stock.Batch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SaveAll creates or updates several batches
func (r *GormBatchRepository) SaveAll(ctx context.Context, batches []*stock.Batch) error {
	if len(batches) == 0 {
		return nil
	}
	for _, b := range batches {
		if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete deletes a batch
func (r *GormBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&stock.Batch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts batches matching the filter
func (r *GormBatchRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&stock.Batch{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumQuantityByType returns the total remaining quantity for a type
func (r *GormBatchRepository) SumQuantityByType(ctx context.Context, category stock.Category, typeCode string) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&stock.Batch{}).
		Where("category = ? AND type_code = ?", category, typeCode).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// applyFilter applies pagination, ordering and conditions to the query
func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BatchSortFields, "arrival_date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyConditions applies key filters without pagination
func (r *GormBatchRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "type_code":
			query = query.Where("type_code = ?", value)
		case "in_stock":
			if value == true {
				query = query.Where("quantity > 0")
			}
		}
	}

	return query
}

// Ensure GormBatchRepository implements stock.BatchRepository
var _ stock.BatchRepository = (*GormBatchRepository)(nil)
