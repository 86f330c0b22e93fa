package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository implements request.Repository using GORM
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID finds a request by ID
func (r *GormRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	var req request.Request
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByIDForUpdate finds a request by ID with a row lock for update
func (r *GormRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	var req request.Request
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByFarmerID finds all requests submitted by a farmer, newest first
func (r *GormRequestRepository) FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]request.Request, error) {
	var requests []request.Request
	if err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("submitted_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindLastByFarmerAndKind finds the farmer's most recent request of the given
// kind by submission time, nil if none exists
func (r *GormRequestRepository) FindLastByFarmerAndKind(ctx context.Context, farmerID uuid.UUID, kind request.Kind) (*request.Request, error) {
	var req request.Request
	if err := r.db.WithContext(ctx).
		Where("farmer_id = ? AND kind = ?", farmerID, kind).
		Order("submitted_at DESC").
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

// FindAll finds all requests matching the filter
func (r *GormRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.Request, error) {
	var requests []request.Request
	query := r.applyFilter(r.db.WithContext(ctx).Model(&request.Request{}), filter)

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByStatus finds requests in the given review state
func (r *GormRequestRepository) FindByStatus(ctx context.Context, status request.Status, filter shared.Filter) ([]request.Request, error) {
	var requests []request.Request
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.Request{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAwaitingPickup finds approved requests not yet collected
func (r *GormRequestRepository) FindAwaitingPickup(ctx context.Context, kind request.Kind, filter shared.Filter) ([]request.Request, error) {
	var requests []request.Request
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.Request{}).
			Where("kind = ? AND status = ? AND picked = ?", kind, request.StatusApproved, false),
		filter,
	)

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindPicked finds all collected requests of the given kind
func (r *GormRequestRepository) FindPicked(ctx context.Context, kind request.Kind) ([]request.Request, error) {
	var requests []request.Request
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND picked = ?", kind, true).
		Order("picked_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a request
func (r *GormRequestRepository) Save(ctx context.Context, req *request.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Count counts requests matching the filter
func (r *GormRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&request.Request{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts requests in the given review state
func (r *GormRequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&request.Request{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies pagination, ordering and conditions to the query
func (r *GormRequestRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, RequestSortFields, "submitted_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyConditions applies key filters without pagination
func (r *GormRequestRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "farmer_id":
			query = query.Where("farmer_id = ?", value)
		case "kind":
			query = query.Where("kind = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "type_code":
			query = query.Where("type_code = ?", value)
		case "picked":
			query = query.Where("picked = ?", value)
		}
	}

	return query
}

// Ensure GormRequestRepository implements request.Repository
var _ request.Repository = (*GormRequestRepository)(nil)
