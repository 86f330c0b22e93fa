package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormAllocationRepository implements stock.AllocationRepository using GORM
type GormAllocationRepository struct {
	db *gorm.DB
}

// NewGormAllocationRepository creates a new GormAllocationRepository
func NewGormAllocationRepository(db *gorm.DB) *GormAllocationRepository {
	return &GormAllocationRepository{db: db}
}

// FindByRequestID finds all allocations written for a request
func (r *GormAllocationRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]stock.Allocation, error) {
	var allocations []stock.Allocation
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

// FindByBatchID finds all allocations served from a batch
func (r *GormAllocationRepository) FindByBatchID(ctx context.Context, batchID uuid.UUID) ([]stock.Allocation, error) {
	var allocations []stock.Allocation
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

// SaveAll writes allocation lines
func (r *GormAllocationRepository) SaveAll(ctx context.Context, allocations []*stock.Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(allocations).Error
}

// Ensure GormAllocationRepository implements stock.AllocationRepository
var _ stock.AllocationRepository = (*GormAllocationRepository)(nil)
