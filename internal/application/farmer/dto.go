package farmer

import (
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/farmer"
)

// RegisterFarmerRequest represents a request to enroll a farmer
type RegisterFarmerRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	NIN         string `json:"nin" binding:"required,nin"`
	Phone       string `json:"phone" binding:"max=50"`
	Gender      string `json:"gender" binding:"required,oneof=male female"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Village     string `json:"village" binding:"max=200"`
	District    string `json:"district" binding:"max=100"`
	Notes       string `json:"notes"`
	RegisteredBy string `json:"-"` // Set from the request context, not the body
}

// UpdateFarmerRequest represents a request to update a farmer's details
type UpdateFarmerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Village  *string `json:"village" binding:"omitempty,max=200"`
	District *string `json:"district" binding:"omitempty,max=100"`
	Notes    *string `json:"notes"`
}

// FarmerResponse represents a farmer in API responses
type FarmerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	NIN          string    `json:"nin"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Gender       string    `json:"gender"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Village      string    `json:"village"`
	District     string    `json:"district"`
	RegisteredAt time.Time `json:"registered_at"`
	RegisteredBy string    `json:"registered_by"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// FarmerListFilter represents filter options for the farmer list
type FarmerListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=starter returning"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	District string `form:"district"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToFarmerResponse converts a domain farmer to a response DTO
func ToFarmerResponse(f *farmer.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:           f.ID,
		Name:         f.Name,
		Phone:        f.Phone,
		NIN:          f.NIN,
		Type:         string(f.Type),
		Status:       string(f.Status),
		Gender:       string(f.Gender),
		DateOfBirth:  f.DateOfBirth,
		Village:      f.Village,
		District:     f.District,
		RegisteredAt: f.RegisteredAt,
		RegisteredBy: f.RegisteredBy,
		Notes:        f.Notes,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
		Version:      f.GetVersion(),
	}
}
