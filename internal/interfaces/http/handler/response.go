package handler

import "github.com/poultry/backend/internal/interfaces/http/dto"

// APIResponse represents a generic API response with a typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Success bool           `json:"success"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// CountData represents count data in response
type CountData struct {
	Count int64 `json:"count"`
}
