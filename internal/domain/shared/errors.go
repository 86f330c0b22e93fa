package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code, so an error built with call-site
// detail still satisfies errors.Is against its sentinel
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// Program eligibility and allocation errors
var (
	ErrQuantityCapExceeded = NewDomainError("QUANTITY_CAP_EXCEEDED", "Requested quantity exceeds the cap for this farmer type")
	ErrCooldownActive      = NewDomainError("COOLDOWN_ACTIVE", "Farmer submitted another request within the cooldown window")
	ErrAllocationMismatch  = NewDomainError("ALLOCATION_MISMATCH", "Allocated quantities do not sum to the requested quantity")
	ErrTypeMismatch        = NewDomainError("TYPE_MISMATCH", "Batch type does not match the requested type")
	ErrInsufficientBatch   = NewDomainError("INSUFFICIENT_BATCH", "Batch does not hold the allocated quantity")
	ErrStaleBatch          = NewDomainError("STALE_BATCH", "Batch exceeds the maximum allowed age")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInsufficientPayment = NewDomainError("INSUFFICIENT_PAYMENT", "Recorded payments do not cover the amount due")
)
