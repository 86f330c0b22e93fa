package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeQuantityCapExceeded is used when a request exceeds the farmer's cap
	ErrCodeQuantityCapExceeded = "ERR_QUANTITY_CAP_EXCEEDED"
	// ErrCodeCooldownActive is used when a farmer requests again too soon
	ErrCodeCooldownActive = "ERR_COOLDOWN_ACTIVE"
	// ErrCodeInactiveFarmer is used when an inactive farmer submits a request
	ErrCodeInactiveFarmer = "ERR_INACTIVE_FARMER"
	// ErrCodeInsufficientStock is used when stock cannot cover a request
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	// ErrCodeInsufficientBatch is used when a batch cannot cover an allocation
	ErrCodeInsufficientBatch = "ERR_INSUFFICIENT_BATCH"
	// ErrCodeInsufficientPayment is used when payments do not cover the amount due
	ErrCodeInsufficientPayment = "ERR_INSUFFICIENT_PAYMENT"
	// ErrCodeAllocationMismatch is used when allocations do not sum to the request
	ErrCodeAllocationMismatch = "ERR_ALLOCATION_MISMATCH"
	// ErrCodeTypeMismatch is used when a batch type does not match the request
	ErrCodeTypeMismatch = "ERR_TYPE_MISMATCH"
	// ErrCodeStaleBatch is used when a batch exceeds the maximum allowed age
	ErrCodeStaleBatch = "ERR_STALE_BATCH"
	// ErrCodeAlreadyPicked is used when a request was already picked up
	ErrCodeAlreadyPicked = "ERR_ALREADY_PICKED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:        http.StatusUnprocessableEntity,
	ErrCodeQuantityCapExceeded: http.StatusUnprocessableEntity,
	ErrCodeCooldownActive:      http.StatusUnprocessableEntity,
	ErrCodeInactiveFarmer:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock:   http.StatusUnprocessableEntity,
	ErrCodeInsufficientBatch:   http.StatusUnprocessableEntity,
	ErrCodeInsufficientPayment: http.StatusUnprocessableEntity,
	ErrCodeAllocationMismatch:  http.StatusUnprocessableEntity,
	ErrCodeTypeMismatch:        http.StatusUnprocessableEntity,
	ErrCodeStaleBatch:          http.StatusUnprocessableEntity,
	ErrCodeAlreadyPicked:       http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to the standardized codes
// used on the wire
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"BATCH_NOT_FOUND":         ErrCodeNotFound,
	"ALREADY_EXISTS":          ErrCodeAlreadyExists,
	"INVALID_INPUT":           ErrCodeInvalidInput,
	"INVALID_STATE":           ErrCodeInvalidState,
	"ALREADY_ACTIVE":          ErrCodeInvalidState,
	"ALREADY_INACTIVE":        ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT":    ErrCodeConcurrencyConflict,
	"QUANTITY_CAP_EXCEEDED":   ErrCodeQuantityCapExceeded,
	"COOLDOWN_ACTIVE":         ErrCodeCooldownActive,
	"INACTIVE_FARMER":         ErrCodeInactiveFarmer,
	"INSUFFICIENT_STOCK":      ErrCodeInsufficientStock,
	"INSUFFICIENT_BATCH":      ErrCodeInsufficientBatch,
	"INSUFFICIENT_PAYMENT":    ErrCodeInsufficientPayment,
	"ALLOCATION_MISMATCH":     ErrCodeAllocationMismatch,
	"TYPE_MISMATCH":           ErrCodeTypeMismatch,
	"STALE_BATCH":             ErrCodeStaleBatch,
	"ALREADY_PICKED":          ErrCodeAlreadyPicked,
	"INVALID_NIN":             ErrCodeValidationFormat,
	"INVALID_PHONE":           ErrCodeValidationFormat,
	"INVALID_GENDER":          ErrCodeValidationFormat,
	"INVALID_PURPOSE":         ErrCodeValidationFormat,
	"INVALID_TYPE":            ErrCodeValidationFormat,
	"INVALID_AGE":             ErrCodeValidationRange,
	"INVALID_AMOUNT":          ErrCodeValidationRange,
	"INVALID_PRICE":           ErrCodeValidationRange,
	"INVALID_QUANTITY":        ErrCodeValidationRange,
	"INVALID_ARRIVAL_DATE":    ErrCodeValidationRange,
	"INVALID_DUE_DATE":        ErrCodeValidationRange,
	"INVALID_DATE_OF_BIRTH":   ErrCodeValidationRange,
	"INVALID_CONVERSION_RATE": ErrCodeValidationRange,
	"INVALID_NAME":            ErrCodeValidationRequired,
	"INVALID_VILLAGE":         ErrCodeValidationRequired,
	"INVALID_DISTRICT":        ErrCodeValidationRequired,
	"INVALID_FARMER":          ErrCodeValidationRequired,
	"VALIDATION_ERROR":        ErrCodeValidation,
	"BAD_REQUEST":             ErrCodeBadRequest,
	"INTERNAL_ERROR":          ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
