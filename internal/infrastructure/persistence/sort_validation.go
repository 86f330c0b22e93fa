package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// FarmerSortFields contains allowed sort fields for farmers
var FarmerSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"nin":           true,
	"type":          true,
	"status":        true,
	"village":       true,
	"district":      true,
	"registered_at": true,
}

// BatchSortFields contains allowed sort fields for stock batches
var BatchSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"category":     true,
	"type_code":    true,
	"quantity":     true,
	"arrival_date": true,
}

// RequestSortFields contains allowed sort fields for requests
var RequestSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"kind":         true,
	"type_code":    true,
	"status":       true,
	"quantity":     true,
	"submitted_at": true,
	"decided_at":   true,
	"picked_at":    true,
}

// DistributionSortFields contains allowed sort fields for feed distributions
var DistributionSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"type":       true,
	"bags":       true,
	"issued_at":  true,
	"due_date":   true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"purpose":    true,
	"amount":     true,
	"paid_at":    true,
}
