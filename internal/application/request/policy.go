package request

import (
	"github.com/poultry/backend/internal/domain/request"
)

// Policy carries the program rules applied to request decisions.
// Values come from configuration so district offices can tune them
// without a code change.
type Policy struct {
	// Caps are the per-tier ceilings on chick request quantities.
	// A ceiling of zero disables the cap for that tier
	Caps request.QuantityCaps

	// CooldownDays is the minimum number of days between chick requests
	// from the same farmer, counted from the last submission. Zero disables
	CooldownDays int

	// EntitlementBags is the number of starter feed bags handed out with
	// a chick pickup, on credit. Zero disables the entitlement
	EntitlementBags int

	// DueDateDays is how many days after a chick pickup the entitlement
	// feed must be paid for
	DueDateDays int

	// MaxBatchAgeDays is the oldest chick batch age that may still be
	// allocated, in days. Zero disables the age gate
	MaxBatchAgeDays int
}

// DefaultPolicy returns the program rules as run in the pilot districts
func DefaultPolicy() Policy {
	return Policy{
		Caps: request.QuantityCaps{
			Starter:   100,
			Returning: 500,
		},
		CooldownDays:    120,
		EntitlementBags: 2,
		DueDateDays:     60,
		MaxBatchAgeDays: 0,
	}
}
