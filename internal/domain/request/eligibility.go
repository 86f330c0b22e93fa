package request

import (
	"fmt"
	"time"

	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/shared"
)

// QuantityCaps holds the per-tier ceilings for chick requests
type QuantityCaps struct {
	Starter   int
	Returning int
}

// CapFor returns the ceiling for the given farmer tier
func (c QuantityCaps) CapFor(farmerType farmer.FarmerType) int {
	if farmerType == farmer.FarmerTypeReturning {
		return c.Returning
	}
	return c.Starter
}

// ValidateQuantityCap checks a chick request quantity against the farmer's
// tier ceiling. Feed requests carry no cap
func ValidateQuantityCap(farmerType farmer.FarmerType, quantity int, caps QuantityCaps) error {
	cap := caps.CapFor(farmerType)
	if cap > 0 && quantity > cap {
		return shared.NewDomainError("QUANTITY_CAP_EXCEEDED",
			fmt.Sprintf("Requested %d chicks but %s farmers may receive at most %d", quantity, farmerType, cap))
	}
	return nil
}

// ValidateCooldown checks that enough days have passed since the farmer's
// last chick request. The window counts from the last submission regardless
// of how that request was decided
func ValidateCooldown(lastSubmittedAt *time.Time, cooldownDays int, now time.Time) error {
	if lastSubmittedAt == nil || cooldownDays <= 0 {
		return nil
	}
	eligibleAt := lastSubmittedAt.AddDate(0, 0, cooldownDays)
	if now.Before(eligibleAt) {
		return shared.NewDomainError("COOLDOWN_ACTIVE",
			fmt.Sprintf("Last request was on %s; next request allowed from %s",
				lastSubmittedAt.Format("2006-01-02"), eligibleAt.Format("2006-01-02")))
	}
	return nil
}
