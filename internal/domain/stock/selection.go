package stock

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BatchSelection is one line of a selection plan: take Quantity from Batch
type BatchSelection struct {
	BatchID     uuid.UUID       `json:"batch_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	ArrivalDate time.Time       `json:"arrival_date"`
}

// SelectionResult is the outcome of planning a deduction across batches
// Planning never mutates batches; ApplySelections executes the plan
type SelectionResult struct {
	Selections     []BatchSelection `json:"selections"`
	TotalSelected  int              `json:"total_selected"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	Remaining      int              `json:"remaining"`
	FullySatisfied bool             `json:"fully_satisfied"`
}

// SelectFIFO plans a deduction of the requested quantity across the given
// batches, oldest arrival first, ties broken by creation time
// Batches of the wrong category or type, empty batches, and batches over the
// age limit are skipped; maxAgeDays of zero disables the age gate
func SelectFIFO(batches []Batch, category Category, typeCode string, requested, maxAgeDays int, at time.Time) (*SelectionResult, error) {
	if requested <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}

	eligible := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if !b.MatchesType(category, typeCode) || !b.HasStock() {
			continue
		}
		if b.IsStale(maxAgeDays, at) {
			continue
		}
		eligible = append(eligible, b)
	}

	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].ArrivalDate.Equal(eligible[j].ArrivalDate) {
			return eligible[i].ArrivalDate.Before(eligible[j].ArrivalDate)
		}
		return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
	})

	selections := make([]BatchSelection, 0)
	remaining := requested
	totalPrice := decimal.Zero

	for _, b := range eligible {
		if remaining == 0 {
			break
		}

		take := remaining
		if take > b.Quantity {
			take = b.Quantity
		}
		linePrice := b.UnitPrice.Mul(decimal.NewFromInt(int64(take)))

		selections = append(selections, BatchSelection{
			BatchID:     b.ID,
			Quantity:    take,
			UnitPrice:   b.UnitPrice,
			TotalPrice:  linePrice,
			ArrivalDate: b.ArrivalDate,
		})

		totalPrice = totalPrice.Add(linePrice)
		remaining -= take
	}

	return &SelectionResult{
		Selections:     selections,
		TotalSelected:  requested - remaining,
		TotalPrice:     totalPrice,
		Remaining:      remaining,
		FullySatisfied: remaining == 0,
	}, nil
}

// ValidateAvailability checks whether the batches of the given type hold at
// least the requested quantity, and returns the total available
func ValidateAvailability(batches []Batch, category Category, typeCode string, requested, maxAgeDays int, at time.Time) (bool, int) {
	total := 0
	for _, b := range batches {
		if !b.MatchesType(category, typeCode) || !b.HasStock() {
			continue
		}
		if b.IsStale(maxAgeDays, at) {
			continue
		}
		total += b.Quantity
	}
	return total >= requested, total
}

// AllocationLine is one operator-specified allocation: take Quantity from Batch
type AllocationLine struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Quantity int       `json:"quantity"`
}

// ValidateAllocations checks an operator-specified allocation plan against the
// loaded batches. The lines must sum exactly to the requested quantity, every
// batch must match the requested type, hold its allocated quantity, and pass
// the age gate
func ValidateAllocations(lines []AllocationLine, batches []Batch, category Category, typeCode string, requested, maxAgeDays int, at time.Time) error {
	if len(lines) == 0 {
		return shared.NewDomainError("ALLOCATION_MISMATCH",
			fmt.Sprintf("No allocation lines given for a request of %d", requested))
	}

	batchByID := make(map[uuid.UUID]*Batch, len(batches))
	for i := range batches {
		batchByID[batches[i].ID] = &batches[i]
	}

	sum := 0
	claimed := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Allocation quantity must be positive")
		}

		b, ok := batchByID[line.BatchID]
		if !ok {
			return shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found: "+line.BatchID.String())
		}
		if !b.MatchesType(category, typeCode) {
			return shared.NewDomainError("TYPE_MISMATCH",
				fmt.Sprintf("Batch %s holds %s but the request is for %s", b.ID, b.TypeCode, typeCode))
		}
		if b.IsStale(maxAgeDays, at) {
			return shared.NewDomainError("STALE_BATCH",
				fmt.Sprintf("Batch %s arrived %s, past the %d-day age limit", b.ID, b.ArrivalDate.Format("2006-01-02"), maxAgeDays))
		}

		// The same batch may appear on several lines; the claims must fit together
		claimed[line.BatchID] += line.Quantity
		if claimed[line.BatchID] > b.Quantity {
			return shared.NewDomainError("INSUFFICIENT_BATCH",
				fmt.Sprintf("Batch %s holds %d but %d was allocated from it", b.ID, b.Quantity, claimed[line.BatchID]))
		}

		sum += line.Quantity
	}

	if sum != requested {
		return shared.NewDomainError("ALLOCATION_MISMATCH",
			fmt.Sprintf("Allocation lines sum to %d but the request is for %d", sum, requested))
	}

	return nil
}

// ApplySelections deducts a selection plan from the actual batch entities
func ApplySelections(batches []*Batch, selections []BatchSelection) error {
	batchByID := make(map[uuid.UUID]*Batch, len(batches))
	for _, b := range batches {
		batchByID[b.ID] = b
	}

	for _, sel := range selections {
		b, ok := batchByID[sel.BatchID]
		if !ok {
			return shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found: "+sel.BatchID.String())
		}
		if err := b.Deduct(sel.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// ApplyAllocations deducts an operator-specified allocation plan from the
// actual batch entities
func ApplyAllocations(batches []*Batch, lines []AllocationLine) error {
	batchByID := make(map[uuid.UUID]*Batch, len(batches))
	for _, b := range batches {
		batchByID[b.ID] = b
	}

	for _, line := range lines {
		b, ok := batchByID[line.BatchID]
		if !ok {
			return shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found: "+line.BatchID.String())
		}
		if err := b.Deduct(line.Quantity); err != nil {
			return err
		}
	}

	return nil
}
