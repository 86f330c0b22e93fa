package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PickedChicks summarizes the chicks a farmer actually collected
type PickedChicks struct {
	FarmerID uuid.UUID
	Quantity int
	PickedAt time.Time
}

// Balance is a farmer's computed receivable position
// All outstanding figures are floored at zero; overpayment never becomes credit
type Balance struct {
	FarmerID         uuid.UUID          `json:"farmer_id"`
	ChicksExpected   valueobject.Money  `json:"chicks_expected"`
	ChicksPaid       valueobject.Money  `json:"chicks_paid"`
	ChicksOutstanding valueobject.Money `json:"chicks_outstanding"`
	FeedExpected     valueobject.Money  `json:"feed_expected"`
	FeedPaid         valueobject.Money  `json:"feed_paid"`
	FeedOutstanding  valueobject.Money  `json:"feed_outstanding"`
	TotalOutstanding valueobject.Money  `json:"total_outstanding"`
	PickedChickCount int                `json:"picked_chick_count"`
	DistributedBags  int                `json:"distributed_bags"`
	OverdueBags      int                `json:"overdue_bags"`
	DueSoonBags      int                `json:"due_soon_bags"`
	NextDueDate      *time.Time         `json:"next_due_date,omitempty"`
}

// HasDebt returns true if anything is outstanding
func (b Balance) HasDebt() bool {
	return b.TotalOutstanding.IsPositive()
}

// Calculator computes receivable balances from raw movement records
// It holds only pricing policy and is safe to share
type Calculator struct {
	chickPrice       decimal.Decimal
	dueSoonLookahead int
}

// NewCalculator creates a receivables calculator
// chickPrice is the fixed program price per chick; dueSoonLookahead is the
// number of days ahead a due date counts as due soon
func NewCalculator(chickPrice decimal.Decimal, dueSoonLookahead int) *Calculator {
	return &Calculator{
		chickPrice:       chickPrice,
		dueSoonLookahead: dueSoonLookahead,
	}
}

// BalanceFor computes one farmer's position from their movement records
// Only purpose-matching payments settle a category; 'both' splits evenly,
// 'other' settles nothing
func (c *Calculator) BalanceFor(farmerID uuid.UUID, picked []PickedChicks, distributions []Distribution, payments []Payment, at time.Time) Balance {
	chicksExpected := valueobject.ZeroUGX()
	pickedCount := 0
	for _, p := range picked {
		if p.FarmerID != farmerID {
			continue
		}
		pickedCount += p.Quantity
		chicksExpected = chicksExpected.MustAdd(valueobject.NewMoneyUGX(c.chickPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))))
	}

	chicksPaid := valueobject.ZeroUGX()
	feedPaid := valueobject.ZeroUGX()
	for _, p := range payments {
		if p.FarmerID != farmerID {
			continue
		}
		chicksPaid = chicksPaid.MustAdd(p.ChickPortion())
		feedPaid = feedPaid.MustAdd(p.FeedPortion())
	}

	feedExpected := valueobject.ZeroUGX()
	purchaseExpected := valueobject.ZeroUGX()
	distributedBags := 0
	var initial []Distribution
	for _, d := range distributions {
		if d.FarmerID != farmerID {
			continue
		}
		distributedBags += d.Bags
		feedExpected = feedExpected.MustAdd(d.TotalAmount())
		switch d.Type {
		case DistributionTypePurchase:
			purchaseExpected = purchaseExpected.MustAdd(d.TotalAmount())
		case DistributionTypeInitial:
			initial = append(initial, d)
		}
	}

	// Purchases are paid on collection, so feed payments settle them first;
	// whatever remains settles entitlement distributions oldest due first.
	// A distribution only counts as overdue or due soon while part of it is
	// still unpaid
	remaining := feedPaid.MustSubtract(purchaseExpected).FloorZero().Amount()
	sort.SliceStable(initial, func(i, j int) bool {
		if initial[i].DueDate == nil || initial[j].DueDate == nil {
			return initial[j].DueDate == nil && initial[i].DueDate != nil
		}
		return initial[i].DueDate.Before(*initial[j].DueDate)
	})

	overdueBags := 0
	dueSoonBags := 0
	var nextDue *time.Time
	for _, d := range initial {
		amount := d.TotalAmount().Amount()
		if remaining.GreaterThanOrEqual(amount) {
			remaining = remaining.Sub(amount)
			continue
		}
		remaining = decimal.Zero

		if d.IsOverdue(at) {
			overdueBags += d.Bags
		} else if d.IsDueWithin(c.dueSoonLookahead, at) {
			dueSoonBags += d.Bags
		}
		if d.DueDate != nil && !at.After(*d.DueDate) {
			if nextDue == nil || d.DueDate.Before(*nextDue) {
				due := *d.DueDate
				nextDue = &due
			}
		}
	}

	chicksOutstanding := chicksExpected.MustSubtract(chicksPaid).FloorZero()
	feedOutstanding := feedExpected.MustSubtract(feedPaid).FloorZero()

	return Balance{
		FarmerID:          farmerID,
		ChicksExpected:    chicksExpected,
		ChicksPaid:        chicksPaid,
		ChicksOutstanding: chicksOutstanding,
		FeedExpected:      feedExpected,
		FeedPaid:          feedPaid,
		FeedOutstanding:   feedOutstanding,
		TotalOutstanding:  chicksOutstanding.MustAdd(feedOutstanding),
		PickedChickCount:  pickedCount,
		DistributedBags:   distributedBags,
		OverdueBags:       overdueBags,
		DueSoonBags:       dueSoonBags,
		NextDueDate:       nextDue,
	}
}

// Totals is the program-wide receivable position across all farmers
// Outstanding figures are summed after the per-farmer zero floor, so an
// overpaying farmer never offsets another's debt
type Totals struct {
	ChicksExpected    valueobject.Money `json:"chicks_expected"`
	ChicksPaid        valueobject.Money `json:"chicks_paid"`
	ChicksOutstanding valueobject.Money `json:"chicks_outstanding"`
	FeedExpected      valueobject.Money `json:"feed_expected"`
	FeedPaid          valueobject.Money `json:"feed_paid"`
	FeedOutstanding   valueobject.Money `json:"feed_outstanding"`
	TotalOutstanding  valueobject.Money `json:"total_outstanding"`
	FarmersWithDebt   int               `json:"farmers_with_debt"`
	OverdueBags       int               `json:"overdue_bags"`
	DueSoonBags       int               `json:"due_soon_bags"`
}

// Aggregate folds per-farmer balances into program-wide totals
func Aggregate(balances []Balance) Totals {
	t := Totals{
		ChicksExpected:    valueobject.ZeroUGX(),
		ChicksPaid:        valueobject.ZeroUGX(),
		ChicksOutstanding: valueobject.ZeroUGX(),
		FeedExpected:      valueobject.ZeroUGX(),
		FeedPaid:          valueobject.ZeroUGX(),
		FeedOutstanding:   valueobject.ZeroUGX(),
		TotalOutstanding:  valueobject.ZeroUGX(),
	}
	for _, b := range balances {
		t.ChicksExpected = t.ChicksExpected.MustAdd(b.ChicksExpected)
		t.ChicksPaid = t.ChicksPaid.MustAdd(b.ChicksPaid)
		t.ChicksOutstanding = t.ChicksOutstanding.MustAdd(b.ChicksOutstanding)
		t.FeedExpected = t.FeedExpected.MustAdd(b.FeedExpected)
		t.FeedPaid = t.FeedPaid.MustAdd(b.FeedPaid)
		t.FeedOutstanding = t.FeedOutstanding.MustAdd(b.FeedOutstanding)
		t.TotalOutstanding = t.TotalOutstanding.MustAdd(b.TotalOutstanding)
		t.OverdueBags += b.OverdueBags
		t.DueSoonBags += b.DueSoonBags
		if b.HasDebt() {
			t.FarmersWithDebt++
		}
	}
	return t
}

// AllBalances computes every farmer's position, including settled ones
func (c *Calculator) AllBalances(picked []PickedChicks, distributions []Distribution, payments []Payment, at time.Time) []Balance {
	seen := make(map[uuid.UUID]struct{})
	order := make([]uuid.UUID, 0)
	note := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			order = append(order, id)
		}
	}
	for _, p := range picked {
		note(p.FarmerID)
	}
	for _, d := range distributions {
		note(d.FarmerID)
	}
	for _, p := range payments {
		note(p.FarmerID)
	}

	balances := make([]Balance, 0, len(order))
	for _, id := range order {
		balances = append(balances, c.BalanceFor(id, picked, distributions, payments, at))
	}
	return balances
}

// RankDebtors computes balances for every farmer seen in the records and
// returns those with debt, largest outstanding first
func (c *Calculator) RankDebtors(picked []PickedChicks, distributions []Distribution, payments []Payment, at time.Time) []Balance {
	debtors := make([]Balance, 0)
	for _, b := range c.AllBalances(picked, distributions, payments, at) {
		if b.HasDebt() {
			debtors = append(debtors, b)
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		gt, _ := debtors[i].TotalOutstanding.GreaterThan(debtors[j].TotalOutstanding)
		return gt
	})

	return debtors
}

// AmountDue prices a quantity at the fixed chick price
func (c *Calculator) AmountDue(quantity int) valueobject.Money {
	return valueobject.NewMoneyUGX(c.chickPrice.Mul(decimal.NewFromInt(int64(quantity))))
}
