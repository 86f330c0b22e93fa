package stock

import (
	"fmt"
	"time"

	"github.com/poultry/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category distinguishes what kind of stock a batch holds
type Category string

const (
	CategoryChick Category = "chick"
	CategoryFeed  Category = "feed"
)

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	return c == CategoryChick || c == CategoryFeed
}

// ChickType identifies the breed line of a chick batch
type ChickType string

const (
	ChickTypeBroilerLocal  ChickType = "broiler_local"
	ChickTypeBroilerExotic ChickType = "broiler_exotic"
	ChickTypeLayerLocal    ChickType = "layer_local"
	ChickTypeLayerExotic   ChickType = "layer_exotic"
)

// IsValid checks if the chick type is one of the stocked breed lines
func (t ChickType) IsValid() bool {
	switch t {
	case ChickTypeBroilerLocal, ChickTypeBroilerExotic, ChickTypeLayerLocal, ChickTypeLayerExotic:
		return true
	}
	return false
}

// FeedType identifies the formulation of a feed batch
type FeedType string

const (
	FeedTypeStarter  FeedType = "starter"
	FeedTypeGrower   FeedType = "grower"
	FeedTypeFinisher FeedType = "finisher"
)

// IsValid checks if the feed type is a stocked formulation
func (t FeedType) IsValid() bool {
	switch t {
	case FeedTypeStarter, FeedTypeGrower, FeedTypeFinisher:
		return true
	}
	return false
}

// Batch represents a dated delivery of chicks or feed held in the store
// It is the aggregate root for stock movements
type Batch struct {
	shared.BaseAggregateRoot
	Category    Category        `gorm:"type:varchar(10);not null;index:idx_batches_category_type"`
	TypeCode    string          `gorm:"type:varchar(20);not null;index:idx_batches_category_type"`
	Quantity    int             `gorm:"not null"`
	ArrivalDate time.Time       `gorm:"type:date;not null;index"`
	AgeDays     *int            // Age of chicks on arrival, nil for feed
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"` // Price per bag for feed batches
	Source      string          `gorm:"type:varchar(200)"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "stock_batches"
}

// NewChickBatch records a delivery of chicks
func NewChickBatch(chickType ChickType, quantity int, arrivalDate time.Time, ageDays int, source string) (*Batch, error) {
	if !chickType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Chick type must be 'broiler_local', 'broiler_exotic', 'layer_local' or 'layer_exotic'")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Batch quantity must be positive")
	}
	if ageDays < 0 {
		return nil, shared.NewDomainError("INVALID_AGE", "Chick age cannot be negative")
	}
	if arrivalDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ARRIVAL_DATE", "Arrival date is required")
	}

	age := ageDays
	b := &Batch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Category:          CategoryChick,
		TypeCode:          string(chickType),
		Quantity:          quantity,
		ArrivalDate:       arrivalDate,
		AgeDays:           &age,
		UnitPrice:         decimal.Zero,
		Source:            source,
	}

	b.AddDomainEvent(NewBatchReceivedEvent(b))

	return b, nil
}

// NewFeedBatch records a delivery of feed bags
func NewFeedBatch(feedType FeedType, quantity int, arrivalDate time.Time, unitPrice decimal.Decimal, source string) (*Batch, error) {
	if !feedType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Feed type must be 'starter', 'grower' or 'finisher'")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Batch quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if arrivalDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ARRIVAL_DATE", "Arrival date is required")
	}

	b := &Batch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Category:          CategoryFeed,
		TypeCode:          string(feedType),
		Quantity:          quantity,
		ArrivalDate:       arrivalDate,
		UnitPrice:         unitPrice,
		Source:            source,
	}

	b.AddDomainEvent(NewBatchReceivedEvent(b))

	return b, nil
}

// Deduct removes quantity from the batch
// Unlike intake adjustments this is strict: deducting more than the batch
// holds fails rather than draining it
func (b *Batch) Deduct(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduction quantity must be positive")
	}
	if quantity > b.Quantity {
		return shared.NewDomainError("INSUFFICIENT_BATCH",
			fmt.Sprintf("Batch %s holds %d but %d was requested", b.ID, b.Quantity, quantity))
	}

	b.Quantity -= quantity
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	if b.Quantity == 0 {
		b.AddDomainEvent(NewBatchDepletedEvent(b))
	}

	return nil
}

// Add increases the batch quantity (corrections and returns)
func (b *Batch) Add(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment quantity must be positive")
	}

	b.Quantity += quantity
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// HasStock returns true if the batch has remaining quantity
func (b *Batch) HasStock() bool {
	return b.Quantity > 0
}

// IsChick returns true for chick batches
func (b *Batch) IsChick() bool {
	return b.Category == CategoryChick
}

// IsFeed returns true for feed batches
func (b *Batch) IsFeed() bool {
	return b.Category == CategoryFeed
}

// AgeAt returns the age of the batch contents in days at the given time
// For chick batches the recorded arrival age is added to the days in store
func (b *Batch) AgeAt(at time.Time) int {
	days := int(at.Sub(b.ArrivalDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if b.AgeDays != nil {
		days += *b.AgeDays
	}
	return days
}

// IsStale returns true if the batch exceeds the maximum allowed age in days
// A maxAgeDays of zero disables the age gate
func (b *Batch) IsStale(maxAgeDays int, at time.Time) bool {
	if maxAgeDays <= 0 {
		return false
	}
	return b.AgeAt(at) > maxAgeDays
}

// TotalValue returns the value of the remaining quantity at the batch price
func (b *Batch) TotalValue() decimal.Decimal {
	return b.UnitPrice.Mul(decimal.NewFromInt(int64(b.Quantity)))
}

// MatchesType returns true if the batch holds the given category and type
func (b *Batch) MatchesType(category Category, typeCode string) bool {
	return b.Category == category && b.TypeCode == typeCode
}
