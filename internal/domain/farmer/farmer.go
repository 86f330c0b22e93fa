package farmer

import (
	"regexp"
	"strings"
	"time"

	"github.com/poultry/backend/internal/domain/shared"
)

// FarmerType represents the support tier of a farmer in the program
type FarmerType string

const (
	FarmerTypeStarter   FarmerType = "starter"   // First-time participant
	FarmerTypeReturning FarmerType = "returning" // Has completed at least one cycle
)

// FarmerStatus represents the enrollment status of a farmer
type FarmerStatus string

const (
	FarmerStatusActive   FarmerStatus = "active"
	FarmerStatusInactive FarmerStatus = "inactive"
)

// Gender of a registered farmer
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

const (
	// MinRegistrationAge is the youngest a farmer may be at registration
	MinRegistrationAge = 18
	// MaxRegistrationAge is the oldest a farmer may be at registration
	MaxRegistrationAge = 30
	// NINLength is the required length of a national identification number
	NINLength = 14
)

// Farmer represents a youth farmer enrolled in the support program
// It is the aggregate root for farmer registration and promotion
type Farmer struct {
	shared.BaseAggregateRoot
	Name         string       `gorm:"type:varchar(200);not null"`
	Phone        string       `gorm:"type:varchar(50);index"`
	NIN          string       `gorm:"type:varchar(14);not null;uniqueIndex"`
	Type         FarmerType   `gorm:"type:varchar(20);not null;default:'starter'"`
	Status       FarmerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Gender       Gender       `gorm:"type:varchar(10);not null"`
	DateOfBirth  time.Time    `gorm:"type:date;not null"`
	Village      string       `gorm:"type:varchar(200)"`
	District     string       `gorm:"type:varchar(100)"`
	RegisteredAt time.Time    `gorm:"not null"`
	RegisteredBy string       `gorm:"type:varchar(100)"`
	Notes        string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Farmer) TableName() string {
	return "farmers"
}

// NewFarmer registers a new farmer in the program
// New farmers always enter as starters; promotion happens at first pickup
func NewFarmer(name, nin, phone string, gender Gender, dateOfBirth time.Time, registeredBy string) (*Farmer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	normalizedNIN, err := NormalizeNIN(nin)
	if err != nil {
		return nil, err
	}
	if err := validateGender(gender); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := validateRegistrationAge(dateOfBirth, now); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	f := &Farmer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		NIN:               normalizedNIN,
		Type:              FarmerTypeStarter,
		Status:            FarmerStatusActive,
		Gender:            gender,
		DateOfBirth:       dateOfBirth,
		RegisteredAt:      now,
		RegisteredBy:      registeredBy,
	}

	f.AddDomainEvent(NewFarmerRegisteredEvent(f))

	return f, nil
}

// Update updates the farmer's basic information
func (f *Farmer) Update(name, phone string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	f.Name = name
	f.Phone = phone
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// SetLocation sets the farmer's village and district
func (f *Farmer) SetLocation(village, district string) error {
	if village != "" && len(village) > 200 {
		return shared.NewDomainError("INVALID_VILLAGE", "Village cannot exceed 200 characters")
	}
	if district != "" && len(district) > 100 {
		return shared.NewDomainError("INVALID_DISTRICT", "District cannot exceed 100 characters")
	}

	f.Village = village
	f.District = district
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// SetNotes sets the farmer's notes
func (f *Farmer) SetNotes(notes string) {
	f.Notes = notes
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
}

// Promote moves a starter to the returning tier
// The transition is one way; promoting a returning farmer is a no-op
func (f *Farmer) Promote() {
	if f.Type == FarmerTypeReturning {
		return
	}

	f.Type = FarmerTypeReturning
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFarmerPromotedEvent(f))
}

// Deactivate removes the farmer from active participation
func (f *Farmer) Deactivate() error {
	if f.Status == FarmerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Farmer is already inactive")
	}

	f.Status = FarmerStatusInactive
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// Activate restores the farmer to active participation
func (f *Farmer) Activate() error {
	if f.Status == FarmerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Farmer is already active")
	}

	f.Status = FarmerStatusActive
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// IsActive returns true if the farmer is active
func (f *Farmer) IsActive() bool {
	return f.Status == FarmerStatusActive
}

// IsStarter returns true if the farmer is in the starter tier
func (f *Farmer) IsStarter() bool {
	return f.Type == FarmerTypeStarter
}

// IsReturning returns true if the farmer is in the returning tier
func (f *Farmer) IsReturning() bool {
	return f.Type == FarmerTypeReturning
}

// AgeAt returns the farmer's age in whole years at the given time
func (f *Farmer) AgeAt(at time.Time) int {
	age := at.Year() - f.DateOfBirth.Year()
	if at.YearDay() < f.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// NormalizeNIN uppercases and validates a national identification number
// Ugandan NINs are 14 characters and start with CM (male) or CF (female)
func NormalizeNIN(nin string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(nin))
	if len(normalized) != NINLength {
		return "", shared.NewDomainError("INVALID_NIN", "NIN must be exactly 14 characters")
	}
	if !strings.HasPrefix(normalized, "CM") && !strings.HasPrefix(normalized, "CF") {
		return "", shared.NewDomainError("INVALID_NIN", "NIN must start with CM or CF")
	}
	if !ninPattern.MatchString(normalized) {
		return "", shared.NewDomainError("INVALID_NIN", "NIN may only contain letters and digits")
	}
	return normalized, nil
}

var ninPattern = regexp.MustCompile(`^[A-Z0-9]{14}$`)

// Validation functions

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Farmer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Farmer name cannot exceed 200 characters")
	}
	return nil
}

func validateGender(gender Gender) error {
	switch gender {
	case GenderMale, GenderFemale:
		return nil
	default:
		return shared.NewDomainError("INVALID_GENDER", "Gender must be 'male' or 'female'")
	}
}

func validateRegistrationAge(dateOfBirth, at time.Time) error {
	if dateOfBirth.IsZero() {
		return shared.NewDomainError("INVALID_DATE_OF_BIRTH", "Date of birth is required")
	}
	if dateOfBirth.After(at) {
		return shared.NewDomainError("INVALID_DATE_OF_BIRTH", "Date of birth cannot be in the future")
	}
	age := at.Year() - dateOfBirth.Year()
	if at.YearDay() < dateOfBirth.YearDay() {
		age--
	}
	if age < MinRegistrationAge || age > MaxRegistrationAge {
		return shared.NewDomainError("INVALID_AGE", "Farmer must be between 18 and 30 years old at registration")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
