package farmer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/shared"
)

// Service handles farmer enrollment and lookup
type Service struct {
	farmerRepo farmer.Repository
	eventBus   shared.EventBus
}

// NewService creates a new farmer Service
func NewService(farmerRepo farmer.Repository, eventBus shared.EventBus) *Service {
	return &Service{
		farmerRepo: farmerRepo,
		eventBus:   eventBus,
	}
}

// Register enrolls a new farmer in the program
func (s *Service) Register(ctx context.Context, req RegisterFarmerRequest) (*FarmerResponse, error) {
	nin, err := farmer.NormalizeNIN(req.NIN)
	if err != nil {
		return nil, err
	}

	exists, err := s.farmerRepo.ExistsByNIN(ctx, nin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A farmer with this NIN is already registered")
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE_OF_BIRTH", "Date of birth must be in YYYY-MM-DD format")
	}

	f, err := farmer.NewFarmer(req.Name, nin, req.Phone, farmer.Gender(req.Gender), dob, req.RegisteredBy)
	if err != nil {
		return nil, err
	}

	if req.Village != "" || req.District != "" {
		if err := f.SetLocation(req.Village, req.District); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		f.SetNotes(req.Notes)
	}

	if err := s.farmerRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, f)

	response := ToFarmerResponse(f)
	return &response, nil
}

// GetByID retrieves a farmer by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*FarmerResponse, error) {
	f, err := s.farmerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToFarmerResponse(f)
	return &response, nil
}

// GetByNIN retrieves a farmer by national identification number
func (s *Service) GetByNIN(ctx context.Context, nin string) (*FarmerResponse, error) {
	normalized, err := farmer.NormalizeNIN(nin)
	if err != nil {
		return nil, err
	}

	f, err := s.farmerRepo.FindByNIN(ctx, normalized)
	if err != nil {
		return nil, err
	}

	response := ToFarmerResponse(f)
	return &response, nil
}

// List retrieves farmers with filtering and pagination
func (s *Service) List(ctx context.Context, filter FarmerListFilter) ([]FarmerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "registered_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.District != "" {
		domainFilter.Filters["district"] = filter.District
	}

	farmers, err := s.farmerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.farmerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FarmerResponse, 0, len(farmers))
	for i := range farmers {
		responses = append(responses, ToFarmerResponse(&farmers[i]))
	}

	return responses, total, nil
}

// Update updates a farmer's details
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateFarmerRequest) (*FarmerResponse, error) {
	f, err := s.farmerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := f.Name
	phone := f.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := f.Update(name, phone); err != nil {
		return nil, err
	}

	if req.Village != nil || req.District != nil {
		village := f.Village
		district := f.District
		if req.Village != nil {
			village = *req.Village
		}
		if req.District != nil {
			district = *req.District
		}
		if err := f.SetLocation(village, district); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		f.SetNotes(*req.Notes)
	}

	if err := s.farmerRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	response := ToFarmerResponse(f)
	return &response, nil
}

// Deactivate removes a farmer from active participation
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	f, err := s.farmerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := f.Deactivate(); err != nil {
		return err
	}
	return s.farmerRepo.Save(ctx, f)
}

// publishEvents publishes domain events from the aggregate
func (s *Service) publishEvents(ctx context.Context, f *farmer.Farmer) {
	if s.eventBus == nil {
		return
	}

	for _, event := range f.GetDomainEvents() {
		_ = s.eventBus.Publish(ctx, event)
	}
	f.ClearDomainEvents()
}
