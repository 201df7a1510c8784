package animals

import (
	"context"

	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/core/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles animal records.
type Service struct {
	repo   *records.Repository[Animal]
	alloc  *sequence.Allocator
	logger *zap.Logger
}

// NewService creates a new animal service.
func NewService(db *gorm.DB, alloc *sequence.Allocator, logger *zap.Logger) *Service {
	return &Service{
		repo:   NewRepository(db),
		alloc:  alloc,
		logger: logger,
	}
}

// Create validates the request, allocates an identifier and stores the animal.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Animal, error) {
	if err := records.Validate(req); err != nil {
		return nil, err
	}

	id, err := s.alloc.NextValue(ctx, sequence.Animal)
	if err != nil {
		return nil, err
	}

	animal := &Animal{
		ID:           id,
		Name:         *req.Name,
		Species:      *req.Species,
		Age:          *req.Age,
		Description:  req.Description,
		Habitat:      *req.Habitat,
		Diet:         *req.Diet,
		HealthStatus: DefaultHealthStatus,
	}
	if req.HealthStatus != nil && *req.HealthStatus != "" {
		animal.HealthStatus = *req.HealthStatus
	}

	if err := s.repo.Insert(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Get returns a single animal.
func (s *Service) Get(ctx context.Context, id int64) (*Animal, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every animal.
func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the non-empty fields of req and keeps the others.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Animal, error) {
	columns := map[string]any{}
	setString := func(column string, v *string) {
		if v != nil && *v != "" {
			columns[column] = *v
		}
	}
	setString("name", req.Name)
	setString("species", req.Species)
	setString("description", req.Description)
	setString("habitat", req.Habitat)
	setString("diet", req.Diet)
	setString("health_status", req.HealthStatus)
	if req.Age != nil && *req.Age != 0 {
		columns["age"] = *req.Age
	}

	return s.repo.Update(ctx, id, columns)
}

// SetHealth changes only the health status.
func (s *Service) SetHealth(ctx context.Context, id int64, req HealthRequest) (*Animal, error) {
	if err := records.Validate(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, map[string]any{"health_status": *req.HealthStatus})
}

// Delete removes the animal. References held by employees and events are left dangling.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search returns the animals matching a single-field predicate.
func (s *Service) Search(ctx context.Context, req search.Request) ([]Animal, error) {
	filter, ok, err := SearchSchema.Build(req, search.AllOperators...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Animal{}, nil
	}
	return s.repo.Search(ctx, filter)
}
