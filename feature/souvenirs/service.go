package souvenirs

import (
	"context"

	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/core/sequence"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles shop items.
type Service struct {
	repo   *records.Repository[Souvenir]
	alloc  *sequence.Allocator
	logger *zap.Logger
}

// NewService creates a new souvenir service.
func NewService(db *gorm.DB, alloc *sequence.Allocator, logger *zap.Logger) *Service {
	return &Service{
		repo:   records.NewRepository[Souvenir](db, "souvenir"),
		alloc:  alloc,
		logger: logger,
	}
}

// Create validates the request, allocates an identifier and stores the item.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Souvenir, error) {
	if err := records.Validate(req); err != nil {
		return nil, err
	}

	id, err := s.alloc.NextValue(ctx, sequence.Souvenir)
	if err != nil {
		return nil, err
	}

	souvenir := &Souvenir{
		ID:          id,
		Name:        *req.Name,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Description: req.Description,
	}
	if err := s.repo.Insert(ctx, souvenir); err != nil {
		return nil, err
	}
	return souvenir, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Souvenir, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Souvenir, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the fields present in req.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Souvenir, error) {
	columns, err := req.Columns()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, columns)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search returns the items matching a single-field predicate. Numeric fields
// compare numerically even when the value arrives as a string.
func (s *Service) Search(ctx context.Context, req search.Request) ([]Souvenir, error) {
	filter, ok, err := SearchSchema.Build(req, search.AllOperators...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Souvenir{}, nil
	}
	return s.repo.Search(ctx, filter)
}
