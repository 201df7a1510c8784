package employees

import (
	"context"

	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/core/sequence"
	"zoo-manager/feature/animals"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles employee records.
type Service struct {
	repo    *records.Repository[Employee]
	animals *records.Repository[animals.Animal]
	alloc   *sequence.Allocator
	logger  *zap.Logger
}

// NewService creates a new employee service.
func NewService(db *gorm.DB, alloc *sequence.Allocator, logger *zap.Logger) *Service {
	return &Service{
		repo:    records.NewRepository[Employee](db, "employee"),
		animals: animals.NewRepository(db),
		alloc:   alloc,
		logger:  logger,
	}
}

// Create validates the request, allocates an identifier and stores the employee.
// The assigned animal is stored as given; its existence is not checked.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Employee, error) {
	if err := records.Validate(req); err != nil {
		return nil, err
	}

	id, err := s.alloc.NextValue(ctx, sequence.Employee)
	if err != nil {
		return nil, err
	}

	employee := &Employee{
		ID:             id,
		Name:           *req.Name,
		Email:          *req.Email,
		Phone:          *req.Phone,
		Position:       *req.Position,
		AssignedAnimal: req.AssignedAnimal.Int64(),
	}
	if err := s.repo.Insert(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Get returns a single employee.
func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every employee with the assigned animal resolved.
func (s *Service) List(ctx context.Context) ([]View, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]*int64, len(employees))
	for i := range employees {
		refs[i] = employees[i].AssignedAnimal
	}
	resolved, err := records.Resolve(ctx, s.animals, refs)
	if err != nil {
		return nil, err
	}

	views := make([]View, len(employees))
	for i, e := range employees {
		views[i] = View{Employee: e}
		if e.AssignedAnimal == nil {
			continue
		}
		if a, ok := resolved[*e.AssignedAnimal]; ok {
			views[i].ResolvedAnimal = &a
		}
	}
	return views, nil
}

// Update overwrites the fields present in req.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Employee, error) {
	columns, err := req.Columns()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, columns)
}

// Delete removes the employee.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search returns the employees whose field equals the value.
func (s *Service) Search(ctx context.Context, req search.Request) ([]Employee, error) {
	filter, ok, err := SearchSchema.Build(req, search.Eq)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Employee{}, nil
	}
	return s.repo.Search(ctx, filter)
}
