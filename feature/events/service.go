package events

import (
	"context"

	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/core/sequence"
	"zoo-manager/feature/animals"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles event records.
type Service struct {
	repo    *records.Repository[Event]
	animals *records.Repository[animals.Animal]
	alloc   *sequence.Allocator
	logger  *zap.Logger
}

// NewService creates a new event service.
func NewService(db *gorm.DB, alloc *sequence.Allocator, logger *zap.Logger) *Service {
	return &Service{
		repo:    records.NewRepository[Event](db, "event"),
		animals: animals.NewRepository(db),
		alloc:   alloc,
		logger:  logger,
	}
}

// Create validates the request, allocates an identifier and stores the event.
// The featured animal is not checked for existence.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	if err := records.Validate(req); err != nil {
		return nil, err
	}

	id, err := s.alloc.NextValue(ctx, sequence.Event)
	if err != nil {
		return nil, err
	}

	event := &Event{
		ID:              id,
		Title:           *req.Title,
		Description:     req.Description,
		Animal:          req.Animal.Int64(),
		Time:            req.Time.UTC(),
		DurationMinutes: *req.DurationMinutes,
		Location:        *req.Location,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns a single event.
func (s *Service) Get(ctx context.Context, id int64) (*Event, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every event with its animal resolved.
func (s *Service) List(ctx context.Context) ([]View, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]*int64, len(events))
	for i := range events {
		refs[i] = events[i].Animal
	}
	resolved, err := records.Resolve(ctx, s.animals, refs)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(events))
	for _, e := range events {
		v := View{Event: e}
		if e.Animal != nil {
			if a, ok := resolved[*e.Animal]; ok {
				v.ResolvedAnimal = &a
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// Update overwrites the fields present in req.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Event, error) {
	columns, err := req.Columns()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, columns)
}

// Delete removes the event.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search returns the events whose field equals the value.
func (s *Service) Search(ctx context.Context, req search.Request) ([]Event, error) {
	filter, ok, err := SearchSchema.Build(req, search.Eq)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Event{}, nil
	}
	return s.repo.Search(ctx, filter)
}
