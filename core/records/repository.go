package records

import (
	"context"
	"errors"

	"zoo-manager/core/apperror"
	"zoo-manager/core/search"

	"gorm.io/gorm"
)

// Record is a persisted entity with an integer surrogate key.
type Record interface {
	PrimaryKey() int64
}

// Repository provides the storage operations shared by every record type.
type Repository[T Record] struct {
	db     *gorm.DB
	entity string
}

// NewRepository creates a repository for T. entity names the type in errors.
func NewRepository[T Record](db *gorm.DB, entity string) *Repository[T] {
	return &Repository[T]{db: db, entity: entity}
}

// Insert persists a new record. The caller assigns the identifier.
func (r *Repository[T]) Insert(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperror.Storage("insert "+r.entity, err)
	}
	return nil
}

// FindByID returns the record or an error wrapping apperror.ErrNotFound.
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	rec := new(T)
	err := r.db.WithContext(ctx).Where("id = ?", id).First(rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(r.entity, id)
	}
	if err != nil {
		return nil, apperror.Storage("find "+r.entity, err)
	}
	return rec, nil
}

// FindAll returns every record ordered by identifier.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	recs := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, apperror.Storage("list "+r.entity, err)
	}
	return recs, nil
}

// FindByIDs loads the records with the given identifiers, keyed by identifier.
// Identifiers without a record are simply absent from the result.
func (r *Repository[T]) FindByIDs(ctx context.Context, ids []int64) (map[int64]T, error) {
	found := make(map[int64]T, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var recs []T
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, apperror.Storage("resolve "+r.entity, err)
	}
	for _, rec := range recs {
		found[rec.PrimaryKey()] = rec
	}
	return found, nil
}

// Update overwrites the given columns and returns the stored record.
func (r *Repository[T]) Update(ctx context.Context, id int64, columns map[string]any) (*T, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns).Error
		if err != nil {
			return nil, apperror.Storage("update "+r.entity, err)
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes the record. Deleting a missing identifier is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return apperror.Storage("delete "+r.entity, err)
	}
	return nil
}

// Search returns the records matching the filter, ordered by identifier.
func (r *Repository[T]) Search(ctx context.Context, f search.Filter) ([]T, error) {
	recs := make([]T, 0)
	if err := r.db.WithContext(ctx).Where(f.Expression()).Order("id").Find(&recs).Error; err != nil {
		return nil, apperror.Storage("search "+r.entity, err)
	}
	return recs, nil
}

// Resolve loads the records referenced by refs. Nil references are skipped
// and dangling ones are left out of the map.
func Resolve[T Record](ctx context.Context, repo *Repository[T], refs []*int64) (map[int64]T, error) {
	seen := make(map[int64]struct{}, len(refs))
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if _, dup := seen[*ref]; dup {
			continue
		}
		seen[*ref] = struct{}{}
		ids = append(ids, *ref)
	}
	return repo.FindByIDs(ctx, ids)
}
