package sequence

import (
	"context"
	"errors"
	"fmt"

	"zoo-manager/core/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Allocator hands out monotonically increasing identifiers per sequence name.
type Allocator struct {
	db *gorm.DB
}

// NewAllocator creates an allocator backed by the counters table.
func NewAllocator(db *gorm.DB) *Allocator {
	return &Allocator{db: db}
}

// NextValue increments the named counter and returns the new value.
// A missing counter is created and yields 1. The upsert takes the row lock,
// so concurrent callers of the same name are serialised until commit and
// never observe the same value.
func (a *Allocator) NextValue(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, apperror.Invalid("sequence", "name is required")
	}

	var counter Counter
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{"seq": gorm.Expr("seq + 1")}),
		}).Create(&Counter{Name: name, Seq: 1})
		if upsert.Error != nil {
			return upsert.Error
		}
		return tx.Where("name = ?", name).First(&counter).Error
	})
	if err != nil {
		return 0, apperror.Storage("allocate "+name, err)
	}
	return counter.Seq, nil
}

// Current returns the last issued value of the named sequence, 0 when none was issued.
func (a *Allocator) Current(ctx context.Context, name string) (int64, error) {
	var counter Counter
	err := a.db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperror.Storage(fmt.Sprintf("read sequence %s", name), err)
	}
	return counter.Seq, nil
}

// All returns every counter, ordered by name.
func (a *Allocator) All(ctx context.Context) ([]Counter, error) {
	counters := make([]Counter, 0)
	if err := a.db.WithContext(ctx).Order("name").Find(&counters).Error; err != nil {
		return nil, apperror.Storage("list sequences", err)
	}
	return counters, nil
}
