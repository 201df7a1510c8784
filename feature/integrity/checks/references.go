package checks

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Reference describes one animal reference held by another collection.
type Reference struct {
	Collection string `json:"collection"`
	Table      string `json:"-"`
	Column     string `json:"field"`
}

// AnimalReferences lists every reference to the animals table.
var AnimalReferences = []Reference{
	{Collection: "employees", Table: "employees", Column: "assigned_animal"},
	{Collection: "events", Table: "events", Column: "animal"},
}

// Dangling is a record whose animal reference points at nothing.
type Dangling struct {
	Collection string `json:"collection"`
	Field      string `json:"field"`
	ID         int64  `json:"id"`
	Animal     int64  `json:"animal"`
}

// ReferenceReport is the result of a reference scan.
type ReferenceReport struct {
	Matched  bool       `json:"matched"`
	Checked  int64      `json:"checked"`
	Dangling []Dangling `json:"dangling"`
}

type danglingRow struct {
	ID  int64
	Ref int64
}

// CheckReferences finds employees and events whose animal no longer exists.
// References are never enforced, so the report is informational.
func CheckReferences(ctx context.Context, db *gorm.DB) (*ReferenceReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ReferenceReport{Matched: true, Dangling: []Dangling{}}
	for _, ref := range AnimalReferences {
		var total int64
		err := db.WithContext(ctx).Table(ref.Table).
			Where(fmt.Sprintf("%s IS NOT NULL", ref.Column)).
			Count(&total).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count %s references: %w", ref.Collection, err)
		}
		report.Checked += total

		var rows []danglingRow
		err = db.WithContext(ctx).
			Table(ref.Table+" AS r").
			Select(fmt.Sprintf("r.id AS id, r.%s AS ref", ref.Column)).
			Joins(fmt.Sprintf("LEFT JOIN animals AS a ON a.id = r.%s", ref.Column)).
			Where(fmt.Sprintf("r.%s IS NOT NULL AND a.id IS NULL", ref.Column)).
			Order("r.id").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s references: %w", ref.Collection, err)
		}

		for _, row := range rows {
			report.Dangling = append(report.Dangling, Dangling{
				Collection: ref.Collection,
				Field:      ref.Column,
				ID:         row.ID,
				Animal:     row.Ref,
			})
		}
	}

	report.Matched = len(report.Dangling) == 0
	return report, nil
}
