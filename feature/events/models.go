package events

import (
	"time"

	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/feature/animals"
)

// Event is a scheduled zoo event, optionally featuring an animal.
type Event struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title           string    `gorm:"column:title;size:255;not null" json:"title"`
	Description     *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Animal          *int64    `gorm:"column:animal;index" json:"animal,omitempty"`
	Time            time.Time `gorm:"column:time;not null" json:"time"`
	DurationMinutes float64   `gorm:"column:duration_minutes;not null" json:"durationMinutes"`
	Location        string    `gorm:"column:location;size:255;not null" json:"location"`
}

// TableName overrides the table name.
func (Event) TableName() string {
	return "events"
}

// PrimaryKey implements records.Record.
func (e Event) PrimaryKey() int64 {
	return e.ID
}

// View is an event with its animal resolved inline.
type View struct {
	Event
	ResolvedAnimal *animals.Animal `json:"resolvedAnimal"`
}

// CreateRequest is the body of POST /events.
type CreateRequest struct {
	Title           *string      `json:"title" validate:"required,min=1"`
	Description     *string      `json:"description"`
	Animal          *records.Ref `json:"animal"`
	Time            *time.Time   `json:"time" validate:"required"`
	DurationMinutes *float64     `json:"durationMinutes" validate:"required"`
	Location        *string      `json:"location" validate:"required,min=1"`
}

// UpdateRequest is the body of PUT /events/:id. A null clears description
// and animal and is rejected on the other fields.
type UpdateRequest struct {
	Title           records.Optional[string]      `json:"title"`
	Description     records.Optional[string]      `json:"description"`
	Animal          records.Optional[records.Ref] `json:"animal"`
	Time            records.Optional[time.Time]   `json:"time"`
	DurationMinutes records.Optional[float64]     `json:"durationMinutes"`
	Location        records.Optional[string]      `json:"location"`
}

// Columns returns the columns to overwrite.
func (r UpdateRequest) Columns() (map[string]any, error) {
	var c records.Changes
	records.Required(&c, "title", "title", r.Title)
	records.Nullable(&c, "description", r.Description)
	records.Nullable(&c, "animal", records.Map(r.Animal, func(ref records.Ref) *int64 { return ref.Int64() }))
	records.Required(&c, "time", "time", records.Map(r.Time, time.Time.UTC))
	records.Required(&c, "durationMinutes", "duration_minutes", r.DurationMinutes)
	records.Required(&c, "location", "location", r.Location)
	return c.Columns()
}

// SearchSchema lists the searchable event fields.
var SearchSchema = search.Schema{
	"id":              {Column: "id", Kind: search.Integer},
	"_id":             {Column: "id", Kind: search.Integer},
	"title":           {Column: "title", Kind: search.String},
	"description":     {Column: "description", Kind: search.String},
	"animal":          {Column: "animal", Kind: search.Integer},
	"time":            {Column: "time", Kind: search.Time},
	"durationMinutes": {Column: "duration_minutes", Kind: search.Number},
	"location":        {Column: "location", Kind: search.String},
}
