package animals

import (
	"zoo-manager/core/records"
	"zoo-manager/core/search"

	"gorm.io/gorm"
)

// DefaultHealthStatus is assigned when a new animal carries no status.
const DefaultHealthStatus = "healthy"

// Animal is a zoo animal record.
type Animal struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name         string  `gorm:"column:name;size:255;not null" json:"name"`
	Species      string  `gorm:"column:species;size:255;not null" json:"species"`
	Age          float64 `gorm:"column:age;not null" json:"age"`
	Description  *string `gorm:"column:description;type:text" json:"description,omitempty"`
	Habitat      string  `gorm:"column:habitat;size:255;not null" json:"habitat"`
	Diet         string  `gorm:"column:diet;size:255;not null" json:"diet"`
	HealthStatus string  `gorm:"column:health_status;size:64;not null;default:healthy" json:"healthStatus"`
}

// TableName overrides the table name.
func (Animal) TableName() string {
	return "animals"
}

// PrimaryKey implements records.Record.
func (a Animal) PrimaryKey() int64 {
	return a.ID
}

// CreateRequest is the body of POST /animals.
type CreateRequest struct {
	Name         *string  `json:"name" validate:"required,min=1"`
	Species      *string  `json:"species" validate:"required,min=1"`
	Age          *float64 `json:"age" validate:"required"`
	Description  *string  `json:"description"`
	Habitat      *string  `json:"habitat" validate:"required,min=1"`
	Diet         *string  `json:"diet" validate:"required,min=1"`
	HealthStatus *string  `json:"healthStatus"`
}

// UpdateRequest is the body of PUT /animals/:id. Omitted or empty fields keep
// their stored value.
type UpdateRequest struct {
	Name         *string  `json:"name"`
	Species      *string  `json:"species"`
	Age          *float64 `json:"age"`
	Description  *string  `json:"description"`
	Habitat      *string  `json:"habitat"`
	Diet         *string  `json:"diet"`
	HealthStatus *string  `json:"healthStatus"`
}

// HealthRequest is the body of PUT /animals/:id/health.
type HealthRequest struct {
	HealthStatus *string `json:"healthStatus" validate:"required,min=1"`
}

// SearchSchema lists the searchable animal fields.
var SearchSchema = search.Schema{
	"id":           {Column: "id", Kind: search.Integer},
	"_id":          {Column: "id", Kind: search.Integer},
	"name":         {Column: "name", Kind: search.String},
	"species":      {Column: "species", Kind: search.String},
	"age":          {Column: "age", Kind: search.Number},
	"description":  {Column: "description", Kind: search.String},
	"habitat":      {Column: "habitat", Kind: search.String},
	"diet":         {Column: "diet", Kind: search.String},
	"healthStatus": {Column: "health_status", Kind: search.String},
}

// NewRepository returns the animal repository. Employees and events use it
// to resolve their animal references.
func NewRepository(db *gorm.DB) *records.Repository[Animal] {
	return records.NewRepository[Animal](db, "animal")
}
