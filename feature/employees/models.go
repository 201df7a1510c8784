package employees

import (
	"zoo-manager/core/records"
	"zoo-manager/core/search"
	"zoo-manager/feature/animals"
)

// Employee is a zoo staff record.
type Employee struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name           string `gorm:"column:name;size:255;not null" json:"name"`
	Email          string `gorm:"column:email;size:255;not null" json:"email"`
	Phone          string `gorm:"column:phone;size:64;not null" json:"phone"`
	Position       string `gorm:"column:position;size:255;not null" json:"position"`
	AssignedAnimal *int64 `gorm:"column:assigned_animal;index" json:"assignedAnimal,omitempty"`
}

// TableName overrides the table name.
func (Employee) TableName() string {
	return "employees"
}

// PrimaryKey implements records.Record.
func (e Employee) PrimaryKey() int64 {
	return e.ID
}

// View is an employee with its assigned animal resolved inline.
// ResolvedAnimal is null when there is no reference or it dangles.
type View struct {
	Employee
	ResolvedAnimal *animals.Animal `json:"resolvedAnimal"`
}

// CreateRequest is the body of POST /employees.
type CreateRequest struct {
	Name           *string      `json:"name" validate:"required,min=1"`
	Email          *string      `json:"email" validate:"required,min=1"`
	Phone          *string      `json:"phone" validate:"required,min=1"`
	Position       *string      `json:"position" validate:"required,min=1"`
	AssignedAnimal *records.Ref `json:"assignedAnimal"`
}

// UpdateRequest is the body of PUT /employees/:id. Present fields overwrite,
// an empty or null assignedAnimal clears the reference.
type UpdateRequest struct {
	Name           records.Optional[string]      `json:"name"`
	Email          records.Optional[string]      `json:"email"`
	Phone          records.Optional[string]      `json:"phone"`
	Position       records.Optional[string]      `json:"position"`
	AssignedAnimal records.Optional[records.Ref] `json:"assignedAnimal"`
}

// Columns returns the columns to overwrite.
func (r UpdateRequest) Columns() (map[string]any, error) {
	var c records.Changes
	records.Required(&c, "name", "name", r.Name)
	records.Required(&c, "email", "email", r.Email)
	records.Required(&c, "phone", "phone", r.Phone)
	records.Required(&c, "position", "position", r.Position)
	records.Nullable(&c, "assigned_animal", records.Map(r.AssignedAnimal, func(ref records.Ref) *int64 { return ref.Int64() }))
	return c.Columns()
}

// SearchSchema lists the searchable employee fields.
var SearchSchema = search.Schema{
	"id":             {Column: "id", Kind: search.Integer},
	"_id":            {Column: "id", Kind: search.Integer},
	"name":           {Column: "name", Kind: search.String},
	"email":          {Column: "email", Kind: search.String},
	"phone":          {Column: "phone", Kind: search.String},
	"position":       {Column: "position", Kind: search.String},
	"assignedAnimal": {Column: "assigned_animal", Kind: search.Integer},
}
