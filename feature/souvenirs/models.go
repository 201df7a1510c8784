package souvenirs

import (
	"zoo-manager/core/records"
	"zoo-manager/core/search"
)

// Souvenir is an item sold in the zoo shop.
type Souvenir struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name        string  `gorm:"column:name;size:255;not null" json:"name"`
	Price       float64 `gorm:"column:price;not null" json:"price"`
	Stock       float64 `gorm:"column:stock;not null" json:"stock"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
}

// TableName overrides the table name.
func (Souvenir) TableName() string {
	return "souvenirs"
}

// PrimaryKey implements records.Record.
func (s Souvenir) PrimaryKey() int64 {
	return s.ID
}

// CreateRequest is the body of POST /souvenirs.
type CreateRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"required"`
	Stock       *float64 `json:"stock" validate:"required"`
	Description *string  `json:"description"`
}

// UpdateRequest is the body of PUT /souvenirs/:id. A null description
// clears it.
type UpdateRequest struct {
	Name        records.Optional[string]  `json:"name"`
	Price       records.Optional[float64] `json:"price"`
	Stock       records.Optional[float64] `json:"stock"`
	Description records.Optional[string]  `json:"description"`
}

// Columns returns the columns to overwrite.
func (r UpdateRequest) Columns() (map[string]any, error) {
	var c records.Changes
	records.Required(&c, "name", "name", r.Name)
	records.Required(&c, "price", "price", r.Price)
	records.Required(&c, "stock", "stock", r.Stock)
	records.Nullable(&c, "description", r.Description)
	return c.Columns()
}

// SearchSchema lists the searchable souvenir fields.
var SearchSchema = search.Schema{
	"id":          {Column: "id", Kind: search.Integer},
	"_id":         {Column: "id", Kind: search.Integer},
	"name":        {Column: "name", Kind: search.String},
	"price":       {Column: "price", Kind: search.Number},
	"stock":       {Column: "stock", Kind: search.Number},
	"description": {Column: "description", Kind: search.String},
}
