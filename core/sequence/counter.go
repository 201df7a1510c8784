package sequence

// Counter stores the last issued value of a named sequence.
type Counter struct {
	Name string `gorm:"column:name;primaryKey;size:64" json:"name"`
	Seq  int64  `gorm:"column:seq;not null" json:"seq"`
}

// TableName overrides the table name.
func (Counter) TableName() string {
	return "counters"
}

// Sequence names, one per entity type.
const (
	Animal   = "animal"
	Employee = "employee"
	Event    = "event"
	Souvenir = "souvenir"
)
