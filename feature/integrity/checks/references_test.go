package checks

import (
	"context"
	"testing"

	"zoo-manager/core/database"
	"zoo-manager/feature/animals"
	"zoo-manager/feature/employees"
	"zoo-manager/feature/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &animals.Animal{}, &employees.Employee{}, &events.Event{}))
	return db
}

func ref(v int64) *int64 { return &v }

func TestCheckReferences(t *testing.T) {
	db := setupSQLite(t)

	require.NoError(t, db.Create(&animals.Animal{ID: 1, Name: "Leo", Species: "lion", Habitat: "savanna", Diet: "meat", HealthStatus: "healthy"}).Error)
	require.NoError(t, db.Create(&[]employees.Employee{
		{ID: 1, Name: "anna", Email: "a@zoo", Phone: "1", Position: "keeper", AssignedAnimal: ref(1)},
		{ID: 2, Name: "bob", Email: "b@zoo", Phone: "2", Position: "keeper", AssignedAnimal: ref(5)},
		{ID: 3, Name: "carl", Email: "c@zoo", Phone: "3", Position: "cashier"},
	}).Error)
	require.NoError(t, db.Create(&events.Event{ID: 1, Title: "Parade", Animal: ref(9), DurationMinutes: 10, Location: "gate"}).Error)

	report, err := CheckReferences(context.Background(), db)
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Equal(t, int64(3), report.Checked)
	assert.Equal(t, []Dangling{
		{Collection: "employees", Field: "assigned_animal", ID: 2, Animal: 5},
		{Collection: "events", Field: "animal", ID: 1, Animal: 9},
	}, report.Dangling)
}

func TestCheckReferences_Clean(t *testing.T) {
	db := setupSQLite(t)

	report, err := CheckReferences(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Dangling)
	assert.NotNil(t, report.Dangling)
}

func TestCheckReferences_NilDB(t *testing.T) {
	report, err := CheckReferences(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}
