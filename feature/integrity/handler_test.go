package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"zoo-manager/core/storage/mocks"
	"zoo-manager/feature/animals"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestApp(t *testing.T, db *gorm.DB, client *mocks.Client) *fiber.App {
	app := fiber.New()
	var svc *Service
	if client == nil {
		svc = NewService(db, testModels, nil, "", zap.NewNop())
	} else {
		svc = NewService(db, testModels, client, "zoo", zap.NewNop())
	}
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleReferenceCheck(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("INSERT INTO events (id, title, animal, time, duration_minutes, location) VALUES (1, 'Parade', 12, '2026-01-01 10:00:00', 15, 'gate')").Error)
	app := setupTestApp(t, db, nil)

	status, body := getJSON(t, app, "/integrity/references")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["matched"])
	dangling := body["dangling"].([]any)
	require.Len(t, dangling, 1)
	assert.Equal(t, "events", dangling[0].(map[string]any)["collection"])
}

func TestHandleReferenceCheck_StorageFailure(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery("SELECT count").WillReturnError(assert.AnError)
	app := setupTestApp(t, db, nil)

	status, body := getJSON(t, app, "/integrity/references")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "failed to count employees references")
}

func TestHandleSchemaCheck(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint", "NO", "PRI", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `animals`").WillReturnRows(rows)

	app := fiber.New()
	NewHandler(NewService(db, []any{&animals.Animal{}}, nil, "", zap.NewNop())).RegisterRoutes(app)

	status, body := getJSON(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, "mysql", body["driver"])
	assert.Equal(t, false, body["matched"])
}

func TestHandleStructureCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(t, nil, nil)
		status, _ := getJSON(t, app, "/integrity/structure")
		assert.Equal(t, 503, status)
	})

	t.Run("Fix", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "zoo").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "zoo", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
		mockClient.On("PutObject", mock.Anything, "zoo", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		app := setupTestApp(t, nil, mockClient)
		status, body := getJSON(t, app, "/integrity/structure?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, "fixed", body["status"])
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, setupDB(t), nil)

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["references"].(map[string]any)["matched"])
	assert.Equal(t, true, body["schema"].(map[string]any)["matched"])
	assert.Equal(t, "disabled", body["structure"].(map[string]any)["status"])
}
