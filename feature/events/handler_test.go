package events

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zoo-manager/core/database"
	"zoo-manager/core/sequence"
	"zoo-manager/feature/animals"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &animals.Animal{}, &Event{}, &sequence.Counter{}))

	require.NoError(t, db.Create(&animals.Animal{
		ID: 3, Name: "Dumbo", Species: "elephant", Age: 12, Habitat: "plains", Diet: "herbivore", HealthStatus: "healthy",
	}).Error)

	app := fiber.New()
	NewHandler(NewService(db, sequence.NewAllocator(db), zap.NewNop())).RegisterRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func feeding(title, location string) map[string]any {
	return map[string]any{
		"title":           title,
		"time":            "2026-05-01T10:00:00Z",
		"durationMinutes": 30,
		"location":        location,
	}
}

func createEvent(t *testing.T, app *fiber.App, body map[string]any) Event {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/events", body)
	require.Equal(t, 201, resp.StatusCode, string(raw))
	var e Event
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func TestHandleCreate(t *testing.T) {
	app, _ := setupTestApp(t)

	body := feeding("Elephant bath", "pond")
	body["animal"] = "3"
	e := createEvent(t, app, body)
	assert.Equal(t, int64(1), e.ID)
	require.NotNil(t, e.Animal)
	assert.Equal(t, int64(3), *e.Animal)
	assert.True(t, e.Time.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)))

	// An empty animal field from the web form means no animal.
	body = feeding("Keeper talk", "hall")
	body["animal"] = ""
	e = createEvent(t, app, body)
	assert.Equal(t, int64(2), e.ID)
	assert.Nil(t, e.Animal)

	body = feeding("Night walk", "gate")
	body["time"] = "tomorrow"
	resp, _ := doJSON(t, app, "POST", "/events", body)
	assert.Equal(t, 400, resp.StatusCode)

	body = feeding("Night walk", "gate")
	delete(body, "durationMinutes")
	resp, raw := doJSON(t, app, "POST", "/events", body)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, string(raw), "durationMinutes")

	// Rejected creates do not consume identifiers.
	e = createEvent(t, app, feeding("Night walk", "gate"))
	assert.Equal(t, int64(3), e.ID)

	body = feeding("Quick feed", "pond")
	body["durationMinutes"] = 7.5
	e = createEvent(t, app, body)
	assert.Equal(t, 7.5, e.DurationMinutes)
}

func TestHandleList_ResolvesAnimal(t *testing.T) {
	app, _ := setupTestApp(t)

	featured := feeding("Elephant bath", "pond")
	featured["animal"] = 3
	createEvent(t, app, featured)
	dangling := feeding("Penguin parade", "shore")
	dangling["animal"] = 42
	createEvent(t, app, dangling)

	resp, raw := doJSON(t, app, "GET", "/events", nil)
	require.Equal(t, 200, resp.StatusCode)
	var views []View
	require.NoError(t, json.Unmarshal(raw, &views))
	require.Len(t, views, 2)

	require.NotNil(t, views[0].ResolvedAnimal)
	assert.Equal(t, "Dumbo", views[0].ResolvedAnimal.Name)
	assert.Equal(t, int64(42), *views[1].Animal)
	assert.Nil(t, views[1].ResolvedAnimal)
}

func TestHandleUpdate(t *testing.T) {
	app, _ := setupTestApp(t)
	createEvent(t, app, feeding("Elephant bath", "pond"))

	resp, raw := doJSON(t, app, "PUT", "/events/1", map[string]any{"location": "river", "animal": 3})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	var e Event
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "river", e.Location)
	assert.Equal(t, "Elephant bath", e.Title)
	assert.Equal(t, int64(3), *e.Animal)

	resp, _ = doJSON(t, app, "PUT", "/events/1", map[string]any{"durationMinutes": "long"})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/events/9", map[string]any{"location": "river"})
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/events/abc", map[string]any{"location": "river"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleUpdate_Null(t *testing.T) {
	app, _ := setupTestApp(t)
	body := feeding("Elephant bath", "pond")
	body["animal"] = 3
	body["description"] = "Bring towels"
	createEvent(t, app, body)

	resp, raw := doJSON(t, app, "PUT", "/events/1", map[string]any{"animal": nil, "description": nil})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	var e Event
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Nil(t, e.Animal)
	assert.Nil(t, e.Description)
	assert.Equal(t, "Elephant bath", e.Title)

	for _, field := range []string{"title", "time", "durationMinutes", "location"} {
		resp, raw = doJSON(t, app, "PUT", "/events/1", map[string]any{field: nil})
		assert.Equal(t, 400, resp.StatusCode, field)
		assert.Contains(t, string(raw), field+": must not be null")
	}

	resp, raw = doJSON(t, app, "GET", "/events/1", nil)
	require.Equal(t, 200, resp.StatusCode)
	e = Event{}
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "pond", e.Location)
	assert.Equal(t, 30.0, e.DurationMinutes)
}

func TestHandleDelete(t *testing.T) {
	app, _ := setupTestApp(t)
	createEvent(t, app, feeding("Elephant bath", "pond"))

	resp, raw := doJSON(t, app, "DELETE", "/events/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Event deleted"}`, string(raw))

	resp, _ = doJSON(t, app, "GET", "/events/1", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	app, _ := setupTestApp(t)
	createEvent(t, app, feeding("Elephant bath", "pond"))
	createEvent(t, app, feeding("Duck feeding", "pond"))
	createEvent(t, app, feeding("Keeper talk", "hall"))

	resp, raw := doJSON(t, app, "POST", "/events/search", map[string]any{"field": "location", "value": "pond"})
	require.Equal(t, 200, resp.StatusCode)
	var got []Event
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 2)

	resp, raw = doJSON(t, app, "POST", "/events/search", map[string]any{"field": "durationMinutes", "value": "30"})
	require.Equal(t, 200, resp.StatusCode)
	got = nil
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 3)

	resp, _ = doJSON(t, app, "POST", "/events/search", map[string]any{"field": "durationMinutes", "operator": "<", "value": 60})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSearch_TimeOffset(t *testing.T) {
	app, _ := setupTestApp(t)
	body := feeding("Sunrise walk", "gate")
	body["time"] = "2026-05-01T12:00:00+02:00"
	createEvent(t, app, body)
	createEvent(t, app, feeding("Keeper talk", "hall"))

	// The same instant matches whichever offset it is written in.
	for _, value := range []string{"2026-05-01T10:00:00Z", "2026-05-01T12:00:00+02:00"} {
		resp, raw := doJSON(t, app, "POST", "/events/search", map[string]any{"field": "time", "value": value})
		require.Equal(t, 200, resp.StatusCode, value)
		var got []Event
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Len(t, got, 2, value)
	}

	resp, raw := doJSON(t, app, "POST", "/events/search", map[string]any{"field": "time", "value": "2026-05-01T12:00:00Z"})
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}
