package souvenirs

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoo-manager/core/database"
	"zoo-manager/core/sequence"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Souvenir{}, &sequence.Counter{}))

	app := fiber.New()
	NewHandler(NewService(db, sequence.NewAllocator(db), zap.NewNop())).RegisterRoutes(app)
	return app
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

func seed(t *testing.T, app *fiber.App) {
	t.Helper()
	for _, item := range []map[string]any{
		{"name": "Plush lion", "price": 19.5, "stock": 10},
		{"name": "Postcard", "price": 2, "stock": 200},
		{"name": "Mug", "price": 10, "stock": 0},
		{"name": "Poster", "price": 9.99, "stock": 5},
	} {
		resp, raw := doJSON(t, app, "POST", "/souvenirs", item)
		require.Equal(t, 201, resp.StatusCode, string(raw))
	}
}

func names(t *testing.T, raw []byte) []string {
	t.Helper()
	var items []Souvenir
	require.NoError(t, json.Unmarshal(raw, &items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Name)
	}
	return out
}

func TestHandleCreate(t *testing.T) {
	app := setupTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/souvenirs", map[string]any{"name": "Mug", "price": 10, "stock": 0})
	require.Equal(t, 201, resp.StatusCode)
	var s Souvenir
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, int64(1), s.ID)
	assert.Equal(t, 0.0, s.Stock)
	assert.Nil(t, s.Description)

	resp, raw = doJSON(t, app, "POST", "/souvenirs", map[string]any{"name": "Mug", "price": "cheap", "stock": 1})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, string(raw), "price")

	resp, _ = doJSON(t, app, "POST", "/souvenirs", map[string]any{"name": "Mug", "price": 3})
	assert.Equal(t, 400, resp.StatusCode)

	// Stock is a number, so fractional quantities such as 1.5 kg are kept.
	resp, raw = doJSON(t, app, "POST", "/souvenirs", map[string]any{"name": "Fudge", "price": 3, "stock": 1.5})
	require.Equal(t, 201, resp.StatusCode, string(raw))
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 1.5, s.Stock)

	resp, raw = doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "stock", "value": "1.5"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Fudge"}, names(t, raw))
}

func TestHandleSearch_NumericComparison(t *testing.T) {
	app := setupTestApp(t)
	seed(t, app)

	// "10" compares numerically, so 9.99 and 2 are excluded.
	resp, raw := doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "price", "operator": ">", "value": "10"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Plush lion"}, names(t, raw))

	resp, raw = doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "price", "operator": ">=", "value": 10})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Plush lion", "Mug"}, names(t, raw))

	resp, raw = doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "stock", "operator": "<=", "value": 5})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Mug", "Poster"}, names(t, raw))

	resp, raw = doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "name", "value": "Postcard"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Postcard"}, names(t, raw))
}

func TestHandleSearch_Rejections(t *testing.T) {
	app := setupTestApp(t)
	seed(t, app)

	resp, _ := doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "price", "operator": "!=", "value": 10})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "price", "operator": ">", "value": "abc"})
	assert.Equal(t, 400, resp.StatusCode)

	resp, raw := doJSON(t, app, "POST", "/souvenirs/search", map[string]any{"field": "colour", "value": "red"})
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestHandleUpdateAndDelete(t *testing.T) {
	app := setupTestApp(t)
	seed(t, app)

	// Present fields overwrite, including zero values.
	resp, raw := doJSON(t, app, "PUT", "/souvenirs/1", map[string]any{"stock": 0})
	require.Equal(t, 200, resp.StatusCode)
	var s Souvenir
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 0.0, s.Stock)
	assert.Equal(t, 19.5, s.Price)

	resp, _ = doJSON(t, app, "PUT", "/souvenirs/99", map[string]any{"stock": 1})
	assert.Equal(t, 404, resp.StatusCode)

	resp, raw = doJSON(t, app, "DELETE", "/souvenirs/2", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Souvenir deleted"}`, string(raw))

	resp, raw = doJSON(t, app, "GET", "/souvenirs", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"Plush lion", "Mug", "Poster"}, names(t, raw))
}

func TestHandleUpdate_Null(t *testing.T) {
	app := setupTestApp(t)
	seed(t, app)

	resp, raw := doJSON(t, app, "PUT", "/souvenirs/1", map[string]any{"description": "Soft and fluffy"})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	var s Souvenir
	require.NoError(t, json.Unmarshal(raw, &s))
	require.NotNil(t, s.Description)

	// An explicit null clears an optional field.
	resp, raw = doJSON(t, app, "PUT", "/souvenirs/1", map[string]any{"description": nil})
	require.Equal(t, 200, resp.StatusCode, string(raw))
	s = Souvenir{}
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Nil(t, s.Description)
	assert.Equal(t, "Plush lion", s.Name)

	resp, raw = doJSON(t, app, "PUT", "/souvenirs/1", map[string]any{"name": nil})
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"name: must not be null"}`, string(raw))

	resp, raw = doJSON(t, app, "GET", "/souvenirs/1", nil)
	require.Equal(t, 200, resp.StatusCode)
	s = Souvenir{}
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "Plush lion", s.Name)
}
