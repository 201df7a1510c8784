package animals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"zoo-manager/core/database"
	"zoo-manager/core/sequence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Animal{}, &sequence.Counter{}))

	svc := NewService(db, sequence.NewAllocator(db), zap.NewNop())
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
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

func leo() map[string]any {
	return map[string]any{
		"name":    "Leo",
		"species": "lion",
		"age":     7,
		"habitat": "savanna",
		"diet":    "carnivore",
	}
}

func createAnimal(t *testing.T, app *fiber.App, body map[string]any) Animal {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/animals", body)
	require.Equal(t, 201, resp.StatusCode, string(raw))
	var a Animal
	require.NoError(t, json.Unmarshal(raw, &a))
	return a
}

func TestHandleCreate(t *testing.T) {
	app, _ := setupTestApp(t)

	first := createAnimal(t, app, leo())
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Leo", first.Name)
	assert.Equal(t, DefaultHealthStatus, first.HealthStatus)
	assert.Nil(t, first.Description)

	second := createAnimal(t, app, map[string]any{
		"name": "Zara", "species": "zebra", "age": 0, "habitat": "savanna",
		"diet": "herbivore", "description": "newborn", "healthStatus": "observation",
	})
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 0.0, second.Age)
	assert.Equal(t, "observation", second.HealthStatus)
	require.NotNil(t, second.Description)
	assert.Equal(t, "newborn", *second.Description)
}

func TestHandleCreate_Validation(t *testing.T) {
	app, _ := setupTestApp(t)

	body := leo()
	delete(body, "species")
	resp, raw := doJSON(t, app, "POST", "/animals", body)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"species: is required"}`, string(raw))

	body = leo()
	body["age"] = "old"
	resp, raw = doJSON(t, app, "POST", "/animals", body)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"age: must be a number"}`, string(raw))

	// Rejected creates do not consume identifiers.
	assert.Equal(t, int64(1), createAnimal(t, app, leo()).ID)
}

func TestCreate_ConcurrentIdentifiers(t *testing.T) {
	_, svc := setupTestApp(t)

	name, species, habitat, diet, age := "Kiki", "parrot", "aviary", "seeds", 2.0
	req := CreateRequest{Name: &name, Species: &species, Age: &age, Habitat: &habitat, Diet: &diet}

	const n = 10
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := svc.Create(context.Background(), req)
			if assert.NoError(t, err) {
				ids[i] = a.ID
			}
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestHandleGet(t *testing.T) {
	app, _ := setupTestApp(t)
	created := createAnimal(t, app, leo())

	resp, raw := doJSON(t, app, "GET", "/animals/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var got Animal
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created, got)

	resp, raw = doJSON(t, app, "GET", "/animals/404", nil)
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"error":"animal 404 not found"}`, string(raw))

	resp, _ = doJSON(t, app, "GET", "/animals/lion", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, raw := doJSON(t, app, "GET", "/animals", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))

	createAnimal(t, app, leo())
	createAnimal(t, app, leo())

	_, raw = doJSON(t, app, "GET", "/animals", nil)
	var all []Animal
	require.NoError(t, json.Unmarshal(raw, &all))
	assert.Len(t, all, 2)
}

func TestHandleUpdate_KeepsOmittedFields(t *testing.T) {
	app, _ := setupTestApp(t)
	before := createAnimal(t, app, leo())

	resp, raw := doJSON(t, app, "PUT", "/animals/1", map[string]any{"age": 5})
	require.Equal(t, 200, resp.StatusCode, string(raw))

	var after Animal
	require.NoError(t, json.Unmarshal(raw, &after))
	before.Age = 5
	assert.Equal(t, before, after)
}

func TestHandleUpdate_EmptyValuesFallBack(t *testing.T) {
	app, _ := setupTestApp(t)
	createAnimal(t, app, leo())

	resp, raw := doJSON(t, app, "PUT", "/animals/1", map[string]any{"name": "", "age": 0, "habitat": "enclosure B"})
	require.Equal(t, 200, resp.StatusCode)

	var after Animal
	require.NoError(t, json.Unmarshal(raw, &after))
	assert.Equal(t, "Leo", after.Name)
	assert.Equal(t, 7.0, after.Age)
	assert.Equal(t, "enclosure B", after.Habitat)
}

func TestHandleUpdate_NotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, "PUT", "/animals/9", map[string]any{"age": 5})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSetHealth(t *testing.T) {
	app, _ := setupTestApp(t)
	createAnimal(t, app, leo())

	resp, raw := doJSON(t, app, "PUT", "/animals/1/health", map[string]any{"healthStatus": "sick", "name": "ignored"})
	require.Equal(t, 200, resp.StatusCode)
	var got Animal
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "sick", got.HealthStatus)
	assert.Equal(t, "Leo", got.Name)

	resp, _ = doJSON(t, app, "PUT", "/animals/1/health", map[string]any{})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/animals/2/health", map[string]any{"healthStatus": "sick"})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, _ := setupTestApp(t)
	createAnimal(t, app, leo())

	resp, raw := doJSON(t, app, "DELETE", "/animals/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Animal deleted"}`, string(raw))

	resp, _ = doJSON(t, app, "GET", "/animals/1", nil)
	assert.Equal(t, 404, resp.StatusCode)

	// Never created: still reported as deleted.
	resp, _ = doJSON(t, app, "DELETE", "/animals/31337", nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	app, _ := setupTestApp(t)
	for _, age := range []float64{2, 5, 11} {
		body := leo()
		body["age"] = age
		createAnimal(t, app, body)
	}

	search := func(body map[string]any) (int, []Animal) {
		resp, raw := doJSON(t, app, "POST", "/animals/search", body)
		var out []Animal
		if resp.StatusCode == 200 {
			require.NoError(t, json.Unmarshal(raw, &out))
		}
		return resp.StatusCode, out
	}

	status, got := search(map[string]any{"field": "age", "operator": ">=", "value": "5"})
	assert.Equal(t, 200, status)
	assert.Len(t, got, 2)

	status, got = search(map[string]any{"field": "age", "operator": "<", "value": 10})
	assert.Equal(t, 200, status)
	assert.Len(t, got, 2)

	status, got = search(map[string]any{"field": "species", "operator": "=", "value": "lion"})
	assert.Equal(t, 200, status)
	assert.Len(t, got, 3)

	status, got = search(map[string]any{"field": "wingspan", "operator": ">", "value": 1})
	assert.Equal(t, 200, status)
	assert.Empty(t, got)

	status, _ = search(map[string]any{"field": "age", "operator": "!=", "value": 1})
	assert.Equal(t, 400, status)
}

func TestHandleGet_StorageFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `animals`").WillReturnError(errors.New("server has gone away"))

	app := fiber.New()
	NewHandler(NewService(db, sequence.NewAllocator(db), zap.NewNop())).RegisterRoutes(app)

	resp, _ := doJSON(t, app, "GET", "/animals/1", nil)
	assert.Equal(t, 500, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
