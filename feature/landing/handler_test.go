package landing

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zoo-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func get(t *testing.T, app *fiber.App, path string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func TestHandleIndex_PublicDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Zoo</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	app := fiber.New()
	require.NoError(t, NewFeature(dir, nil, "", zap.NewNop()).Load(app))

	status, contentType, body := get(t, app, "/")
	assert.Equal(t, 200, status)
	assert.Contains(t, contentType, "text/html")
	assert.Equal(t, "<h1>Zoo</h1>", body)

	status, _, body = get(t, app, "/app.js")
	assert.Equal(t, 200, status)
	assert.Equal(t, "console.log(1)", body)
}

func TestHandleIndex_Missing(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature(t.TempDir(), nil, "", zap.NewNop()).Load(app))

	status, _, _ := get(t, app, "/")
	assert.Equal(t, 404, status)
}

func TestHandleIndex_Storage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "zoo", IndexKey, mock.Anything).
		Return(io.NopCloser(strings.NewReader("<h1>Bucket</h1>")), nil)

	app := fiber.New()
	require.NoError(t, NewFeature("unused", mockClient, "zoo", zap.NewNop()).Load(app))

	status, _, body := get(t, app, "/")
	assert.Equal(t, 200, status)
	assert.Equal(t, "<h1>Bucket</h1>", body)
	mockClient.AssertExpectations(t)
}

func TestHandleIndex_StorageMissingKey(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "zoo", IndexKey, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

	app := fiber.New()
	require.NoError(t, NewFeature("", mockClient, "zoo", zap.NewNop()).Load(app))

	status, _, _ := get(t, app, "/")
	assert.Equal(t, 404, status)
}

func TestHandleIndex_StorageFailure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "zoo", IndexKey, mock.Anything).
		Return(nil, assert.AnError)

	app := fiber.New()
	require.NoError(t, NewFeature("", mockClient, "zoo", zap.NewNop()).Load(app))

	status, _, body := get(t, app, "/")
	assert.Equal(t, 500, status)
	assert.Contains(t, body, "failed to download public/index.html")
}
