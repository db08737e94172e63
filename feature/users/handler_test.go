package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"shortage-tracker/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()

	svc := NewService(setupTestDB(t), zap.NewNop())
	handler := NewHandler(svc)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, svc
}

func TestHandleLogin(t *testing.T) {
	app, svc := setupTestApp(t)

	_, err := svc.Create(context.Background(), "mario", "secret", models.RoleUser)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"username": "mario", "password": "secret"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/users/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "mario", body["username"])
	// The hash must never leak through the API.
	_, leaked := body["password_hash"]
	assert.False(t, leaked)
}

func TestHandleLogin_BadPassword(t *testing.T) {
	app, svc := setupTestApp(t)

	_, err := svc.Create(context.Background(), "mario", "secret", models.RoleUser)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"username": "mario", "password": "wrong"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/users/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHandleCreate_AdminOnly(t *testing.T) {
	app, svc := setupTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "boss", "secret", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "worker", "secret", models.RoleUser)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"username": "newbie", "password": "secret", "role": "user"})
	require.NoError(t, err)

	// Non-admin is rejected.
	req := httptest.NewRequest("POST", "/users/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "worker")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	// Admin succeeds.
	req = httptest.NewRequest("POST", "/users/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "boss")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleCreate_DuplicateUsername(t *testing.T) {
	app, svc := setupTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "boss", "secret", models.RoleAdmin)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"username": "boss", "password": "secret", "role": "user"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/users/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "boss")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, svc := setupTestApp(t)

	_, err := svc.Create(context.Background(), "mario", "secret", models.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/users/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestHandleUpdate(t *testing.T) {
	app, svc := setupTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "boss", "secret", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mario", "secret", models.RoleUser)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"role": "reader", "password": "changed"})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/users/mario", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "boss")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	user, err := svc.Login(ctx, "mario", "changed")
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, user.Role)
}

func TestHandleUpdate_UnknownUser(t *testing.T) {
	app, svc := setupTestApp(t)

	_, err := svc.Create(context.Background(), "boss", "secret", models.RoleAdmin)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]string{"role": "reader"})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/users/ghost", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "boss")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, svc := setupTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "boss", "secret", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mario", "secret", models.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/users/mario", nil)
	req.Header.Set("X-Username", "boss")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/users/mario", nil)
	req.Header.Set("X-Username", "boss")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(setupTestDB(t), zap.NewNop())

	assert.Equal(t, "users", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
