package institution

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/model"
	"github.com/univault/univault-api/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := database.NewMemoryInstitutionStore()
	ctx := context.Background()
	for _, inst := range database.SeedInstitutions() {
		require.NoError(t, store.Put(ctx, inst))
	}

	handler := NewInstitutionHandler(services.NewInstitutionService(store, nil))

	app := fiber.New()
	group := app.Group("/api/v1/institutions")
	group.Get("/", handler.ListInstitutions)
	group.Get("/:id", handler.GetInstitution)
	return app
}

func TestListInstitutionsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/institutions/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                `json:"success"`
		Data    []model.Institution `json:"data"`
		Count   int                 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Data, 3)
}

func TestGetInstitutionEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/institutions/inst_1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data model.Institution `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UniKL MIIT", body.Data.Name)
	assert.InDelta(t, 3.1579, body.Data.Location.Lat, 0.0001)
}

func TestGetInstitutionNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/institutions/inst_999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
