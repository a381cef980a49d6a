package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/utils/auth"
	"github.com/univault/univault-api/utils/middleware"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	research := database.NewMemoryResearchStore()
	institutions := database.NewMemoryInstitutionStore()
	require.NoError(t, database.RunSeeds(context.Background(), research, institutions))

	handler := NewDashboardHandler(services.NewDashboardService(research, institutions))

	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "univault-auth"})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	app := fiber.New()
	group := app.Group("/api/v1/dashboard", authMiddleware.Required())
	group.Get("/", handler.GetDashboard)
	group.Get("/stats", handler.GetStats)
	group.Get("/activity", handler.GetActivity)

	token, err := jwtManager.GenerateToken("user_1", "", "")
	require.NoError(t, err)
	return app, "Bearer " + token
}

func TestDashboardRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/v1/dashboard/", "/api/v1/dashboard/stats", "/api/v1/dashboard/activity"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	app, bearer := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	req.Header.Set("Authorization", bearer)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data services.DashboardStats `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Data.TotalResearch)
	assert.Equal(t, 3, body.Data.TotalInstitutions)
}

func TestDashboardOverviewEndpoint(t *testing.T) {
	app, bearer := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/", nil)
	req.Header.Set("Authorization", bearer)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data services.DashboardOverview `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Data.TopInstitutions)
	assert.NotEmpty(t, body.Data.RecentActivity)
}
