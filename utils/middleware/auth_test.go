package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univault/univault-api/utils/auth"
)

func newGatedApp(t *testing.T) (*fiber.App, *auth.JWTManager) {
	t.Helper()
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "univault-auth",
	})
	authMiddleware := NewAuthMiddleware(jwtManager)

	app := fiber.New()
	app.Get("/protected", authMiddleware.Required(), func(c *fiber.Ctx) error {
		identity, _ := GetIdentity(c)
		return c.JSON(fiber.Map{"identity": identity})
	})
	app.Get("/open", authMiddleware.Optional(), func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		return c.JSON(fiber.Map{"identity": identity, "authenticated": ok})
	})
	return app, jwtManager
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	app, _ := newGatedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredRejectsMalformedHeader(t *testing.T) {
	app, jwtManager := newGatedApp(t)

	token, err := jwtManager.GenerateToken("user_1", "", "")
	require.NoError(t, err)

	for _, header := range []string{"Token abc", token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestRequiredRejectsInvalidToken(t *testing.T) {
	app, _ := newGatedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredResolvesIdentity(t *testing.T) {
	app, jwtManager := newGatedApp(t)

	token, err := jwtManager.GenerateToken("user_1", "u1@example.com", "User One")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user_1", body["identity"])
}

func TestOptionalLetsAnonymousThrough(t *testing.T) {
	app, _ := newGatedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Identity      string `json:"identity"`
		Authenticated bool   `json:"authenticated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Authenticated)
	assert.Empty(t, body.Identity)
}
