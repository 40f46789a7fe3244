package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebridge-server/internal/config"
	"carebridge-server/internal/middleware"
	"carebridge-server/internal/models"
	"carebridge-server/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 15,
	}
}

func authRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/", middleware.AuthMiddleware(cfg))
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := middleware.GetUserIDFromContext(c)
		role, _ := middleware.GetUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	protected.POST("/mutate", middleware.WriteRoleMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testConfig()
	router := authRouter(cfg)

	token, err := utils.GenerateToken("doc-7", models.RoleDoctor, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doc-7")
	assert.Contains(t, w.Body.String(), "doctor")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := authRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := authRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abcdef")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	cfg := testConfig()
	router := authRouter(cfg)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	token, err := utils.GenerateToken("doc-7", models.RoleDoctor, otherCfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareUnknownRole(t *testing.T) {
	cfg := testConfig()
	router := authRouter(cfg)

	token, err := utils.GenerateToken("x", models.Role("janitor"), cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareDisabledRunsAsAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.AuthDisabled = true
	router := authRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestWriteRoleMiddleware(t *testing.T) {
	cfg := testConfig()
	router := authRouter(cfg)

	tests := []struct {
		role models.Role
		want int
	}{
		{models.RoleAdmin, http.StatusNoContent},
		{models.RoleDoctor, http.StatusNoContent},
		{models.RoleNurse, http.StatusNoContent},
		{models.RoleCaregiver, http.StatusForbidden},
		{models.RolePatient, http.StatusForbidden},
	}
	for _, tt := range tests {
		token, err := utils.GenerateToken("u1", tt.role, cfg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tt.want, w.Code, "role %s", tt.role)
	}
}
