package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"project-intake-backend/internal/api/routes"
	"project-intake-backend/internal/config"
	"project-intake-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newRouter builds the full router against a database that is never contacted
func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=test dbname=test sslmode=disable"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}

	router, err := routes.SetupRoutes(db, cfg, mocks.NewMockSimilarityServiceInterface(ctrl))
	require.NoError(t, err)
	return router
}

func TestSetupRoutes_RegistersIntakeEndpoints(t *testing.T) {
	router := newRouter(t)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"POST /create-team",
		"POST /api/v1/teams",
		"GET /api/v1/teams/:id",
		"GET /api/v1/projects",
		"PUT /api/v1/projects/:id/status",
		"PUT /api/v1/projects/:id/phases",
		"GET /api/v1/archived-projects",
		"GET /api/v1/mentors/:id/projects",
		"POST /api/v1/similarity/evaluate",
		"POST /api/v1/similarity/index/rebuild",
		"GET /health/ready",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRoutes_NoRoute(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	req.Header.Set("X-Request-ID", "req-404")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
	assert.Contains(t, w.Body.String(), "req-404")
}

func TestSetupRoutes_Live(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
