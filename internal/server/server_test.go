package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		StorageDriver:     driver,
		JWTSecret:         "test-secret",
		JWTTTL:            time.Hour,
		GenerateRateLimit: 5,
		CORSOrigins:       []string{"http://localhost:5173"},
	}
}

func TestBuildMemoryApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := Build(context.Background(), testConfig(config.DriverMemory), logger.Discard())
	require.NoError(t, err)
	defer app.Close()

	w := httptest.NewRecorder()
	app.Server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.Server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Serum", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.NotEmpty(t, products)

	// No Redis configured, so the quota endpoint is not mounted
	w = httptest.NewRecorder()
	app.Server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rate-limits/generate", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildSQLiteApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig(config.DriverSQLite)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "app.db")
	cfg.MigrationsDir = testhelpers.MigrationsDir()

	app, err := Build(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	defer app.Close()

	assert.NoError(t, app.Store.Ping(context.Background()))

	w := httptest.NewRecorder()
	app.Server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestServerShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := New(testConfig(config.DriverMemory), gin.New(), logger.Discard())
	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
