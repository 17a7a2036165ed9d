package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCounter struct{}

func (brokenCounter) Count(context.Context) (int64, error) {
	return 0, errors.New("table locked")
}

func healthRouter(controller *HealthController) *gin.Engine {
	router := gin.New()
	router.GET("/health", controller.Status)
	return router
}

func decodeHealth(t *testing.T, body []byte) CatalogHealth {
	t.Helper()
	var response CatalogHealth
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("reports catalog counts after seeding", func(t *testing.T) {
		app := setupTestApp(t, true)

		w := serve(app.router(), "/health")

		assert.Equal(t, http.StatusOK, w.Code)

		response := decodeHealth(t, w.Body.Bytes())
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "test", response.Version)
		assert.NotEmpty(t, response.Time)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, map[string]int64{"books": 2, "authors": 2, "publishers": 1}, response.Catalog)
		assert.Equal(t, "2 rows", response.Checks["books"])
		assert.Equal(t, "1 rows", response.Checks["publishers"])
	})

	t.Run("reports empty catalog", func(t *testing.T) {
		app := setupTestApp(t, false)

		w := serve(app.router(), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeHealth(t, w.Body.Bytes())
		assert.Equal(t, int64(0), response.Catalog["books"])
	})

	t.Run("returns 503 when a count fails", func(t *testing.T) {
		app := setupTestApp(t, true)
		controller := NewHealthController(app.db, "1.0.0", map[string]TableCounter{
			"books":   app.books,
			"authors": brokenCounter{},
		})

		w := serve(healthRouter(controller), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		response := decodeHealth(t, w.Body.Bytes())
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Contains(t, response.Checks["authors"], "table locked")
		assert.Equal(t, int64(2), response.Catalog["books"])
		assert.NotContains(t, response.Catalog, "authors")
	})

	t.Run("returns 503 when database is closed", func(t *testing.T) {
		app := setupTestApp(t, false)
		require.NoError(t, app.db.Close())

		w := serve(app.router(), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		response := decodeHealth(t, w.Body.Bytes())
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "unreachable", response.Checks["database"])
		assert.Contains(t, response.Checks["books"], "count failed")
	})

	t.Run("reports missing database", func(t *testing.T) {
		controller := NewHealthController(nil, "", nil)

		w := serve(healthRouter(controller), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeHealth(t, w.Body.Bytes())
		assert.Equal(t, "not configured", response.Checks["database"])
		assert.Empty(t, response.Catalog)
	})
}
