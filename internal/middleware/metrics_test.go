package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"florify-catalog/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records HTTP request metrics", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Get initial counter values
		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		// Make request
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// Verify counter incremented
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
		assert.Equal(t, initialTotal+1, newTotal, "Request counter should increment")

		// In-flight should be back to initial (request completed)
		afterInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
		assert.Equal(t, initialInFlight, afterInFlight, "In-flight should return to initial after request")
	})

	t.Run("records different status codes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/notfound", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/notfound", "404"))

		req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/notfound", "404"))
		assert.Equal(t, initialTotal+1, newTotal, "404 counter should increment")
	})

	t.Run("skips metrics endpoint", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200"))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
	})

	t.Run("skips probe endpoints", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/live", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "alive"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200"))

		req := httptest.NewRequest(http.MethodGet, "/live", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200")))
	})

	t.Run("labels unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	})

	t.Run("handles POST requests", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/v1/imports/analyses", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"analysis_id": "123"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/imports/analyses", "201"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/analyses", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/imports/analyses", "201"))
		assert.Equal(t, initialTotal+1, newTotal, "POST counter should increment")
	})
}
