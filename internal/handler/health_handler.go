package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Pinger is a dependency whose reachability is checked by the probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when
// analysis sessions are kept in process.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) check(ctx context.Context) (map[string]string, bool) {
	services := map[string]string{"database": "healthy"}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unhealthy"
		healthy = false
	}
	if h.cache != nil {
		services["session_store"] = "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			services["session_store"] = "unhealthy"
			healthy = false
		}
	}
	return services, healthy
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, healthy := h.check(c.Request.Context()); !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
