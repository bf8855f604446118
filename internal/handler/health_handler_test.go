package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		cache    Pinger
		wantCode int
		wantSvcs map[string]string
	}{
		{
			name:     "database only",
			db:       stubPinger{},
			wantCode: http.StatusOK,
			wantSvcs: map[string]string{"database": "healthy"},
		},
		{
			name:     "database and session store",
			db:       stubPinger{},
			cache:    stubPinger{},
			wantCode: http.StatusOK,
			wantSvcs: map[string]string{"database": "healthy", "session_store": "healthy"},
		},
		{
			name:     "database down",
			db:       stubPinger{err: errors.New("refused")},
			wantCode: http.StatusServiceUnavailable,
			wantSvcs: map[string]string{"database": "unhealthy"},
		},
		{
			name:     "session store down",
			db:       stubPinger{},
			cache:    stubPinger{err: errors.New("refused")},
			wantCode: http.StatusServiceUnavailable,
			wantSvcs: map[string]string{"database": "healthy", "session_store": "unhealthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := healthRouter(NewHealthHandler(tt.db, tt.cache))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, w.Code)

			var response HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantSvcs, response.Services)
		})
	}
}

func TestHealthHandler_Probes(t *testing.T) {
	t.Run("ready when dependencies answer", func(t *testing.T) {
		w := httptest.NewRecorder()
		healthRouter(NewHealthHandler(stubPinger{}, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready when database is down", func(t *testing.T) {
		w := httptest.NewRecorder()
		healthRouter(NewHealthHandler(stubPinger{err: errors.New("refused")}, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("alive regardless of dependencies", func(t *testing.T) {
		w := httptest.NewRecorder()
		healthRouter(NewHealthHandler(stubPinger{err: errors.New("refused")}, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
