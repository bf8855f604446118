package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florify-catalog/internal/logger"
)

const (
	// OperatorIDHeader carries the UUID of the operator confirming an import.
	OperatorIDHeader = "X-Operator-ID"
	// OperatorIDKey is the gin context key for the operator ID
	OperatorIDKey = "operator_id"
)

// Operator reads the optional X-Operator-ID header. A present but malformed
// value is rejected with 400; an absent one leaves the operator unset.
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(OperatorIDHeader))
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID must be a valid UUID"})
			return
		}

		operatorID := id.String()
		c.Set(OperatorIDKey, operatorID)

		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), slog.String("operator_id", operatorID)))

		c.Next()
	}
}

// GetOperatorID returns the operator ID set by Operator, or nil.
func GetOperatorID(c *gin.Context) *string {
	if v, exists := c.Get(OperatorIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}
