// Package session keeps analyzed uploads until the operator confirms them.
package session

import (
	"context"
	"errors"

	"florify-catalog/internal/domain"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("analysis session not found")

// Store persists analysis sessions with a time to live.
type Store interface {
	Save(ctx context.Context, s *domain.AnalysisSession) error
	Get(ctx context.Context, id string) (*domain.AnalysisSession, error)
	Delete(ctx context.Context, id string) error
}
