package domain

import "time"

// AnalysisSession holds a reconciled upload between analysis and
// confirmation. Content is the uploaded file, kept for archival on apply.
type AnalysisSession struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Content   []byte    `json:"content"`
	Analysis  *Analysis `json:"analysis"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
