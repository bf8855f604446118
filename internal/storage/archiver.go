// Package storage archives uploaded catalog files before they are applied.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// Storage providers selectable through configuration.
const (
	ProviderLocal = "local"
	ProviderGCS   = "gcs"
)

const archivePrefix = "imports/catalog"

// ErrAlreadyExists is returned when the archive path is already taken.
var ErrAlreadyExists = errors.New("archive object already exists")

// Archiver stores the original bytes of an uploaded file and returns the
// path it was stored under. Existing objects are never overwritten.
type Archiver interface {
	Archive(ctx context.Context, owner, filename string, content []byte) (string, error)
}

// ObjectPath builds imports/catalog/<owner>/<unix millis>_<filename>.
func ObjectPath(owner, filename string, at time.Time) string {
	if owner == "" {
		owner = "anonymous"
	}
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" || name == "." || name == "/" {
		name = "upload.csv"
	}
	return fmt.Sprintf("%s/%s/%d_%s", archivePrefix, owner, at.UnixMilli(), name)
}
