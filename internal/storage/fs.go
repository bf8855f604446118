package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/spf13/afero"
)

// FSArchiver archives files on an afero filesystem.
type FSArchiver struct {
	fs  afero.Fs
	now func() time.Time
}

// NewFSArchiver creates an archiver writing to fs.
func NewFSArchiver(fs afero.Fs) *FSArchiver {
	return &FSArchiver{fs: fs, now: time.Now}
}

// NewLocalArchiver creates an archiver rooted at dir on the OS filesystem.
func NewLocalArchiver(dir string) (*FSArchiver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	return NewFSArchiver(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// Archive writes content to a fresh path. It fails if the path exists.
func (a *FSArchiver) Archive(ctx context.Context, owner, filename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	objectPath := ObjectPath(owner, filename, a.now())
	if err := a.fs.MkdirAll(path.Dir(objectPath), 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	f, err := a.fs.OpenFile(objectPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, objectPath)
		}
		return "", fmt.Errorf("create archive file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write archive file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close archive file: %w", err)
	}

	return objectPath, nil
}
