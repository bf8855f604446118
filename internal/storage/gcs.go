package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Cloud Storage client. Explicit credentials JSON is
// used when given, otherwise application default credentials.
func NewGCSClient(ctx context.Context, credentialsJSON string) (*storage.Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return client, nil
}

// GCSArchiver archives files as objects in a Cloud Storage bucket.
type GCSArchiver struct {
	client *storage.Client
	bucket string
	now    func() time.Time
}

// NewGCSArchiver creates an archiver writing to bucket.
func NewGCSArchiver(client *storage.Client, bucket string) *GCSArchiver {
	return &GCSArchiver{client: client, bucket: bucket, now: time.Now}
}

// Archive uploads content with a does-not-exist precondition.
func (a *GCSArchiver) Archive(ctx context.Context, owner, filename string, content []byte) (string, error) {
	objectPath := ObjectPath(owner, filename, a.now())

	obj := a.client.Bucket(a.bucket).Object(objectPath).If(storage.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = "text/csv"
	w.Metadata = map[string]string{"original-filename": filename}

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload archive object: %w", err)
	}
	if err := w.Close(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return "", fmt.Errorf("%w: gs://%s/%s", ErrAlreadyExists, a.bucket, objectPath)
		}
		return "", fmt.Errorf("finalize archive object: %w", err)
	}

	return objectPath, nil
}

// Close releases the underlying client.
func (a *GCSArchiver) Close() error {
	return a.client.Close()
}
