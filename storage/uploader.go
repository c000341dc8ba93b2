package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored snapshot object.
type UploadResult struct {
	Key string
	// Location is the public URL the object is served from.
	Location string
	ETag     string
}

// FileUploader stores published tournament snapshots under a key such as
// tournaments/{id}/snapshot.json. Uploading to an existing key replaces it.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}
