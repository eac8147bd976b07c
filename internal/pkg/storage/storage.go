package storage

import (
	"context"
	"io"
)

// FileStorage archives generated report exports alongside streaming them
// to the caller.
type FileStorage interface {
	// Upload stores a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, path string) error

	// Exists checks whether a stored file exists
	Exists(ctx context.Context, path string) (bool, error)
}
