// Package storage abstracts where uploaded documents live. The local
// implementation serves development; the S3 one targets any S3-compatible
// backend (AWS, MinIO).
package storage

import (
	"context"
	"io"
)

// Storage saves and deletes uploaded files.
type Storage interface {
	// Save stores the file under key and returns its public URL.
	// key is a unique path inside the store (e.g. "news/2026/08/<uuid>.pdf").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
