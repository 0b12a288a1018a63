package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing record image attachments.
// Implementations decide where bytes land (local directory, object store).
type FileStorage interface {
	// Save streams the attachment to storage under the given key and returns
	// the stored key.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes a stored attachment. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
