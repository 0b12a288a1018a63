// Package storage stores record image attachments in a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"bluecarbon/config"
	"bluecarbon/internal/domain/lifecycle"
	"bluecarbon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Local filesystem bucket driver for development deployments.
	_ "gocloud.dev/blob/fileblob"
)

// blobStorage implements FileStorage on a gocloud blob bucket. The bucket URL
// decides the backend, so swapping the local directory for an object store is
// a configuration change.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the attachment bucket and registers its shutdown hook.
func New(params Params) (service.FileStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Uploads.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Uploads.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save streams the attachment to the bucket under the given key and returns
// the stored key.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write attachment %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize attachment %s", key)
	}

	s.logger.Debug("Attachment stored", slog.String("key", key))

	return key, nil
}

// Delete removes a stored attachment. Missing keys are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete attachment %s", key)
	}

	return nil
}
