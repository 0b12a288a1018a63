package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bluecarbon/config"
	"bluecarbon/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStorage(t *testing.T) (service.FileStorage, string) {
	dir := t.TempDir()

	cfg := &config.Config{
		Uploads: &config.UploadsConfig{
			BucketURL: "file://" + dir + "?create_dir=true",
		},
	}

	store, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return store, dir
}

func TestBlobStorage_SaveAndDelete(t *testing.T) {
	store, dir := createTestStorage(t)
	ctx := context.Background()

	key, err := store.Save(ctx, "records/site-1/photo.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "records/site-1/photo.png", key)

	stored, err := os.ReadFile(filepath.Join(dir, "records", "site-1", "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	require.NoError(t, store.Delete(ctx, key))

	_, err = os.Stat(filepath.Join(dir, "records", "site-1", "photo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	store, _ := createTestStorage(t)

	err := store.Delete(context.Background(), "records/never-stored.png")

	assert.NoError(t, err)
}
