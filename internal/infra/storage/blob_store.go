package storage

import (
	"context"
	"io"
	"strings"

	"chalet/config"
	"chalet/internal/domain/lifecycle"
	"chalet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Local filesystem bucket driver, selected via the file:// bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
)

// Params defines the dependencies for the blob picture store.
type Params struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
}

// blobPictureStore keeps rental pictures in a portable blob bucket and
// serves back absolute URLs built from the configured public base URL.
type blobPictureStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobPictureStore opens the configured bucket and registers its close on shutdown.
func NewBlobPictureStore(params Params) (service.PictureStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open picture bucket")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobPictureStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Storage.BaseURL, "/"),
	}, nil
}

// Save writes the picture bytes under the given key and returns its public URL.
func (store *blobPictureStore) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := store.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Close commits whatever was written, so cancel first to abort the upload.
		cancel()
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write picture")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize picture write")
	}

	return store.baseURL + "/api/rentals/images/" + key, nil
}

// Open streams the picture bytes stored under the given key.
func (store *blobPictureStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	exists, err := store.bucket.Exists(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check picture existence")
	}
	if !exists {
		return nil, service.ErrPictureNotFound
	}

	r, err := store.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open picture reader")
	}

	return r, nil
}
