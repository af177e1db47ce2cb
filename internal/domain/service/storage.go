package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrPictureNotFound is returned when no picture exists under the requested key.
var ErrPictureNotFound = errors.New("picture not found")

// PictureStore abstracts where rental pictures live. The infrastructure layer
// backs it with a blob bucket; the usecases only see opaque keys and public URLs.
type PictureStore interface {
	// Save writes the picture under the given key and returns the public URL
	// callers can use to fetch it back.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Open returns a reader for a previously stored picture.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
