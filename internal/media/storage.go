package media

import (
	"context"
	"io"
)

// Store persists uploaded objects and returns their public URL.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}
