// Package repository persists the content document.
package repository

import (
	"context"
	"errors"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

// ErrNotFound is returned by Load when no document has been stored yet.
var ErrNotFound = errors.New("content document not found")

// Repository stores exactly one content document. Save replaces it whole.
type Repository interface {
	Load(ctx context.Context) (*content.Document, error)
	Save(ctx context.Context, doc *content.Document) error
}

// Pinger is implemented by repositories backed by a remote database.
type Pinger interface {
	Ping(ctx context.Context) error
}
