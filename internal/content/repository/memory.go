package repository

import (
	"context"
	"sync"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

// MemoryRepo is an in-memory repository used for tests and the "memory"
// content store. Documents are deep-copied on the way in and out.
type MemoryRepo struct {
	mu  sync.RWMutex
	doc *content.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(_ context.Context) (*content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.doc == nil {
		return nil, ErrNotFound
	}
	return m.doc.Clone(), nil
}

func (m *MemoryRepo) Save(_ context.Context, doc *content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc.Clone()
	return nil
}
