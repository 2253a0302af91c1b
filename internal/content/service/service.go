package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/content"
	"github.com/peecock/content-admin/backend/go-services/internal/content/repository"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// Client-facing storage failure messages.
const (
	MsgReadFailed  = "failed to read content"
	MsgSaveFailed  = "failed to save content"
	MsgNotFound    = "Section not found"
	msgInvalidBody = "invalid request body"
)

// Service defines the content operations used by the handler layer.
type Service interface {
	// Init seeds the store with the default document if it is empty.
	Init(ctx context.Context) error
	GetAll(ctx context.Context) (*content.Document, error)
	GetSection(ctx context.Context, name string) (any, error)
	UpdateSection(ctx context.Context, name string, raw []byte) (any, error)
	ValidateSection(ctx context.Context, name string, raw []byte) ([]apperr.FieldError, error)
	ReplaceAll(ctx context.Context, raw []byte) (*content.Document, error)
}

// Option configures a Service.
type Option func(*contentService)

// WithClock overrides the time source used for lastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *contentService) { s.now = now }
}

// WithVersion sets the version stamped on the seed document.
func WithVersion(v string) Option {
	return func(s *contentService) { s.version = v }
}

// New returns a Service backed by repo. Writes are serialized so that
// concurrent updates of different sections never overwrite each other.
func New(repo repository.Repository, opts ...Option) Service {
	s := &contentService{repo: repo, now: time.Now, version: "1.0.0"}
	for _, o := range opts {
		o(s)
	}
	return s
}

type contentService struct {
	repo    repository.Repository
	now     func() time.Time
	version string

	// mu guards the load-modify-save cycle of every write.
	mu sync.Mutex
}

// stamp returns the current time at millisecond precision, the finest that
// every backend stores.
func (s *contentService) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *contentService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.repo.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return apperr.NewStorage(MsgReadFailed, err)
	}
	doc := content.Default(s.version, s.stamp())
	if err := content.Validate(doc); err != nil {
		return fmt.Errorf("seed document: %w", err)
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return apperr.NewStorage(MsgSaveFailed, err)
	}
	logger.Infof("seeded content store with default document (version %s)", s.version)
	return nil
}

func (s *contentService) load(ctx context.Context) (*content.Document, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperr.NewStorage(MsgReadFailed, err)
	}
	return doc, nil
}

func (s *contentService) save(ctx context.Context, doc *content.Document) error {
	if err := s.repo.Save(ctx, doc); err != nil {
		return apperr.NewStorage(MsgSaveFailed, err)
	}
	return nil
}

func (s *contentService) GetAll(ctx context.Context) (*content.Document, error) {
	return s.load(ctx)
}

func (s *contentService) GetSection(ctx context.Context, name string) (any, error) {
	sec, ok := content.LookupSection(name)
	if !ok {
		return nil, apperr.NewNotFound(MsgNotFound)
	}
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sec.Get(doc), nil
}

func (s *contentService) UpdateSection(ctx context.Context, name string, raw []byte) (any, error) {
	sec, ok := content.LookupSection(name)
	if !ok {
		return nil, apperr.NewNotFound(MsgNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := sec.Apply(doc, raw); err != nil {
		return nil, apperr.NewValidationWrap(msgInvalidBody, err)
	}
	if err := content.Validate(doc); err != nil {
		return nil, err
	}
	doc.LastUpdated = s.stamp()
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	return sec.Get(doc), nil
}

func (s *contentService) ValidateSection(ctx context.Context, name string, raw []byte) ([]apperr.FieldError, error) {
	sec, ok := content.LookupSection(name)
	if !ok {
		return nil, apperr.NewNotFound(MsgNotFound)
	}
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := sec.Apply(doc, raw); err != nil {
		return nil, apperr.NewValidationWrap(msgInvalidBody, err)
	}
	return content.ValidateSection(doc, name), nil
}

func (s *contentService) ReplaceAll(ctx context.Context, raw []byte) (*content.Document, error) {
	var doc content.Document
	if err := content.DecodeStrict(raw, &doc); err != nil {
		return nil, apperr.NewValidationWrap(msgInvalidBody, err)
	}
	doc.Normalize()
	if err := content.Validate(&doc); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Version == "" {
		current, err := s.repo.Load(ctx)
		switch {
		case err == nil:
			doc.Version = current.Version
		case errors.Is(err, repository.ErrNotFound):
			doc.Version = s.version
		default:
			return nil, apperr.NewStorage(MsgReadFailed, err)
		}
	}
	doc.LastUpdated = s.stamp()
	if err := s.save(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
