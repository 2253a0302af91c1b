package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

const createContentTable = `
CREATE TABLE IF NOT EXISTS content_documents (
    id         TEXT PRIMARY KEY,
    body       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);`

// PostgresRepo stores the document as a jsonb row keyed by a fixed id.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: pool}
}

// EnsureSchema creates the content table if it does not exist.
func (p *PostgresRepo) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createContentTable); err != nil {
		return fmt.Errorf("create content_documents: %w", err)
	}
	return nil
}

func (p *PostgresRepo) Load(ctx context.Context) (*content.Document, error) {
	var body []byte
	err := p.db.QueryRow(ctx, `SELECT body FROM content_documents WHERE id = $1`, documentID).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select content: %w", err)
	}
	var doc content.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (p *PostgresRepo) Save(ctx context.Context, doc *content.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	cmd := `
        INSERT INTO content_documents (id, body, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at;
    `
	updated := doc.LastUpdated
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	if _, err := p.db.Exec(ctx, cmd, documentID, body, updated); err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}
	return nil
}

func (p *PostgresRepo) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
