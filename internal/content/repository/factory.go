package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peecock/content-admin/backend/go-services/internal/config"
	"github.com/peecock/content-admin/backend/go-services/internal/database"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// connectAttempts bounds how long startup waits for a database container.
const connectAttempts = 5

// Open builds the repository selected by cfg.Content.Store. The returned
// close func releases any database connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Repository, func(), error) {
	noop := func() {}
	switch cfg.Content.Store {
	case config.StoreMemory:
		logger.Warnf("content store: memory (content is lost on restart)")
		return NewMemoryRepo(), noop, nil

	case config.StoreMongo:
		client, err := database.Retry(ctx, "MongoDB", connectAttempts, time.Second, func(ctx context.Context) (*mongo.Client, error) {
			return database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		})
		if err != nil {
			return nil, noop, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		logger.Infof("content store: mongo %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		return NewMongoRepo(col), func() { _ = client.Disconnect(context.Background()) }, nil

	case config.StorePostgres:
		pool, err := database.Retry(ctx, "PostgreSQL", connectAttempts, time.Second, func(ctx context.Context) (*pgxpool.Pool, error) {
			return database.ConnectPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres.Timeout)
		})
		if err != nil {
			return nil, noop, err
		}
		repo := NewPostgresRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		logger.Infof("content store: postgres")
		return repo, pool.Close, nil

	case config.StoreFile, "":
		logger.Infof("content store: file %s", cfg.Content.File)
		return NewFileRepo(cfg.Content.File), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown content store %q", cfg.Content.Store)
	}
}
