package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/peecock/content-admin/backend/go-services/internal/database"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Integration tests run against real databases when TEST_MONGODB_URI or
// TEST_POSTGRES_DSN is set and are skipped otherwise.

func TestMongoRepo_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 5*time.Second)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	col := client.Database("peecock_test").Collection("content_" + time.Now().Format("150405.000000"))
	defer col.Drop(ctx)

	r := NewMongoRepo(col)
	require.NoError(t, r.Ping(ctx))
	exercise(t, r)

	n, err := col.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestPostgresRepo_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := database.ConnectPostgres(ctx, dsn, 5*time.Second)
	require.NoError(t, err)
	defer pool.Close()

	r := NewPostgresRepo(pool)
	require.NoError(t, r.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `DELETE FROM content_documents WHERE id = $1`, documentID)
	require.NoError(t, err)

	require.NoError(t, r.Ping(ctx))
	exercise(t, r)
}
