package config

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	t.Setenv("CONTENT_STORE", "file")
	t.Setenv("UPLOAD_BACKEND", "local")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, StoreFile, cfg.Content.Store)
	require.Equal(t, "data/content.json", cfg.Content.File)
	require.Equal(t, int64(50<<20), cfg.Upload.MaxBytes)
	require.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	require.Equal(t, "admin", cfg.Auth.AdminUsername)
	require.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_RejectsUnknownStore(t *testing.T) {
	t.Setenv("CONTENT_STORE", "cassandra")
	t.Setenv("UPLOAD_BACKEND", "local")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid CONTENT_STORE")
}

func TestLoadConfig_MongoRequiresURI(t *testing.T) {
	t.Setenv("CONTENT_STORE", "mongo")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("UPLOAD_BACKEND", "local")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("CONTENT_STORE", "file")
	t.Setenv("UPLOAD_BACKEND", "local")
	t.Setenv("SERVER_ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_DevelopmentFallsBackToDevSecret(t *testing.T) {
	t.Setenv("CONTENT_STORE", "memory")
	t.Setenv("UPLOAD_BACKEND", "local")
	t.Setenv("SERVER_ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, devJWTSecret, cfg.JWT.Secret)
}

func TestLoadConfig_WarnsOnceWithoutAdminHash(t *testing.T) {
	t.Setenv("CONTENT_STORE", "memory")
	t.Setenv("UPLOAD_BACKEND", "local")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	_, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(buf.String(), "ADMIN_PASSWORD_HASH is not set"))
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	require.Nil(t, splitList(""))
}
