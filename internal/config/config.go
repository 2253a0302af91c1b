package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
	"github.com/spf13/viper"
)

// Content store backends.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Upload backends.
const (
	UploadLocal = "local"
	UploadMinIO = "minio"
)

const devJWTSecret = "peecock-admin-dev-secret-change-me"

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Content   ContentConfig
	Upload    UploadConfig
	Auth      AuthConfig
	JWT       JWTConfig
	Redis     RedisConfig
	MongoDB   MongoDBConfig
	Postgres  PostgresConfig
	MinIO     MinIOConfig
	Keycloak  KeycloakConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type ContentConfig struct {
	Store   string
	File    string
	Version string
}

type UploadConfig struct {
	Backend    string
	Dir        string
	PublicPath string
	MaxBytes   int64
}

// AuthConfig describes the single admin identity. PasswordHash is a bcrypt hash.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	AdminRole         string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type PostgresConfig struct {
	DSN     string
	Timeout time.Duration
}

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

type KeycloakConfig struct {
	URL      string
	Realm    string
	ClientID string
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("CONTENT_STORE", StoreFile)
	viper.SetDefault("CONTENT_FILE", "data/content.json")
	viper.SetDefault("CONTENT_VERSION", "1.0.0")
	viper.SetDefault("UPLOAD_BACKEND", UploadLocal)
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_PUBLIC_PATH", "/uploads")
	viper.SetDefault("UPLOAD_MAX_BYTES", 50<<20)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_ROLE", "admin")
	viper.SetDefault("JWT_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("MONGODB_DATABASE", "peecock")
	viper.SetDefault("MONGODB_COLLECTION", "content")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("POSTGRES_TIMEOUT", 10)
	viper.SetDefault("MINIO_BUCKET", "peecock-media")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 0.2)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			Host:            viper.GetString("SERVER_HOST"),
			Environment:     viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    5 * time.Minute,
			ShutdownTimeout: time.Duration(viper.GetInt("SERVER_SHUTDOWN_TIMEOUT")) * time.Second,
			AllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Content: ContentConfig{
			Store:   strings.ToLower(viper.GetString("CONTENT_STORE")),
			File:    viper.GetString("CONTENT_FILE"),
			Version: viper.GetString("CONTENT_VERSION"),
		},
		Upload: UploadConfig{
			Backend:    strings.ToLower(viper.GetString("UPLOAD_BACKEND")),
			Dir:        viper.GetString("UPLOAD_DIR"),
			PublicPath: viper.GetString("UPLOAD_PUBLIC_PATH"),
			MaxBytes:   viper.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Auth: AuthConfig{
			AdminUsername:     viper.GetString("ADMIN_USERNAME"),
			AdminPasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
			AdminRole:         viper.GetString("ADMIN_ROLE"),
		},
		JWT: JWTConfig{
			Secret:   viper.GetString("JWT_SECRET"),
			TokenTTL: time.Duration(viper.GetInt("JWT_TOKEN_TTL_HOURS")) * time.Hour,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		MongoDB: MongoDBConfig{
			URI:        viper.GetString("MONGODB_URI"),
			Database:   viper.GetString("MONGODB_DATABASE"),
			Collection: viper.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Postgres: PostgresConfig{
			DSN:     viper.GetString("POSTGRES_DSN"),
			Timeout: time.Duration(viper.GetInt("POSTGRES_TIMEOUT")) * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			PublicURL: viper.GetString("MINIO_PUBLIC_URL"),
		},
		Keycloak: KeycloakConfig{
			URL:      viper.GetString("KEYCLOAK_URL"),
			Realm:    viper.GetString("KEYCLOAK_REALM"),
			ClientID: viper.GetString("KEYCLOAK_CLIENT_ID"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production safeguards.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func (c *Config) validate() error {
	switch c.Content.Store {
	case StoreFile, StoreMemory:
	case StoreMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("CONTENT_STORE=mongo requires MONGODB_URI")
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("CONTENT_STORE=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("invalid CONTENT_STORE %q, expected one of %v", c.Content.Store, []string{StoreFile, StoreMemory, StoreMongo, StorePostgres})
	}

	switch c.Upload.Backend {
	case UploadLocal:
	case UploadMinIO:
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("UPLOAD_BACKEND=minio requires MINIO_ENDPOINT")
		}
	default:
		return fmt.Errorf("invalid UPLOAD_BACKEND %q, expected %q or %q", c.Upload.Backend, UploadLocal, UploadMinIO)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.Upload.MaxBytes)
	}
	if c.JWT.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL_HOURS must be at least 1")
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		logger.Warn("JWT_SECRET is not set; using an insecure development secret")
		c.JWT.Secret = devJWTSecret
	}
	if c.Auth.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is not set; admin login is disabled (generate one with `contentctl hash-password`)")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
