package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/peecock/content-admin/backend/go-services/handlers"
	"github.com/peecock/content-admin/backend/go-services/internal/auth"
	"github.com/peecock/content-admin/backend/go-services/internal/config"
	"github.com/peecock/content-admin/backend/go-services/internal/content/repository"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
	"github.com/peecock/content-admin/backend/go-services/internal/database"
	"github.com/peecock/content-admin/backend/go-services/internal/media"
	"github.com/peecock/content-admin/backend/go-services/internal/oidc"
	"github.com/peecock/content-admin/backend/go-services/internal/site"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
	"github.com/peecock/content-admin/backend/go-services/pkg/metrics"
	"github.com/peecock/content-admin/backend/go-services/pkg/middleware"
)

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store=%s uploads=%s keycloak=%v redis=%v",
		cfg.Content.Store, cfg.Upload.Backend, cfg.Keycloak.URL != "", cfg.Redis.Host != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
	logger.Infof("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	checks := map[string]handlers.Check{}

	// Redis is optional: it backs token revocation and the shared login limiter.
	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf("failed to connect to Redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Infof("using Redis %s", rdb.Options().Addr)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	repo, closeRepo, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer closeRepo()
	if p, ok := repo.(repository.Pinger); ok {
		checks["database"] = p.Ping
	}

	svc := service.New(repo, service.WithVersion(cfg.Content.Version))
	if err := svc.Init(ctx); err != nil {
		return fmt.Errorf("initialize content: %w", err)
	}
	checks["content"] = func(ctx context.Context) error {
		_, err := svc.GetAll(ctx)
		return err
	}

	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	verifiers := middleware.Chain{issuer}
	if cfg.Keycloak.URL != "" && cfg.Keycloak.Realm != "" && cfg.Keycloak.ClientID != "" {
		ver, err := oidc.NewVerifier(ctx, oidc.KeycloakIssuer(cfg.Keycloak.URL, cfg.Keycloak.Realm), cfg.Keycloak.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifiers = append(verifiers, ver)
			logger.Infof("accepting Keycloak tokens from realm %s", cfg.Keycloak.Realm)
		}
	}
	uploadDir, store, err := openMediaStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open media store: %w", err)
	}
	if p, ok := store.(interface{ Ping(context.Context) error }); ok {
		checks["media"] = p.Ping
	}

	page, err := site.New()
	if err != nil {
		return err
	}

	var loginLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			loginLimit = middleware.RedisRateLimitMiddleware(rdb, "login", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			loginLimit = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := handlers.NewRouter(handlers.Deps{
		Content:        svc,
		Provider:       auth.NewStaticAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, cfg.Auth.AdminRole),
		Issuer:         issuer,
		Revocations:    auth.NewRevocations(rdb),
		Verifier:       verifiers,
		DefaultRole:    cfg.Auth.AdminRole,
		Uploader:       media.NewUploader(store, cfg.Upload.MaxBytes),
		UploadDir:      uploadDir,
		UploadPath:     cfg.Upload.PublicPath,
		Page:           page,
		LoginLimit:     loginLimit,
		Checks:         checks,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("starting content service on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openMediaStore returns the configured upload backend and, for the local
// backend, the directory to serve statically.
func openMediaStore(ctx context.Context, cfg *config.Config) (string, media.Store, error) {
	switch cfg.Upload.Backend {
	case config.UploadMinIO:
		s, err := media.NewMinIOStore(ctx, cfg.MinIO)
		if err != nil {
			return "", nil, err
		}
		logger.Infof("uploads: minio bucket %s", cfg.MinIO.Bucket)
		return "", s, nil
	default:
		s, err := media.NewLocalStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
		if err != nil {
			return "", nil, err
		}
		logger.Infof("uploads: local dir %s", cfg.Upload.Dir)
		return s.Dir(), s, nil
	}
}
