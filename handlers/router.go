package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/auth"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
	"github.com/peecock/content-admin/backend/go-services/internal/media"
	"github.com/peecock/content-admin/backend/go-services/internal/site"
	"github.com/peecock/content-admin/backend/go-services/pkg/middleware"
)

// Deps are the services the HTTP surface is built from.
type Deps struct {
	Content     service.Service
	Provider    auth.Provider
	Issuer      *auth.Issuer
	Revocations *auth.Revocations
	// Verifier checks bearer tokens. Defaults to Issuer.
	Verifier    middleware.Verifier
	DefaultRole string

	Uploader *media.Uploader
	// UploadDir is served statically at UploadPath when media is stored locally.
	UploadDir  string
	UploadPath string

	Page           *site.Renderer
	LoginLimit     gin.HandlerFunc
	Checks         map[string]Check
	AllowedOrigins []string
	Metrics        http.Handler
}

// NewRouter wires every route onto a new gin engine.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS(d.AllowedOrigins))

	ver := d.Verifier
	if ver == nil {
		ver = d.Issuer
	}
	var rev middleware.Revoker
	if d.Revocations.Enabled() {
		rev = d.Revocations
	}
	requireAuth := middleware.AuthMiddleware(ver, rev)

	api := r.Group("/api")
	NewHealthHandler(d.Checks).Register(api)
	NewAuthHandler(d.Provider, d.Issuer, d.Revocations, d.DefaultRole).Register(api, requireAuth, d.LoginLimit)
	NewContentHandler(d.Content).Register(api, requireAuth)
	NewUploadHandler(d.Uploader).Register(api, requireAuth)
	RegisterSchema(api)

	if d.UploadDir != "" {
		path := d.UploadPath
		if path == "" {
			path = "/uploads"
		}
		r.Static(path, d.UploadDir)
	}
	if d.Page != nil {
		RegisterSite(r, d.Content, d.Page)
	}
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}
	RegisterSwagger(r)
	return r
}
