package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
	"github.com/peecock/content-admin/backend/go-services/internal/site"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// RegisterSite serves the public landing page at /. The document is read
// on every request so edits show up immediately.
func RegisterSite(r gin.IRoutes, svc service.Service, page *site.Renderer) {
	r.GET("/", func(c *gin.Context) {
		doc, err := svc.GetAll(c.Request.Context())
		if err != nil {
			logger.Errorf("public page: %v", err)
			c.String(http.StatusServiceUnavailable, "Página temporariamente indisponível")
			return
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := page.Render(c.Writer, doc); err != nil {
			logger.Errorf("public page: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
		}
	})
}
