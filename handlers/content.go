package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/content"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
	"github.com/peecock/content-admin/backend/go-services/pkg/metrics"
)

// ContentHandler serves the content document and its sections.
type ContentHandler struct {
	svc service.Service
}

func NewContentHandler(svc service.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Register routes under /content. Writes go through requireAuth.
func (h *ContentHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	g := rg.Group("/content")
	g.GET("", h.GetAll)
	g.GET("/:section", h.GetSection)
	g.PUT("", requireAuth, h.ReplaceAll)
	g.PUT("/:section", requireAuth, h.UpdateSection)
	g.POST("/:section/validate", requireAuth, h.ValidateSection)
}

func (h *ContentHandler) GetAll(c *gin.Context) {
	doc, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) GetSection(c *gin.Context) {
	data, err := h.svc.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *ContentHandler) UpdateSection(c *gin.Context) {
	name := c.Param("section")
	if _, ok := content.LookupSection(name); !ok {
		writeError(c, apperr.NewNotFound(service.MsgNotFound))
		return
	}
	raw, err := readBody(c)
	if err != nil {
		metrics.ContentWrites.WithLabelValues(name, metrics.ResultInvalid).Inc()
		writeError(c, err)
		return
	}
	data, err := h.svc.UpdateSection(c.Request.Context(), name, raw)
	if err != nil {
		metrics.ContentWrites.WithLabelValues(name, resultOf(err)).Inc()
		writeError(c, err)
		return
	}
	metrics.ContentWrites.WithLabelValues(name, metrics.ResultOK).Inc()
	logger.Infof("content section %q updated", name)
	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"section": name,
		"data":    data,
	})
}

func (h *ContentHandler) ReplaceAll(c *gin.Context) {
	const label = "all"
	raw, err := readBody(c)
	if err != nil {
		metrics.ContentWrites.WithLabelValues(label, metrics.ResultInvalid).Inc()
		writeError(c, err)
		return
	}
	doc, err := h.svc.ReplaceAll(c.Request.Context(), raw)
	if err != nil {
		metrics.ContentWrites.WithLabelValues(label, resultOf(err)).Inc()
		writeError(c, err)
		return
	}
	metrics.ContentWrites.WithLabelValues(label, metrics.ResultOK).Inc()
	logger.Infof("content document replaced (version %s)", doc.Version)
	c.JSON(http.StatusOK, gin.H{
		"message": "All content updated successfully",
		"data":    doc,
	})
}

// ValidateSection dry-runs a section payload against the current document.
func (h *ContentHandler) ValidateSection(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	fields, err := h.svc.ValidateSection(c.Request.Context(), c.Param("section"), raw)
	if err != nil {
		writeError(c, err)
		return
	}
	if fields == nil {
		fields = []apperr.FieldError{}
	}
	c.JSON(http.StatusOK, gin.H{"valid": len(fields) == 0, "errors": fields})
}

func resultOf(err error) string {
	if apperr.HTTPStatus(err) < http.StatusInternalServerError {
		return metrics.ResultInvalid
	}
	return metrics.ResultError
}
