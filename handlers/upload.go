package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/media"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
	"github.com/peecock/content-admin/backend/go-services/pkg/metrics"
)

// multipartOverhead is the allowance for boundaries and part headers on top
// of the file size limit.
const multipartOverhead = 1 << 20

// UploadHandler accepts media files for the content document.
type UploadHandler struct {
	uploader *media.Uploader
}

func NewUploadHandler(u *media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: u}
}

func (h *UploadHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/upload", requireAuth, h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploader.MaxBytes()+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			err = apperr.NewUpload(h.uploader.TooLargeMessage())
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			err = apperr.NewUpload("No file uploaded")
		default:
			err = apperr.NewUpload("Invalid upload")
		}
		metrics.Uploads.WithLabelValues(metrics.ResultRejected).Inc()
		writeError(c, err)
		return
	}

	res, err := h.uploader.Save(c.Request.Context(), fh)
	if err != nil {
		result := metrics.ResultRejected
		if apperr.HTTPStatus(err) >= http.StatusInternalServerError {
			result = metrics.ResultError
		}
		metrics.Uploads.WithLabelValues(result).Inc()
		writeError(c, err)
		return
	}
	metrics.Uploads.WithLabelValues(metrics.ResultOK).Inc()
	logger.Infof("uploaded %s as %s (%d bytes)", res.OriginalName, res.Filename, res.Size)
	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"filename":     res.Filename,
		"originalName": res.OriginalName,
		"url":          res.URL,
		"size":         res.Size,
		"mimetype":     res.MimeType,
	})
}
