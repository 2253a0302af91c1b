package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// maxJSONBody caps content payloads. The whole document is a few KB.
const maxJSONBody = 1 << 20

// writeError maps err onto the JSON error body {"error": ..., "details": [...]}.
func writeError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	body := gin.H{"error": apperr.PublicMessage(err)}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		body["details"] = ve.Fields
	}
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, body)
}

// readBody returns the raw request body, rejecting bodies over maxJSONBody.
func readBody(c *gin.Context) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.NewValidation("request body too large")
		}
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}
	return raw, nil
}
