package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/content"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
)

// RegisterSchema exposes the field constraints the server validates with, so
// the admin client can mirror them.
func RegisterSchema(rg *gin.RouterGroup) {
	rg.GET("/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, content.Schema())
	})
	rg.GET("/schema/:section", func(c *gin.Context) {
		sec, ok := content.LookupSection(c.Param("section"))
		if !ok {
			writeError(c, apperr.NewNotFound(service.MsgNotFound))
			return
		}
		c.JSON(http.StatusOK, sec.Schema())
	})
}
