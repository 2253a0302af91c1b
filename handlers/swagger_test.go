package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

func TestSwaggerEndpoints(t *testing.T) {
	g := gin.New()
	RegisterSwagger(g)

	req := httptest.NewRequest("GET", "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	req2 := httptest.NewRequest("GET", "/swagger/doc.json", nil)
	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)

	var doc struct {
		OpenAPI    string                    `json:"openapi"`
		Paths      map[string]json.RawMessage `json:"paths"`
		Components struct {
			Parameters struct {
				Section struct {
					Description string `json:"description"`
					Schema      struct {
						Enum []string `json:"enum"`
					} `json:"schema"`
				} `json:"section"`
			} `json:"parameters"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &doc))
	require.Equal(t, "3.0.0", doc.OpenAPI)
	for _, p := range []string{"/api/auth/login", "/api/auth/verify", "/api/content", "/api/content/{section}", "/api/upload", "/api/schema"} {
		require.Contains(t, doc.Paths, p)
	}
	require.Equal(t, content.SectionNames(), doc.Components.Parameters.Section.Schema.Enum)
	require.Contains(t, doc.Components.Parameters.Section.Description, "lastUpdated and version are not sections")
}
