package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
	"github.com/peecock/content-admin/backend/go-services/pkg/metrics"
)

func TestHealth(t *testing.T) {
	env := newEnv(t)
	w := env.doJSON(http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "OK", resp["status"])
	ts, err := time.Parse(time.RFC3339, resp["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestReady(t *testing.T) {
	env := newEnv(t)
	w := env.doJSON(http.MethodGet, "/api/ready", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":true`)

	env = newEnv(t, withChecks(map[string]Check{
		"content": func(context.Context) error { return nil },
		"redis":   func(context.Context) error { return errors.New("connection refused") },
	}))
	w = env.doJSON(http.MethodGet, "/api/ready", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}](t, w)
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, map[string]bool{"content": true, "redis": false}, resp.Deps)
}

func TestSchemaEndpoints(t *testing.T) {
	env := newEnv(t)

	w := env.doJSON(http.MethodGet, "/api/schema", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]content.SectionSchema](t, w)
	require.Len(t, all, len(content.SectionNames()))

	w = env.doJSON(http.MethodGet, "/api/schema/metadata", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	meta := decode[content.SectionSchema](t, w)
	var title content.FieldSchema
	for _, f := range meta.Fields {
		if f.Field == "title" {
			title = f
		}
	}
	assert.True(t, title.Required)
	assert.Equal(t, 60, title.MaxLength)

	w = env.doJSON(http.MethodGet, "/api/schema/company", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), strings.ReplaceAll(content.CNPJPattern, `\`, `\\`))

	w = env.doJSON(http.MethodGet, "/api/schema/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicPage(t *testing.T) {
	env := newEnv(t)
	token := env.login(t)

	w := env.doJSON(http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="header-buy"`)

	body := `[{"id":"hero","text":"Compre","url":"https://loja.example.com","location":"hero-section"}]`
	require.Equal(t, http.StatusOK, env.doJSON(http.MethodPut, "/api/content/buyButtons", token, body).Code)

	w = env.doJSON(http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	header := page[strings.Index(page, "<header"):strings.Index(page, "</header>")]
	assert.NotContains(t, header, "buy-button")
	assert.Contains(t, page, `id="hero"`)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	env := newEnv(t, func(d *Deps) { d.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{}) })
	token := env.login(t)

	before := testutil.ToFloat64(metrics.ContentWrites.WithLabelValues("faq", metrics.ResultOK))
	require.Equal(t, http.StatusOK, env.doJSON(http.MethodPut, "/api/content/faq", token, `[]`).Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ContentWrites.WithLabelValues("faq", metrics.ResultOK)))

	w := env.doJSON(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "peecock_content_writes_total")
	assert.Contains(t, w.Body.String(), "peecock_logins_total")
}
