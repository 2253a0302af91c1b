package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peecock/content-admin/backend/go-services/internal/auth"
	"github.com/peecock/content-admin/backend/go-services/internal/content/repository"
	"github.com/peecock/content-admin/backend/go-services/internal/content/service"
	"github.com/peecock/content-admin/backend/go-services/internal/media"
	"github.com/peecock/content-admin/backend/go-services/internal/site"
	"github.com/peecock/content-admin/backend/go-services/pkg/middleware"
)

const (
	testUser     = "admin"
	testPassword = "s3nha-forte"
	testSecret   = "test-secret"
)

func init() { gin.SetMode(gin.TestMode) }

type testEnv struct {
	router    *gin.Engine
	repo      *repository.MemoryRepo
	svc       service.Service
	issuer    *auth.Issuer
	redis     *mr.Miniredis
	uploadDir string
}

type envOption func(*Deps)

func withLoginLimit(burst int) envOption {
	return func(d *Deps) { d.LoginLimit = middleware.RateLimitMiddleware(0.0001, burst) }
}

func withMaxUpload(n int64) envOption {
	return func(d *Deps) {
		store, _ := media.NewLocalStore(d.UploadDir, "/uploads")
		d.Uploader = media.NewUploader(store, n)
	}
}

func withChecks(checks map[string]Check) envOption {
	return func(d *Deps) { d.Checks = checks }
}

// withExtraVerifier accepts tokens from v after the local issuer, the way a
// Keycloak verifier is chained in production.
func withExtraVerifier(v middleware.Verifier) envOption {
	return func(d *Deps) { d.Verifier = middleware.Chain{d.Issuer, v} }
}

func newEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	ctx := context.Background()

	repo := repository.NewMemoryRepo()
	svc := service.New(repo)
	require.NoError(t, svc.Init(ctx))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	srv, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dir := t.TempDir()
	store, err := media.NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	page, err := site.New()
	require.NoError(t, err)

	issuer := auth.NewIssuer(testSecret, 24*time.Hour)
	d := Deps{
		Content:     svc,
		Provider:    auth.NewStaticAdmin(testUser, string(hash), "admin"),
		Issuer:      issuer,
		Revocations: auth.NewRevocations(rdb),
		DefaultRole: "admin",
		Uploader:    media.NewUploader(store, 50<<20),
		UploadDir:   dir,
		Page:        page,
		Checks: map[string]Check{
			"content": func(ctx context.Context) error { _, err := svc.GetAll(ctx); return err },
		},
	}
	for _, o := range opts {
		o(&d)
	}
	return &testEnv{router: NewRouter(d), repo: repo, svc: svc, issuer: issuer, redis: srv, uploadDir: dir}
}

func (e *testEnv) do(method, path string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(method, path, token, body string) *httptest.ResponseRecorder {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	return e.do(method, path, r, h)
}

// login returns a token for the configured admin.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.doJSON(http.MethodPost, "/api/auth/login", "", `{"username":"`+testUser+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// multipartBody builds a single-file upload request body.
func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func (e *testEnv) upload(t *testing.T, token, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartBody(t, filename, contentType, data)
	h := http.Header{}
	h.Set("Content-Type", ct)
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return e.do(http.MethodPost, "/api/upload", body, h)
}
