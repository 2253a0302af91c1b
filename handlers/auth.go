package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/internal/auth"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
	"github.com/peecock/content-admin/backend/go-services/pkg/metrics"
	"github.com/peecock/content-admin/backend/go-services/pkg/middleware"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgInvalidCredentials  = "Invalid credentials"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves login, verify and logout.
type AuthHandler struct {
	provider    auth.Provider
	issuer      *auth.Issuer
	revocations *auth.Revocations
	defaultRole string
}

func NewAuthHandler(p auth.Provider, issuer *auth.Issuer, rev *auth.Revocations, defaultRole string) *AuthHandler {
	return &AuthHandler{provider: p, issuer: issuer, revocations: rev, defaultRole: defaultRole}
}

// Register routes under /auth. loginLimit may be nil.
func (h *AuthHandler) Register(rg *gin.RouterGroup, requireAuth, loginLimit gin.HandlerFunc) {
	a := rg.Group("/auth")
	login := []gin.HandlerFunc{h.Login}
	if loginLimit != nil {
		login = append([]gin.HandlerFunc{loginLimit}, login...)
	}
	a.POST("/login", login...)
	a.GET("/verify", requireAuth, h.Verify)
	a.POST("/logout", requireAuth, h.Logout)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultInvalid).Inc()
		writeError(c, apperr.NewValidation(msgCredentialsRequired))
		return
	}

	id, err := h.provider.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.Logins.WithLabelValues(metrics.ResultRejected).Inc()
			logger.Warnf("login rejected for %q from %s", req.Username, c.ClientIP())
			writeError(c, apperr.NewUnauthorized(msgInvalidCredentials))
			return
		}
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		writeError(c, err)
		return
	}

	token, _, err := h.issuer.Issue(id)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		writeError(c, fmt.Errorf("issue token: %w", err))
		return
	}
	metrics.Logins.WithLabelValues(metrics.ResultOK).Inc()
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"user":      id,
		"expiresIn": humanTTL(h.issuer),
	})
}

// Verify echoes the identity of the presented token.
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": h.identity(c)})
}

// Logout revokes the presented token until it would have expired. The expiry
// comes from the claims the auth middleware verified, so tokens from any
// configured verifier are revoked. Without a revocation store the token
// stays valid and the call still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw := c.GetString(middleware.TokenKey)
	if h.revocations.Enabled() {
		claims, _ := c.Get(middleware.ClaimsKey)
		m, _ := claims.(map[string]interface{})
		exp, ok := expiryOf(m)
		if !ok {
			exp = time.Now().Add(h.issuer.TTL())
		}
		if err := h.revocations.Revoke(c.Request.Context(), raw, exp); err != nil {
			writeError(c, fmt.Errorf("revoke token: %w", err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// expiryOf reads the exp claim of verified token claims.
func expiryOf(claims map[string]interface{}) (time.Time, bool) {
	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(n, 0), true
	}
	return time.Time{}, false
}

func (h *AuthHandler) identity(c *gin.Context) auth.Identity {
	claims, _ := c.Get(middleware.ClaimsKey)
	m, _ := claims.(map[string]interface{})
	return auth.IdentityFromClaims(m, h.defaultRole)
}

// humanTTL renders the token lifetime the way clients expect it, e.g. "24h".
func humanTTL(i *auth.Issuer) string {
	ttl := i.TTL()
	if ttl%time.Hour == 0 {
		return strconv.Itoa(int(ttl/time.Hour)) + "h"
	}
	return ttl.String()
}
