package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey = "claims"
	TokenKey  = "token"
)

const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
)

// Token is minimal interface for a verified token that can expose claims
type Token interface {
	Claims(v interface{}) error
}

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (Token, error)
}

// Revoker reports whether a token has been logged out.
type Revoker interface {
	IsRevoked(ctx context.Context, raw string) (bool, error)
}

// Chain tries each verifier in order and returns the first success.
type Chain []Verifier

func (ch Chain) Verify(ctx context.Context, raw string) (Token, error) {
	err := errors.New("no verifier configured")
	for _, v := range ch {
		var tok Token
		if tok, err = v.Verify(ctx, raw); err == nil {
			return tok, nil
		}
	}
	return nil, err
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware returns a Gin middleware that verifies Bearer tokens using
// the provided verifier. A missing token is rejected with 401, an invalid,
// expired or revoked one with 403. rev may be nil.
func AuthMiddleware(ver Verifier, rev Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortAuth(c, apperr.NewUnauthorized(msgTokenRequired))
			return
		}

		verified, err := ver.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debugf("auth: token rejected: %v", err)
			abortAuth(c, apperr.NewForbidden(msgTokenInvalid))
			return
		}

		if rev != nil {
			revoked, err := rev.IsRevoked(c.Request.Context(), token)
			if err != nil {
				logger.Errorf("auth: revocation check failed: %v", err)
			}
			if revoked || err != nil {
				abortAuth(c, apperr.NewForbidden(msgTokenInvalid))
				return
			}
		}

		var claims map[string]interface{}
		if err := verified.Claims(&claims); err != nil {
			abortAuth(c, apperr.NewForbidden(msgTokenInvalid))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// abortAuth ends the request with the status and message apperr assigns to err.
func abortAuth(c *gin.Context, err *apperr.AuthError) {
	c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"error": apperr.PublicMessage(err)})
}
