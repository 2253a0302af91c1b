// Package auth implements the admin identity, HS256 token issuing and
// token revocation.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the authenticated principal carried in tokens.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Provider checks a username/password pair.
type Provider interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
}

// StaticAdmin is a Provider with a single configured account.
type StaticAdmin struct {
	username string
	hash     []byte
	role     string
}

// dummyHash is compared against when the username does not match so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-the-password"), bcrypt.MinCost)

// NewStaticAdmin returns a provider for one account. An empty passwordHash
// disables login.
func NewStaticAdmin(username, passwordHash, role string) *StaticAdmin {
	if role == "" {
		role = "admin"
	}
	return &StaticAdmin{username: username, hash: []byte(passwordHash), role: role}
}

func (s *StaticAdmin) Authenticate(_ context.Context, username, password string) (Identity, error) {
	if len(s.hash) == 0 {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Identity{}, ErrInvalidCredentials
	}
	if username != s.username {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{Username: s.username, Role: s.role}, nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// IdentityFromClaims extracts the identity from verified token claims. Tokens
// issued here carry username and role; OIDC tokens carry preferred_username
// and get defaultRole.
func IdentityFromClaims(claims map[string]interface{}, defaultRole string) Identity {
	str := func(k string) string {
		if v, ok := claims[k].(string); ok {
			return v
		}
		return ""
	}
	id := Identity{Username: str("username"), Role: str("role")}
	if id.Username == "" {
		id.Username = str("preferred_username")
	}
	if id.Username == "" {
		id.Username = str("sub")
	}
	if id.Role == "" {
		id.Role = defaultRole
	}
	return id
}
