package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestStaticAdmin(t *testing.T) {
	p := NewStaticAdmin("admin", mustHash(t, "S3cret!pass"), "")
	ctx := context.Background()

	id, err := p.Authenticate(ctx, "admin", "S3cret!pass")
	require.NoError(t, err)
	assert.Equal(t, Identity{Username: "admin", Role: "admin"}, id)

	_, err = p.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Authenticate(ctx, "root", "S3cret!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaticAdmin_NoHashDisablesLogin(t *testing.T) {
	p := NewStaticAdmin("admin", "", "admin")
	_, err := p.Authenticate(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("PeecockAdmin2025!")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("PeecockAdmin2025!")))

	_, err = HashPassword("")
	require.Error(t, err)
}

func TestIssuer_IssueAndParse(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	iss := NewIssuer("secret-key", 24*time.Hour).WithClock(func() time.Time { return now })

	raw, exp, err := iss.Issue(Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), exp)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestIssuer_RejectsExpiredToken(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	iss := NewIssuer("secret-key", time.Hour).WithClock(func() time.Time { return now })
	raw, _, err := iss.Issue(Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)

	later := iss.WithClock(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = later.Parse(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestIssuer_RejectsWrongSecretAndAlgorithm(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)
	other := NewIssuer("other-key", time.Hour)
	raw, _, err := other.Issue(Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)
	_, err = iss.Parse(raw)
	require.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = iss.Parse(none)
	require.Error(t, err)

	_, err = iss.Parse("not.a.jwt")
	require.Error(t, err)
}

func TestIssuer_VerifyExposesClaims(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)
	raw, _, err := iss.Issue(Identity{Username: "admin", Role: "editor"})
	require.NoError(t, err)

	tok, err := iss.Verify(context.Background(), raw)
	require.NoError(t, err)
	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	assert.Equal(t, Identity{Username: "admin", Role: "editor"}, IdentityFromClaims(claims, "admin"))
	assert.Contains(t, claims, "exp")
	assert.Contains(t, claims, "iat")
}

func TestIdentityFromClaims_OIDC(t *testing.T) {
	id := IdentityFromClaims(map[string]interface{}{"preferred_username": "maria", "sub": "abc"}, "admin")
	assert.Equal(t, Identity{Username: "maria", Role: "admin"}, id)

	id = IdentityFromClaims(map[string]interface{}{"sub": "abc"}, "viewer")
	assert.Equal(t, Identity{Username: "abc", Role: "viewer"}, id)
}

func TestRevocations(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	defer client.Close()

	r := NewRevocations(client)
	ctx := context.Background()
	require.True(t, r.Enabled())

	revoked, err := r.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "tok", time.Now().Add(time.Minute)))
	revoked, err = r.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	// raw tokens are not stored as keys
	assert.False(t, m.Exists(revokedKeyPrefix+"tok"))

	// entry expires with the token
	m.FastForward(2 * time.Minute)
	revoked, err = r.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)

	// already expired tokens are not stored
	require.NoError(t, r.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	assert.Empty(t, m.Keys())
}

func TestRevocations_DisabledWithoutRedis(t *testing.T) {
	r := NewRevocations(nil)
	assert.False(t, r.Enabled())
	require.NoError(t, r.Revoke(context.Background(), "tok", time.Now().Add(time.Hour)))
	revoked, err := r.IsRevoked(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, revoked)

	var nilRev *Revocations
	assert.False(t, nilRev.Enabled())
}
