package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "blacklist:access:"

// Revocations is a Redis-backed list of logged-out tokens. Entries expire
// with the token. A nil client disables revocation: Revoke is a no-op and
// IsRevoked always reports false.
type Revocations struct {
	client *redis.Client
	now    func() time.Time
}

func NewRevocations(client *redis.Client) *Revocations {
	return &Revocations{client: client, now: time.Now}
}

// Enabled reports whether revocations are persisted.
func (r *Revocations) Enabled() bool { return r != nil && r.client != nil }

func revokedKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke blocks raw until expiresAt. Tokens already expired are ignored.
func (r *Revocations) Revoke(ctx context.Context, raw string, expiresAt time.Time) error {
	if !r.Enabled() {
		return nil
	}
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKey(raw), "1", ttl).Err()
}

// IsRevoked implements middleware.Revoker.
func (r *Revocations) IsRevoked(ctx context.Context, raw string) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedKey(raw)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
