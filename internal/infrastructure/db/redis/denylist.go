package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist stores revoked token ids in Redis. Keys carry a TTL equal to
// the token's remaining lifetime, so the denylist never outgrows the set of
// tokens that could still be presented.
// Key format: revoked:<token_id>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// IsRevoked reports whether the token id has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

// Revoke records the token id until its natural expiry.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.client.Set(ctx, d.key(tokenID), "1", ttl).Err()
}

func (d *TokenDenylist) key(tokenID string) string {
	return "revoked:" + tokenID
}
