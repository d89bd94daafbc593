package memory

import (
	"context"
	"sync"
	"time"
)

// TokenDenylist is an in-process revocation store used when Redis is not
// configured (memory storage driver). Entries expire lazily on lookup.
type TokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry
}

func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{revoked: make(map[string]time.Time)}
}

func (d *TokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiry, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *TokenDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}
