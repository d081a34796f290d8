package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"modelmatrix/internal/cache"
)

const (
	identityKeyPrefix = "identity:"
	// identityTTL bounds how long a revoked token can keep skipping full
	// verification.
	identityTTL = 5 * time.Minute
)

// IdentityCache keeps verified identities in Redis keyed by token digest so
// hot tokens skip signature verification. It inherits the cache wrapper's
// fail-safe behavior: an unreachable Redis is a permanent miss.
type IdentityCache struct {
	cache *cache.Client
}

// NewIdentityCache creates an identity cache over the shared redis client.
func NewIdentityCache(c *cache.Client) *IdentityCache {
	return &IdentityCache{cache: c}
}

// Get returns the cached identity for a token, if present.
func (s *IdentityCache) Get(ctx context.Context, token string) (Identity, bool) {
	var ident Identity
	if !s.cache.GetJSON(ctx, identityKey(token), &ident) {
		return Identity{}, false
	}
	if ident.Email == "" {
		return Identity{}, false
	}
	return ident, true
}

// Put stores a verified identity for a token.
func (s *IdentityCache) Put(ctx context.Context, token string, ident Identity) {
	s.cache.SetJSON(ctx, identityKey(token), ident, identityTTL)
}

// identityKey hashes the raw token so credentials never land in redis keys.
func identityKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return identityKeyPrefix + hex.EncodeToString(sum[:])
}
