package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "auth:token:" // auth:token:{sha256(id token)}

// TokenCache remembers verified ID tokens so each request does not hit the identity provider.
// Keys are token digests; raw tokens are never stored.
type TokenCache interface {
	Get(ctx context.Context, idToken string) (Identity, bool, error)
	Set(ctx context.Context, idToken string, id Identity, ttl time.Duration) error
	Delete(ctx context.Context, idToken string) error
}

func tokenKey(idToken string) string {
	sum := sha256.Sum256([]byte(idToken))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}

// CacheTTL bounds ttl by the token's own expiry.
func CacheTTL(ttl time.Duration, expires, now time.Time) time.Duration {
	if expires.IsZero() {
		return ttl
	}
	if left := expires.Sub(now); left < ttl {
		return left
	}
	return ttl
}

// MemoryTokenCache keeps verified tokens in process.
type MemoryTokenCache struct {
	cache *cache.Cache
}

func NewMemoryTokenCache(defaultTTL time.Duration) *MemoryTokenCache {
	return &MemoryTokenCache{cache: cache.New(defaultTTL, 10*time.Minute)}
}

func (m *MemoryTokenCache) Get(_ context.Context, idToken string) (Identity, bool, error) {
	v, found := m.cache.Get(tokenKey(idToken))
	if !found {
		return Identity{}, false, nil
	}
	id, ok := v.(Identity)
	return id, ok, nil
}

func (m *MemoryTokenCache) Set(_ context.Context, idToken string, id Identity, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.cache.Set(tokenKey(idToken), id, ttl)
	return nil
}

func (m *MemoryTokenCache) Delete(_ context.Context, idToken string) error {
	m.cache.Delete(tokenKey(idToken))
	return nil
}

// RedisTokenCache shares verified tokens between API instances.
type RedisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

func (r *RedisTokenCache) Get(ctx context.Context, idToken string) (Identity, bool, error) {
	data, err := r.client.Get(ctx, tokenKey(idToken)).Result()
	if err == redis.Nil {
		return Identity{}, false, nil
	}
	if err != nil {
		return Identity{}, false, fmt.Errorf("failed to get cached token: %w", err)
	}

	var id Identity
	if err := json.Unmarshal([]byte(data), &id); err != nil {
		return Identity{}, false, fmt.Errorf("failed to unmarshal cached identity: %w", err)
	}
	return id, true, nil
}

func (r *RedisTokenCache) Set(ctx context.Context, idToken string, id Identity, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	if err := r.client.Set(ctx, tokenKey(idToken), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	return nil
}

func (r *RedisTokenCache) Delete(ctx context.Context, idToken string) error {
	if err := r.client.Del(ctx, tokenKey(idToken)).Err(); err != nil {
		return fmt.Errorf("failed to evict token: %w", err)
	}
	return nil
}
