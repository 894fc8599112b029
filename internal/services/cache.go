package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return client, nil
}

// CachedVerifier fronts a TokenVerifier with a short-TTL Redis cache of
// verified claims, keyed by token digest. A nil client disables the cache
// and every call goes straight to the inner verifier. Only successful
// verifications are cached; rejections are re-checked every time.
type CachedVerifier struct {
	inner TokenVerifier
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedVerifier(inner TokenVerifier, rdb *redis.Client, ttl time.Duration) *CachedVerifier {
	return &CachedVerifier{inner: inner, rdb: rdb, ttl: ttl}
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if v.rdb == nil {
		return v.inner.Verify(ctx, token)
	}

	key := claimsKey(token)
	if data, err := v.rdb.Get(ctx, key).Result(); err == nil {
		var claims Claims
		if err := json.Unmarshal([]byte(data), &claims); err == nil {
			return &claims, nil
		}
	}

	claims, err := v.inner.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(claims); err == nil {
		v.rdb.Set(ctx, key, data, v.ttl)
	}

	return claims, nil
}

func claimsKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:claims:" + hex.EncodeToString(sum[:])
}
