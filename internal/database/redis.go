package database

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// In-process fallback when Redis is not configured. Entries expire lazily.
var (
	revokedMu sync.Mutex
	revoked   = map[string]time.Time{}
)

// InitRedis connects the session-revocation store. Redis is optional: when
// REDIS_ADDR is unset (or unreachable) revocation falls back to an
// in-process map, which is enough for a single instance.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, using in-process session revocation")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Falling back to in-process session revocation.", err)
		Redis = nil
		return
	}
	log.Println("Connected to Redis successfully")
}

// RevokeSession marks a session token id as revoked until it would have
// expired anyway.
func RevokeSession(jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if Redis != nil {
		return Redis.Set(Ctx, "session:revoked:"+jti, "1", ttl).Err()
	}

	revokedMu.Lock()
	defer revokedMu.Unlock()
	revoked[jti] = time.Now().Add(ttl)
	for id, until := range revoked {
		if time.Now().After(until) {
			delete(revoked, id)
		}
	}
	return nil
}

// IsSessionRevoked reports whether a session token id has been logged out.
func IsSessionRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	if Redis != nil {
		exists, err := Redis.Exists(Ctx, "session:revoked:"+jti).Result()
		if err != nil {
			// Fail open: a Redis outage must not lock every user out
			return false
		}
		return exists > 0
	}

	revokedMu.Lock()
	defer revokedMu.Unlock()
	until, ok := revoked[jti]
	return ok && time.Now().Before(until)
}
