// Package pagecache stores fetched answer pages so repeated lookups of the same
// day do not hit the network. Values are returned byte-for-byte as stored.
package pagecache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is a minimal byte store with TTLs. Implementations are safe for concurrent use.
type Cache interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl. A non-positive ttl means no expiry where supported.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Config selects and sizes a backend.
type Config struct {
	// Backend is one of "none", "memory", "bigcache" or "redis".
	Backend   string
	TTL       time.Duration
	RedisAddr string
	// MaxCostBytes bounds the in-memory backends; 0 uses a 64 MiB default.
	MaxCostBytes int64
}

const defaultMaxCost = 64 << 20

// New builds the configured backend.
func New(cfg Config) (Cache, error) {
	maxCost := cfg.MaxCostBytes
	if maxCost <= 0 {
		maxCost = defaultMaxCost
	}

	switch cfg.Backend {
	case "", "none":
		return Nop{}, nil
	case "memory":
		return NewRistretto(maxCost)
	case "bigcache":
		return NewBigCache(cfg.TTL, int(maxCost>>20))
	case "redis":
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		return NewRedis(client, true)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (use none, memory, bigcache or redis)", cfg.Backend)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Close() error                                             { return nil }
