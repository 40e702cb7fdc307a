package pagecache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"
)

// BigCache uses a single global life window; per-entry TTLs are ignored.
type BigCache struct {
	c *bc.BigCache
}

var _ Cache = (*BigCache)(nil)

func NewBigCache(life time.Duration, hardMaxMB int) (*BigCache, error) {
	if life <= 0 {
		life = 24 * time.Hour
	}
	conf := bc.DefaultConfig(life)
	conf.Verbose = false
	if hardMaxMB > 0 {
		conf.HardMaxCacheSize = hardMaxMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &BigCache{c: c}, nil
}

func (b *BigCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, err := b.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (b *BigCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	return b.c.Set(key, value)
}

func (b *BigCache) Close() error {
	return b.c.Close()
}
