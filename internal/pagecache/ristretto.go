package pagecache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Ristretto is an in-process cache bounded by total value size.
type Ristretto struct {
	c *ristretto.Cache
}

var _ Cache = (*Ristretto)(nil)

func NewRistretto(maxCost int64) (*Ristretto, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{c: c}, nil
}

func (r *Ristretto) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := r.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

func (r *Ristretto) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	r.c.SetWithTTL(key, value, int64(len(value)), ttl)
	// admission is asynchronous; make the value visible to the next Get
	r.c.Wait()
	return nil
}

func (r *Ristretto) Close() error {
	r.c.Close()
	return nil
}
