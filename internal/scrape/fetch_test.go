package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetools/bee/internal/pagecache"
)

func TestFetcherFreshSkipsSharedCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	var body atomic.Value
	body.Store("ABI3")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body.Load().(string)))
	}))
	defer srv.Close()
	url := srv.URL + "/latest.encoded.txt"

	// each fetcher stands for a separate run sharing one redis
	newFetcher := func() *Fetcher {
		cache, err := pagecache.NewRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), true)
		require.NoError(t, err)
		t.Cleanup(func() { _ = cache.Close() })
		return &Fetcher{Client: srv.Client(), Cache: cache, CacheTTL: time.Hour}
	}

	got, err := newFetcher().Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "ABI3", got)

	body.Store("ACBq8qI4")

	stale, err := newFetcher().Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "ABI3", stale)

	fresh, err := newFetcher().Fresh().Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "ACBq8qI4", fresh)
}

func TestFetcherFreshLeavesOriginalCached(t *testing.T) {
	cache, err := pagecache.NewRistretto(1 << 20)
	require.NoError(t, err)
	defer cache.Close()

	f := &Fetcher{Cache: cache}
	fresh := f.Fresh()
	assert.Nil(t, fresh.Cache)
	assert.NotNil(t, f.Cache)
}
