package revalidate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTTLAndPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "/api/v1/tenants?page=1", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, "/api/v1/tenants/1", []byte("b"), time.Minute))
	require.NoError(t, store.Set(ctx, "/api/v1/properties", []byte("c"), time.Minute))
	require.NoError(t, store.Set(ctx, "/expired", []byte("d"), -time.Second))

	_, ok, _ := store.Get(ctx, "/expired")
	assert.False(t, ok)
	assert.Equal(t, 3, store.Len(), "expired entry is dropped on read")

	require.NoError(t, store.DeletePrefix(ctx, "/api/v1/tenants"))

	_, ok, _ = store.Get(ctx, "/api/v1/tenants?page=1")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "/api/v1/tenants/1")
	assert.False(t, ok)
	value, ok, _ := store.Get(ctx, "/api/v1/properties")
	assert.True(t, ok)
	assert.Equal(t, []byte("c"), value)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, key := range []string{"/api/v1/tenants?page=1", "/api/v1/tenants?page=2", "/api/v1/tenants?page=3"} {
		require.NoError(t, store.Set(ctx, key, []byte("stale"), -time.Second))
	}
	require.NoError(t, store.Set(ctx, "/api/v1/properties", []byte("fresh"), time.Minute))

	assert.Equal(t, 3, store.DeleteExpired())
	assert.Equal(t, 1, store.Len())
	assert.Zero(t, store.DeleteExpired())

	stop := make(chan struct{})
	defer close(stop)
	require.NoError(t, store.Set(ctx, "/api/v1/leases?page=9", []byte("stale"), -time.Second))
	store.StartCleanup(10*time.Millisecond, stop)

	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 10*time.Millisecond)
}

func TestCachePageServesUntilRevalidated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := NewCache(NewMemoryStore(), time.Minute, util.NewLogger())

	hits := 0
	r := gin.New()
	r.Use(cache.CachePage)
	r.GET("/api/v1/tenants", func(ctx *gin.Context) {
		hits++
		ctx.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.POST("/api/v1/tenants", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{})
	})

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil))
		return w
	}

	first := get()
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	second := get()
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/tenants", nil))
	assert.Empty(t, w.Header().Get("X-Cache"))

	require.NoError(t, cache.Revalidate(context.Background(), "/api/v1/tenants"))
	third := get()
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, hits)
}

func TestCachePageSkipsFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()
	cache := NewCache(store, time.Minute, util.NewLogger())

	r := gin.New()
	r.Use(cache.CachePage)
	r.GET("/broken", func(ctx *gin.Context) {
		ctx.JSON(http.StatusInternalServerError, gin.H{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestScanPatternEscapesGlob(t *testing.T) {
	assert.Equal(t, `propdesk:page:/api/v1/tenants\?page=1*`, scanPattern("/api/v1/tenants?page=1"))
	assert.Equal(t, `propdesk:page:/a\[b\]\*c*`, scanPattern("/a[b]*c"))
}
