// Package revalidate caches GET responses by path and drops them after mutations.
package revalidate

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Revalidator marks cached renderings of the given paths as stale.
type Revalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}

type Cache struct {
	store  Store
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCache(store Store, ttl time.Duration, logger *zap.SugaredLogger) *Cache {
	return &Cache{store: store, ttl: ttl, logger: logger}
}

func (c *Cache) Revalidate(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		c.logger.Debugf("Revalidate path: %s", path)
		if err := c.store.DeletePrefix(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET requests from the store and records successful responses.
// Store failures never fail the request.
func (c *Cache) CachePage(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet {
		ctx.Next()
		return
	}

	key := ctx.Request.URL.RequestURI()
	if cached, ok, err := c.store.Get(ctx.Request.Context(), key); err != nil {
		c.logger.Warnf("Failed to read page cache for %s: %v", key, err)
	} else if ok {
		ctx.Header("X-Cache", "HIT")
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		ctx.Abort()
		return
	}

	recorder := &bodyRecorder{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
	ctx.Writer = recorder
	ctx.Header("X-Cache", "MISS")
	ctx.Next()

	if recorder.Status() != http.StatusOK {
		return
	}
	if err := c.store.Set(ctx.Request.Context(), key, recorder.body.Bytes(), c.ttl); err != nil {
		c.logger.Warnf("Failed to write page cache for %s: %v", key, err)
	}
}

// Noop never caches anything; used when the api runs without a page cache.
type Noop struct{}

func (Noop) Revalidate(context.Context, ...string) error { return nil }
