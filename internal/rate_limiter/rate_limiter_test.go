package ratelimiter

import (
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestClientRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Hour,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Buckets are per client
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestClientRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{RequestsPerTimeFrame: 1, TimeFrame: time.Hour}, nil)

	for i := 0; i < 10; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok)
	}
}

func TestClientRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{RequestsPerTimeFrame: 5, TimeFrame: time.Minute, Enabled: true}, nil)

	rl.Allow("fresh")
	rl.Allow("stale")
	rl.clients["stale"].lastSeen = time.Now().Add(-time.Hour)

	assert.Equal(t, 1, rl.Cleanup())
	_, ok := rl.clients["fresh"]
	assert.True(t, ok)
}
