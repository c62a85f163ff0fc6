package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/util"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Clients not seen for this long lose their bucket
const staleClientAfter = 15 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client key (usually the IP).
// The bucket refills RequestsPerTimeFrame tokens per TimeFrame and bursts up to the same amount.
type ClientRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	enabled bool
	logger  *zap.SugaredLogger
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *ClientRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	burst := max(cfg.RequestsPerTimeFrame, 1)
	frame := cfg.TimeFrame
	if frame <= 0 {
		frame = time.Minute
	}

	return &ClientRateLimiter{
		clients: map[string]*client{},
		limit:   rate.Every(frame / time.Duration(burst)),
		burst:   burst,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether key may proceed, and if not, how long until it may retry.
func (rl *ClientRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	reservation := c.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		rl.logger.Debugf("Rate limit exceeded for %s, retry after %s", key, delay)
		return false, delay
	}

	return true, 0
}

// Drops buckets of clients that went quiet
func (rl *ClientRateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-staleClientAfter)
	removed := 0
	for key, c := range rl.clients {
		if c.lastSeen.Before(threshold) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

// Runs Cleanup every interval until stop is closed
func (rl *ClientRateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					rl.logger.Debugf("Rate limiter removed %d stale clients", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
