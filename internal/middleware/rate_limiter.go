package middleware

import (
	"net/http"
	"sync"
	"time"

	"orionpos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ── Sliding-window rate limiter ──────────────────────────────────────────────
// In-memory per-IP counters. Good enough for a single-node POS backend; the
// purge goroutine keeps the maps from accumulating one-off IPs forever.

type windowEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type limiter struct {
	entries map[string]*windowEntry
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
}

var activeLimiters []*limiter
var activeLimitersMu sync.Mutex

func newLimiter(limit int, window time.Duration, message string) *limiter {
	l := &limiter{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
	activeLimitersMu.Lock()
	activeLimiters = append(activeLimiters, l)
	activeLimitersMu.Unlock()
	return l
}

func (l *limiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, exists := l.entries[ip]
		if !exists {
			entry = &windowEntry{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "too many login attempts, retry in a minute").middleware()
}

// RateLimiter returns a general-purpose per-IP limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "too many requests, slow down").middleware()
}

// ── Purge goroutine ──────────────────────────────────────────────────────────

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		activeLimitersMu.Lock()
		limiters := append([]*limiter(nil), activeLimiters...)
		activeLimitersMu.Unlock()

		for _, l := range limiters {
			l.mu.Lock()
			for ip, entry := range l.entries {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(l.entries, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			l.mu.Unlock()
		}

		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}
