// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
	limiterMaxVisitors   = 10000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than limiterIdleTTL are dropped on the next sweep. At most
// maxVisitors buckets are kept; a new IP beyond that evicts the least
// recently seen one.
type ipRateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	maxVisitors int
	lastSweep   time.Time
	now         func() time.Time
}

// newIPRateLimiter returns nil when limit is not positive, which disables
// limiting.
func newIPRateLimiter(limit float64, burst int) *ipRateLimiter {
	if limit <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		visitors:    make(map[string]*visitor),
		limit:       rate.Limit(limit),
		burst:       burst,
		maxVisitors: limiterMaxVisitors,
		now:         time.Now,
	}
}

func (l *ipRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepInterval {
		l.sweep(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= l.maxVisitors {
			l.sweep(now)
		}
		if len(l.visitors) >= l.maxVisitors {
			l.evictOldest()
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *ipRateLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

func (l *ipRateLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    *visitor
	)
	for key, v := range l.visitors {
		if oldest == nil || v.lastSeen.Before(oldest.lastSeen) {
			oldestKey, oldest = key, v
		}
	}
	if oldest != nil {
		delete(l.visitors, oldestKey)
	}
}

// withRateLimit answers 429 when the client IP has exhausted its bucket.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authLimiter != nil && !h.authLimiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the host part of RemoteAddr. Forwarding headers only reach it
// through middleware.RealIP, which is installed when the server is configured
// to trust them.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
