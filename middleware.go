package patternsapi

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ClientLimiter applies a token-bucket limit per client key. Buckets are
// created on first sight and shared across both server variants.
type ClientLimiter struct {
	mu      sync.Mutex
	rps     float64
	burst   int
	clients map[string]*rate.Limiter
}

func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		rps:     rps,
		burst:   burst,
		clients: map[string]*rate.Limiter{},
	}
}

func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.clients[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.clients[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// clientKey identifies the caller: first X-Forwarded-For entry when
// present, otherwise the remote address host.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// route wraps a net/http handler with rate limiting, request logging and
// metrics. The pattern is the metrics path label so IDs never explode
// label cardinality.
func (a *App) route(pattern string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.Limiter != nil && !a.Limiter.Allow(clientKey(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		observeRequest(frameworkStd, r.Method, pattern, rec.status, time.Since(start))
		log.WithFields(log.Fields{
			"framework": frameworkStd,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"duration":  time.Since(start).String(),
		}).Debug("request")
	}
}

const (
	frameworkStd = "net/http"
	frameworkGin = "gin"
)

func statusLabel(code int) string { return strconv.Itoa(code) }
