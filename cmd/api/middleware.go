package main

import (
	"expvar"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"
)

// correlationIDHeader is read from requests and echoed on every response
const correlationIDHeader = "X-Correlation-Id"

// Request metrics, published once per process
var (
	totalRequestsReceived           = expvar.NewInt("total_requests_received")
	totalResponsesSent              = expvar.NewInt("total_responses_sent")
	totalProcessingTimeMicroseconds = expvar.NewInt("total_processing_time_μs")
	totalResponsesSentByStatus      = expvar.NewMap("total_responses_sent_by_status")
)

// recoverPanic is middleware that recovers from any panics, logs the error,
// and returns a 500 status error
func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				//Close the connection after responding
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// correlationID tags each request with the caller's X-Correlation-Id or a
// freshly generated one, and sets it on the response before any body is written
func (app *application) correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(correlationIDHeader))
		if id == "" {
			id = strings.ReplaceAll(uuid.NewString(), "-", "")
		}

		w.Header().Set(correlationIDHeader, id)
		next.ServeHTTP(w, app.contextSetCorrelationID(r, id))
	})
}

// metrics counts requests, responses by status and processing time
func (app *application) metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totalRequestsReceived.Add(1)

		m := httpsnoop.CaptureMetrics(next, w, r)

		totalResponsesSent.Add(1)
		totalProcessingTimeMicroseconds.Add(m.Duration.Microseconds())
		totalResponsesSentByStatus.Add(strconv.Itoa(m.Code), 1)
	})
}

// enableCORS lets trusted browser origins read responses. An origin is
// trusted when listed exactly, when its host is a trusted host or one of its
// subdomains, or when it is localhost outside production
func (app *application) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.Header().Add("Vary", "Access-Control-Request-Method")

		origin := r.Header.Get("Origin")
		if origin != "" && app.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			//Answer preflight requests directly
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET, HEAD")
				if h := r.Header.Get("Access-Control-Request-Headers"); h != "" {
					w.Header().Set("Access-Control-Allow-Headers", h)
				}
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// originAllowed applies the trusted origin and host lists to an Origin header
func (app *application) originAllowed(origin string) bool {
	if slices.Contains(app.config.cors.trustedOrigins, origin) {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())

	for _, trusted := range app.config.cors.trustedHosts {
		trusted = strings.ToLower(trusted)
		if host == trusted || strings.HasSuffix(host, "."+trusted) {
			return true
		}
	}

	return host == "localhost" && app.config.env != "production"
}

// clientLimiter keeps one token bucket per client IP. Idle clients are
// swept inline at most once a minute, so no goroutine outlives the router
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
	rps       rate.Limit
	burst     int
}

// client holds limiter and last seen time
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients:   make(map[string]*client),
		lastSweep: time.Now(),
		rps:       rate.Limit(rps),
		burst:     burst,
	}
}

// allow takes a token from the bucket for ip
func (l *clientLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > time.Minute {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > 3*time.Minute {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	c, found := l.clients[ip]
	if !found {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// rateLimit limits requests rate using the application's per-client token
// buckets. It wraps individual routes; the health probe and the SPA routes
// are registered without it
func (app *application) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only carry out the check if rate limiting is enabled.
		if app.config.limiter.enabled && app.limiter != nil {
			if !app.limiter.allow(clientIP(r), time.Now()) {
				app.rateLimitExceededResponse(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers X-Real-Ip / X-Forwarded-For via realip and falls back to
// the host part of RemoteAddr
func clientIP(r *http.Request) string {
	if ip := realip.FromRequest(r); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
