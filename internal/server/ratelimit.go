package server

import (
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// ClientRateLimiter hands out one token bucket per client IP.
// Buckets for the least recently seen clients are evicted once maxClients is reached.
type ClientRateLimiter struct {
	limit   rate.Limit
	burst   int
	buckets *lru.Cache[string, *rate.Limiter]
}

// NewClientRateLimiter creates a limiter allowing perSecond requests with the given burst
func NewClientRateLimiter(perSecond float64, burst, maxClients int) (*ClientRateLimiter, error) {
	buckets, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, err
	}
	return &ClientRateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		buckets: buckets,
	}, nil
}

// Allow consumes one token from the client's bucket
func (l *ClientRateLimiter) Allow(ip string) bool {
	bucket, ok := l.buckets.Get(ip)
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		// Another request may have raced us; keep whichever bucket landed first
		if prev, found, _ := l.buckets.PeekOrAdd(ip, bucket); found {
			bucket = prev
		}
	}
	return bucket.Allow()
}

// RateLimitMiddleware rejects clients that exhaust their bucket with 429.
// A nil limiter disables the check.
func RateLimitMiddleware(limiter *ClientRateLimiter, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(extractIP(r, trustedProxies)) {
				w.Header().Set(HeaderRetryAfter, "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
