package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HexHarvest_Go/internal/clock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"

	tests := []struct {
		name       string
		apiKey     string
		provided   string
		path       string
		wantStatus int
	}{
		{"valid key", apiKey, apiKey, "/api/v1/harvesters", http.StatusOK},
		{"wrong key", apiKey, "wrong-key", "/api/v1/harvesters", http.StatusUnauthorized},
		{"missing key", apiKey, "", "/api/v1/harvesters", http.StatusUnauthorized},
		{"unconfigured key rejects everything", "", "", "/api/v1/harvesters", http.StatusUnauthorized},
		{"public healthz", apiKey, "", "/healthz", http.StatusOK},
		{"public readyz", apiKey, "", "/readyz", http.StatusOK},
		{"public metrics", apiKey, "", "/metrics", http.StatusOK},
		{"public version", apiKey, "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			h := AuthMiddleware(tt.apiKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.provided != "" {
				req.Header.Set(HeaderAPIKey, tt.provided)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := AuthMiddleware("secret", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/harvesters", nil)
		req.RemoteAddr = "10.1.1.1:5555"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	clk := clock.NewSimulated(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	detector := newDetectorWithClock(clk)
	h := SecurityLoggingMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/harvesters", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RequestRateLimit; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other IPs are unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/harvesters", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The window resets
	clk.Advance(DetectorWindow + time.Second)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct peer", "203.0.113.7:4000", "", nil, "203.0.113.7"},
		{"untrusted peer ignores forwarded", "203.0.113.7:4000", "1.2.3.4", nil, "203.0.113.7"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:4000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		var maxErr *http.MaxBytesError
		if assert.ErrorAs(t, err, &maxErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is longer than eight bytes"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
