package http

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses incoming id", incoming: "my-trace-id", reuse: true},
		{name: "generates uuid"},
		{name: "replaces id with spaces", incoming: "a b\nfake=1"},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxLogger *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
			assert.NotNil(t, ctxLogger)
		})
	}
}

// ── logging / response writer ────────────────────────────────────────────────

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()

	h.withLogging(okHandler("body")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body", rec.Body.String())
}

// ── gzip ─────────────────────────────────────────────────────────────────────

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	payload := strings.Repeat(`{"id":"tt1"}`, 100)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(okHandler(payload)).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestWithGZip_PlainWithoutAcceptEncoding(t *testing.T) {
	rec := httptest.NewRecorder()

	withGZip(okHandler("plain")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(body)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte(`{"rating":4}`))))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, `{"rating":4}`, rec.Body.String(), "request %d", i)
	}
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(okHandler("unreachable")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid gzip data")
}

// ── check method ─────────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", okHandler("items").ServeHTTP)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "items", rec.Body.String())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/items", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
	}
}

// ── CORS ─────────────────────────────────────────────────────────────────────

func TestWithCORS(t *testing.T) {
	h := &Handler{cfg: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}, logger: logger.Nop()}
	handler := h.withCORS(okHandler("ok"))

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/users/watchlist", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("simple request from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "ok", rec.Body.String())
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "ok", rec.Body.String())
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		h := &Handler{cfg: config.Server{AllowedOrigins: []string{"*"}}, logger: logger.Nop()}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://anything.example")
		rec := httptest.NewRecorder()

		h.withCORS(okHandler("ok")).ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

// ── rate limit ───────────────────────────────────────────────────────────────

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(1, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per ip")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refilled")

	now = now.Add(limiterIdleTTL + limiterSweepInterval + time.Second)
	l.Allow("10.0.0.3")
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.NotContains(t, l.visitors, "10.0.0.2")
}

func TestIPRateLimiter_VisitorCap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(1, 1)
	l.maxVisitors = 3
	l.now = func() time.Time { return now }

	for i := 1; i <= 3; i++ {
		now = now.Add(time.Millisecond)
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	now = now.Add(time.Millisecond)
	assert.True(t, l.Allow("10.0.0.4"))

	assert.Len(t, l.visitors, 3)
	assert.NotContains(t, l.visitors, "10.0.0.1", "least recently seen is evicted")
	assert.Contains(t, l.visitors, "10.0.0.4")
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(0, 5))
}

func TestWithRateLimit_AuthRoutes(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2})

	for i := 0; i < 2; i++ {
		rec := serve(router, http.MethodPost, "/users/login", `{`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := serve(router, http.MethodPost, "/users/login", `{`, false)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, try again later", errorMessage(t, rec))

	// health is not limited
	rec = serve(router, http.MethodGet, "/", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func serveLoginFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{`))
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestWithRateLimit_IgnoresForwardedForByDefault(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 1})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, serveLoginFrom(router, "203.0.113.7:4000", fmt.Sprintf("198.51.100.%d", i)))
	}

	assert.Equal(t, []int{
		http.StatusBadRequest,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestWithRateLimit_TrustedProxyHeaders(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 1, TrustProxyHeaders: true})

	// behind a proxy every request shares the proxy address
	assert.Equal(t, http.StatusBadRequest, serveLoginFrom(router, "10.0.0.1:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusBadRequest, serveLoginFrom(router, "10.0.0.1:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, serveLoginFrom(router, "10.0.0.1:4000", "198.51.100.1"))
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusCreated))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusTooManyRequests))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusInternalServerError))
}
