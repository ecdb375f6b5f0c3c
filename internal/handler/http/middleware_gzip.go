package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/cinetrack/internal/utils"
)

var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for clients
// that send "Accept-Encoding: gzip". Preflight requests are never
// compressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				utils.WriteError(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if r.Method == http.MethodOptions || !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriterPool.Get().(*gzip.Writer)}
		gw.gzipWriter.Reset(w)
		defer gw.release()

		next.ServeHTTP(gw, r)
	})
}

// inflate wraps body in a pooled gzip reader. Closing the result returns the
// reader to the pool.
func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &pooledGzipBody{Reader: zr, source: body}, nil
}

type pooledGzipBody struct {
	*gzip.Reader
	source io.ReadCloser
	closed bool
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}

// gzipResponseWriter compresses the body and marks the response as gzip on
// the first header write.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.Header()
	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.gzipWriter.Write(data)
}

// release flushes the gzip trailer when anything was written and returns
// the writer to the pool.
func (w *gzipResponseWriter) release() {
	if w.wroteHeader {
		_ = w.gzipWriter.Close()
	}
	w.gzipWriter.Reset(io.Discard)
	gzipWriterPool.Put(w.gzipWriter)
}
