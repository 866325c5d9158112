package handlers

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

type contextKey int

const tenantIDKey contextKey = iota

func tenantIDFromContext(ctx context.Context) string {
	tenantID, _ := ctx.Value(tenantIDKey).(string)
	return tenantID
}

// Authenticate resolves the tenant id from the session cookie and stores it
// in the request context. Requests without a valid cookie pass through with
// an empty tenant id; handlers that need one reply 401.
func (con *Controller) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		tenantID, err := con.session.GetTenantIDFromCookie(req)
		if err != nil {
			next.ServeHTTP(res, req)
			return
		}
		ctx := context.WithValue(req.Context(), tenantIDKey, tenantID)
		next.ServeHTTP(res, req.WithContext(ctx))
	})
}

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// LoggingMiddleware logs method, URI, status, response size and duration of
// every request.
func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   responseData,
		}
		next.ServeHTTP(&lw, req)

		con.sugar.Infoln(
			"uri", req.RequestURI,
			"method", req.Method,
			"status", responseData.status,
			"size", responseData.size,
			"duration", time.Since(start),
		)
	})
}

// gzipWriter wraps http.ResponseWriter to compress the response body.
type gzipWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

// Write writes compressed data to the HTTP response.
func (w gzipWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// GzipEncodeMiddleware compresses responses when the client accepts gzip.
func (con *Controller) GzipEncodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(res, req)
			return
		}

		gz := gzip.NewWriter(res)
		defer func() {
			if err := gz.Close(); err != nil {
				con.sugar.Errorf("gzip close: %v", err)
			}
		}()

		res.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipWriter{ResponseWriter: res, Writer: gz}, req)
	})
}

// GzipDecodeMiddleware transparently decompresses gzip request bodies.
func (con *Controller) GzipDecodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Content-Encoding") == "gzip" {
			gz, err := gzip.NewReader(req.Body)
			if err != nil {
				http.Error(res, "Bad Request", http.StatusBadRequest)
				return
			}
			req.Body = gz
		}
		next.ServeHTTP(res, req)
	})
}
