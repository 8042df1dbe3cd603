package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDHeader                  = "X-Request-ID"
	RequestIDContextKey   contextKey = "request_id"
	requestCompletedEvent            = "http_request"
)

// RequestLoggerMiddleware tags each request with an ID and logs its outcome.
type RequestLoggerMiddleware struct {
	logger *slog.Logger
}

// Handle reuses a valid incoming X-Request-ID or generates a new one, echoes it on the response and
// stores it in the request context.
func (m *RequestLoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
		start := time.Now()

		next.ServeHTTP(recorder, r.WithContext(ctx))

		m.logger.InfoContext(
			ctx,
			requestCompletedEvent,
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

// GetRequestIDFromContext returns the request ID set by RequestLoggerMiddleware.
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDContextKey).(string)
	return requestID
}

// NewRequestLoggerMiddleware returns a Middleware that logs every request with logger.
func NewRequestLoggerMiddleware(logger *slog.Logger) Middleware {
	return &RequestLoggerMiddleware{logger: logger}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
