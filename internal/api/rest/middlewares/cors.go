package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware allows browser calls from a single origin. Requests from any other origin get no
// CORS headers, so browsers reject them before application code sees the response.
type CORSMiddleware struct {
	cors *cors.Cors
}

// Handle answers preflight requests and decorates simple requests with CORS headers.
func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}

// NewCORSMiddleware returns a Middleware allowing any method and header from allowedOrigin.
func NewCORSMiddleware(allowedOrigin string) Middleware {
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: []string{allowedOrigin},
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodHead,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Location", RequestIDHeader},
		}),
	}
}
