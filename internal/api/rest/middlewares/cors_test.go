package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const allowedOrigin = "https://neptunetea-shop.netlify.app"

func TestCORSMiddleware_Handle(t *testing.T) {
	cases := map[string]struct {
		method              string
		origin              string
		requestMethod       string
		expectedStatusCode  int
		expectedAllowOrigin string
		expectNextCalled    bool
	}{
		"Should Allow Configured Origin": {
			method:              http.MethodGet,
			origin:              allowedOrigin,
			expectedStatusCode:  http.StatusOK,
			expectedAllowOrigin: allowedOrigin,
			expectNextCalled:    true,
		},
		"Should Not Add Headers For Other Origin": {
			method:             http.MethodGet,
			origin:             "https://evil.example.com",
			expectedStatusCode: http.StatusOK,
			expectNextCalled:   true,
		},
		"Should Answer Preflight For Configured Origin": {
			method:              http.MethodOptions,
			origin:              allowedOrigin,
			requestMethod:       http.MethodPost,
			expectedStatusCode:  http.StatusNoContent,
			expectedAllowOrigin: allowedOrigin,
		},
		"Should Reject Preflight For Other Origin": {
			method:             http.MethodOptions,
			origin:             "https://evil.example.com",
			requestMethod:      http.MethodPost,
			expectedStatusCode: http.StatusNoContent,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tc.method, "/api/orders", http.NoBody)
			req.Header.Set("Origin", tc.origin)
			if tc.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tc.requestMethod)
			}

			w := httptest.NewRecorder()
			NewCORSMiddleware(allowedOrigin).Handle(next).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.Equal(t, tc.expectedAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectNextCalled, nextCalled)
		})
	}
}
