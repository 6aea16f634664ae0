// Copyright (c) 2026 Oshidora. All rights reserved.

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/constants"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/middleware"
)

type appConfig struct{ development bool }

func (c appConfig) IsDevelopment() bool { return c.development }

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

/*
TestRealIP tests client IP extraction behind proxies.
*/
func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"real_ip", map[string]string{constants.HeaderXRealIP: "10.0.0.1"}, "192.0.2.1:1234", "10.0.0.1"},
		{"forwarded_first", map[string]string{constants.HeaderXForwardedFor: "10.0.0.2, 10.0.0.3"}, "192.0.2.1:1234", "10.0.0.2"},
		{"remote_addr", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"remote_without_port", nil, "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.remote
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}
			assert.Equal(t, tt.want, middleware.RealIP(request))
		})
	}
}

/*
TestRequestID checks that an ID is minted when the caller sends none.
*/
func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(okHandler)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get(constants.HeaderXRequestID), 36)
}

/*
TestRateLimitWith checks that the burst is enforced per client.
*/
func TestRateLimitWith(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimitWith(ctx, rate.Limit(0.001), 2)(okHandler)

	statuses := make([]int, 0, 3)
	for range 3 {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "192.0.2.9:5000"
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

/*
TestCORS tests origin handling in both environments.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		origin      string
		wantAllowed bool
	}{
		{"development_any", true, "http://anything.test", true},
		{"production_listed", false, "https://admin.oshidora.test", true},
		{"production_unlisted", false, "https://evil.test", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(appConfig{tt.development}, "https://admin.oshidora.test, https://ops.oshidora.test")(okHandler)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodOptions, "/", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			handler.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestPanicRecovery checks that a panicking handler yields a 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}
