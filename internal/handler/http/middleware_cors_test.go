// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/stretchr/testify/assert"
)

func corsTable() apiconfig.PathTable {
	return apiconfig.PathTable{
		{Pattern: "^/api/", Record: apiconfig.Record{
			CorsAllowOriginRegex: apiconfig.String(`^https://app\.example\.com$`),
			CorsAllowHeaders:     apiconfig.HeaderList{"Authorization", "Content-Type"},
			CorsMaxAge:           apiconfig.Int(600),
		}},
		{Pattern: "^/open/", Record: apiconfig.Record{
			CorsAllowOriginRegex: apiconfig.String(`.*`),
		}},
	}
}

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		origin         string
		requestMethod  string
		wantNextCalled bool
		wantStatus     int
		wantHeaders    map[string]string
		wantAbsent     []string
	}{
		{
			name:           "no origin passes through",
			method:         http.MethodGet,
			path:           "/api/widgets",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantAbsent:     []string{"Access-Control-Allow-Origin", "Vary"},
		},
		{
			name:           "unresolved path passes through",
			method:         http.MethodGet,
			path:           "/healthz",
			origin:         "https://app.example.com",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantAbsent:     []string{"Access-Control-Allow-Origin"},
		},
		{
			name:           "rejected origin passes through untouched",
			method:         http.MethodGet,
			path:           "/api/widgets",
			origin:         "https://evil.example.com",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantAbsent:     []string{"Access-Control-Allow-Origin", "Vary"},
		},
		{
			name:           "allowed simple request",
			method:         http.MethodGet,
			path:           "/api/widgets",
			origin:         "https://app.example.com",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin": "https://app.example.com",
				"Vary":                        "Origin",
			},
			wantAbsent: []string{"Access-Control-Allow-Methods", "Access-Control-Max-Age"},
		},
		{
			name:           "options without request method is not a preflight",
			method:         http.MethodOptions,
			path:           "/api/widgets",
			origin:         "https://app.example.com",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin": "https://app.example.com",
			},
			wantAbsent: []string{"Access-Control-Allow-Methods"},
		},
		{
			name:           "allowed preflight is answered",
			method:         http.MethodOptions,
			path:           "/api/widgets",
			origin:         "https://app.example.com",
			requestMethod:  http.MethodPost,
			wantNextCalled: false,
			wantStatus:     http.StatusNoContent,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "https://app.example.com",
				"Access-Control-Allow-Methods": corsAllowMethods,
				"Access-Control-Allow-Headers": "Authorization, Content-Type",
				"Access-Control-Max-Age":       "600",
			},
		},
		{
			name:           "preflight without headers or max age configured",
			method:         http.MethodOptions,
			path:           "/open/thing",
			origin:         "http://localhost:3000",
			requestMethod:  http.MethodGet,
			wantNextCalled: false,
			wantStatus:     http.StatusNoContent,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin": "http://localhost:3000",
			},
			wantAbsent: []string{"Access-Control-Allow-Headers", "Access-Control-Max-Age"},
		},
		{
			name:           "preflight from rejected origin reaches the router",
			method:         http.MethodOptions,
			path:           "/api/widgets",
			origin:         "https://evil.example.com",
			requestMethod:  http.MethodPost,
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
			wantAbsent:     []string{"Access-Control-Allow-Methods"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, jsonDefaults(), corsTable())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			rr := httptest.NewRecorder()

			h.withCORS(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			for k, v := range tt.wantHeaders {
				assert.Equal(t, v, rr.Header().Get(k), k)
			}
			for _, k := range tt.wantAbsent {
				assert.Empty(t, rr.Header().Get(k), k)
			}
		})
	}
}

func TestWithCORS_IgnoresRouteAnnotations(t *testing.T) {
	h, _ := newTestHandler(t, jsonDefaults(), nil)

	mw, err := h.annotate(apiconfig.Record{CorsAllowOriginRegex: apiconfig.String(".*")})
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	req := httptest.NewRequest(http.MethodOptions, "/api/widgets", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()

	h.withCORS(mw(next)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
