// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"
)

// corsAllowMethods is sent on every answered preflight.
const corsAllowMethods = "GET, POST, DELETE, OPTIONS"

// withCORS applies the CORS settings of the request path. Route annotations
// are not consulted: preflights never reach a route.
//
// Requests without an Origin, on paths that resolve to nothing, or from
// origins the effective allow-origin pattern rejects pass through untouched.
// Allowed preflights are answered here with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		resolver := h.resolvers.Load()
		rec, ok := resolver.Resolve(r.URL.Path, nil)
		if !ok || !resolver.OriginAllowed(rec, origin) {
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Add("Vary", "Origin")
		header.Set("Access-Control-Allow-Origin", origin)

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if len(rec.CorsAllowHeaders) > 0 {
			header.Set("Access-Control-Allow-Headers", strings.Join(rec.CorsAllowHeaders, ", "))
		}
		if maxAge, ok := rec.MaxAge(); ok {
			header.Set("Access-Control-Max-Age", strconv.Itoa(maxAge))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
