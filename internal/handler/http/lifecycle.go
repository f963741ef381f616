// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/apierror"
	"github.com/MKhiriev/go-api-response/internal/envelope"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/MKhiriev/go-api-response/internal/utils"
	"github.com/goccy/go-json"
)

const contentTypeJSON = "application/json"

// EndpointFunc is an endpoint that returns its result instead of writing
// it. The result becomes the envelope data; a returned error is translated
// and classified.
type EndpointFunc func(r *http.Request) (any, error)

// annotate returns route middleware attaching rec as the route annotation.
// An annotated route is an API response route even when no path rule
// matches. The annotation is validated against the current resolver so an
// invalid serializer name or origin pattern fails route setup.
func (h *Handler) annotate(rec apiconfig.Record) (func(http.Handler) http.Handler, error) {
	if err := h.resolvers.Load().CheckAnnotation(rec); err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(apiconfig.WithAnnotation(r.Context(), rec)))
		})
	}, nil
}

// endpoint adapts fn to an http.HandlerFunc.
//
// If the request resolves to an effective configuration, the result is
// written as a success envelope through the configured serializer, and
// failures (including panics) as a failure envelope. Otherwise the request
// is served plainly: raw JSON on success, http.Error on failure, and panics
// propagate to the router's recoverer.
func (h *Handler) endpoint(fn EndpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		effective, ok := h.resolvers.Load().ResolveRequest(r)
		if !ok {
			h.passthrough(w, r, fn)
			return
		}

		r = r.WithContext(apiconfig.WithEffective(r.Context(), effective))

		data, err := callRecovering(fn, r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respond(w, r, effective, data)
	}
}

// callRecovering runs fn and converts a panic into an unclassified error.
// http.ErrAbortHandler keeps its meaning and is re-raised.
func callRecovering(fn EndpointFunc, r *http.Request) (data any, err error) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}
			data, err = nil, apierror.Panic(v, debug.Stack())
		}
	}()

	return fn(r)
}

// respond writes data as a success envelope with status 200.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, effective apiconfig.Record, data any) {
	name := effective.SerializerOr(serializer.Default)

	s, err := h.serializers.Lookup(name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := s.Serialize(envelope.Success(data), effective.Groups)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// respondError classifies err and writes the failure envelope with the
// classification status. The serializer is not consulted.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	translated := translateError(err)
	c := apierror.Classify(translated, h.debug)

	log := logger.FromRequest(r)
	event := log.Warn()
	if !isClassified(translated) {
		event = log.Error()
	}
	if stack := apierror.Stack(translated); len(stack) > 0 {
		event = event.Bytes("stack", stack)
	}
	event.Err(translated).
		Int("code", c.Code).
		Int("status", c.Status).
		Str("func", "*Handler.respondError").
		Msg("request failed")

	body, mErr := json.Marshal(envelope.Failure(c))
	if mErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(c.Status)
	_, _ = w.Write(body)
}

// passthrough serves fn for requests outside API response handling.
func (h *Handler) passthrough(w http.ResponseWriter, r *http.Request, fn EndpointFunc) {
	data, err := fn(r)
	if err != nil {
		status := http.StatusInternalServerError
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindProtocol && http.StatusText(apiErr.Status) != "" {
			status = apiErr.Status
		}

		logger.FromRequest(r).Err(err).Int("status", status).Msg("plain request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if err = utils.WriteJSON(w, http.StatusOK, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing plain response")
	}
}

// isClassified reports whether err classifies as anything but unclassified.
func isClassified(err error) bool {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind != apierror.KindUnclassified
}
