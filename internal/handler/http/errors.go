// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Application error codes carried in the "code" member of envelope errors.
const (
	// CodeValidationFailed marks input rejected by the widget validator.
	CodeValidationFailed = 1001

	// CodeWidgetConflict marks a widget name that is already taken.
	CodeWidgetConflict = 1002
)

// Sentinel errors raised by endpoints for malformed requests. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidWidgetID is returned when the {id} URL parameter is not a
	// positive integer.
	ErrInvalidWidgetID = errors.New("invalid widget id")

	// ErrInvalidBody is returned when a request body is empty or not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidQuery is returned when a listing query parameter cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrNoUserInContext is returned by authenticated endpoints that run
	// without the auth middleware in front of them.
	ErrNoUserInContext = errors.New("no authenticated user in context")

	// ErrDebugPanic is the value raised by the debug panic endpoint.
	ErrDebugPanic = errors.New("debug panic requested")
)
