// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apierror

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of failure kinds the classifier distinguishes.
type Kind int

const (
	// KindUnclassified is any failure not explicitly raised for clients.
	// Its message is disclosed only in debug mode.
	KindUnclassified Kind = iota

	// KindApplication is an error raised by application code with its own
	// numeric code, optional HTTP status and client-facing message.
	KindApplication

	// KindProtocol is a standard HTTP failure carrying only a status code.
	KindProtocol

	// KindAuth is an authentication failure. It always maps to 401.
	KindAuth
)

// String returns a short name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindProtocol:
		return "protocol"
	case KindAuth:
		return "auth"
	default:
		return "unclassified"
	}
}

// Error is the classification input produced by application code or by the
// transport adapter that translates framework-native failures.
//
// Messages of application errors are shown to clients verbatim, so they must
// never carry internal detail.
type Error struct {
	Kind    Kind
	Code    int
	Status  int
	Message string
	Err     error
}

// New returns an application error with a numeric API code and a message
// safe to show to clients. The HTTP status defaults to 400; see [Error.WithStatus].
func New(code int, message string) *Error {
	return &Error{Kind: KindApplication, Code: code, Message: message}
}

// Newf is like [New] with a formatted message.
func Newf(code int, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// HTTP returns a protocol error for a standard HTTP status code.
func HTTP(status int) *Error {
	return &Error{Kind: KindProtocol, Status: status, Message: http.StatusText(status)}
}

// Unauthorized returns an authentication error wrapping cause.
func Unauthorized(cause error) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Err: cause}
}

// WithStatus returns a copy of e with the HTTP status set.
func (e *Error) WithStatus(status int) *Error {
	c := *e
	c.Status = status
	return &c
}

// WithCause returns a copy of e wrapping cause. The cause is kept for logs
// and errors.Is matching; it never reaches the client title.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.Err = cause
	return &c
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}
