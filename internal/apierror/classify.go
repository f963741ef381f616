// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Classification is the client-facing shape of a failure.
type Classification struct {
	Code   int
	Status int
	Title  string
}

// stackTracer is implemented by failures that captured a stack, such as
// recovered panics.
type stackTracer interface {
	Stack() []byte
}

// Classify maps err to its client-facing classification. It never fails.
//
// Priority: application errors, then protocol errors, then authentication
// errors; anything else is unclassified and reported as 500. Only for
// unclassified failures does debug decide whether the title carries the
// failure detail or the generic reason phrase.
//
// Malformed classified errors (a status outside 400..599, a protocol
// status without a registered reason phrase) are treated as unclassified.
func Classify(err error, debug bool) Classification {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindApplication:
			status := apiErr.Status
			if status == 0 {
				status = http.StatusBadRequest
			}
			if validStatus(status) {
				return Classification{Code: apiErr.Code, Status: status, Title: apiErr.Message}
			}
		case KindProtocol:
			if validStatus(apiErr.Status) && http.StatusText(apiErr.Status) != "" {
				return Classification{
					Code:   apiErr.Status,
					Status: apiErr.Status,
					Title:  http.StatusText(apiErr.Status),
				}
			}
		case KindAuth:
			return Classification{
				Code:   http.StatusUnauthorized,
				Status: http.StatusUnauthorized,
				Title:  http.StatusText(http.StatusUnauthorized),
			}
		}
	}

	return unclassified(err, debug)
}

func unclassified(err error, debug bool) Classification {
	c := Classification{
		Code:   http.StatusInternalServerError,
		Status: http.StatusInternalServerError,
		Title:  http.StatusText(http.StatusInternalServerError),
	}
	if debug && err != nil {
		c.Title = Diagnostic(err)
	}
	return c
}

// Diagnostic renders err with its dynamic type and, when available, the
// captured stack trace.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	s := fmt.Sprintf("%T: %s", err, err.Error())
	if stack := Stack(err); len(stack) > 0 {
		s += "\n" + string(stack)
	}
	return s
}

// Stack returns the stack trace captured by err or an error it wraps, nil
// when there is none.
func Stack(err error) []byte {
	var st stackTracer
	if errors.As(err, &st) {
		return st.Stack()
	}
	return nil
}

// validStatus accepts client and server error statuses only. A failure
// sent with 1xx, 2xx or 3xx would lose its body.
func validStatus(status int) bool {
	return status >= http.StatusBadRequest && status <= 599
}
