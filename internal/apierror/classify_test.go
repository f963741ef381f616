// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	internal := errors.New("db connection refused at 10.0.0.5")

	tests := []struct {
		name  string
		err   error
		debug bool
		want  Classification
	}{
		{
			name: "application error defaults to 400",
			err:  New(42, "Test"),
			want: Classification{Code: 42, Status: http.StatusBadRequest, Title: "Test"},
		},
		{
			name: "application error with status",
			err:  New(1001, "widget already exists").WithStatus(http.StatusConflict),
			want: Classification{Code: 1001, Status: http.StatusConflict, Title: "widget already exists"},
		},
		{
			name:  "application message is verbatim in debug",
			err:   New(7, "Nope").WithCause(internal),
			debug: true,
			want:  Classification{Code: 7, Status: http.StatusBadRequest, Title: "Nope"},
		},
		{
			name: "wrapped application error",
			err:  fmt.Errorf("service: %w", New(5, "bad input")),
			want: Classification{Code: 5, Status: http.StatusBadRequest, Title: "bad input"},
		},
		{
			name: "protocol error",
			err:  HTTP(http.StatusNotFound),
			want: Classification{Code: 404, Status: 404, Title: "Not Found"},
		},
		{
			name:  "protocol error ignores debug",
			err:   HTTP(http.StatusMethodNotAllowed),
			debug: true,
			want:  Classification{Code: 405, Status: 405, Title: "Method Not Allowed"},
		},
		{
			name: "auth error",
			err:  Unauthorized(internal),
			want: Classification{Code: 401, Status: 401, Title: "Unauthorized"},
		},
		{
			name: "auth error with unrelated status",
			err:  &Error{Kind: KindAuth, Status: http.StatusTeapot},
			want: Classification{Code: 401, Status: 401, Title: "Unauthorized"},
		},
		{
			name:  "auth error in debug",
			err:   Unauthorized(internal),
			debug: true,
			want:  Classification{Code: 401, Status: 401, Title: "Unauthorized"},
		},
		{
			name: "unclassified hides detail",
			err:  internal,
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name:  "unclassified exposes detail in debug",
			err:   internal,
			debug: true,
			want:  Classification{Code: 500, Status: 500, Title: "*errors.errorString: db connection refused at 10.0.0.5"},
		},
		{
			name: "nil error",
			err:  nil,
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "application status out of range",
			err:  New(3, "weird").WithStatus(1000),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "application informational status",
			err:  New(9, "odd").WithStatus(http.StatusEarlyHints),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "application success status",
			err:  New(9, "odd").WithStatus(http.StatusNoContent),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "application redirect status",
			err:  New(9, "odd").WithStatus(http.StatusNotModified),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "protocol success status",
			err:  HTTP(http.StatusOK),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "protocol status without reason phrase",
			err:  HTTP(299),
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
		{
			name: "explicit unclassified kind",
			err:  &Error{Kind: KindUnclassified, Code: 9, Message: "leak"},
			want: Classification{Code: 500, Status: 500, Title: "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err, tt.debug))
		})
	}
}

// TestClassify_NoLeakOutsideDebug checks that no part of an unclassified
// failure reaches the title when debug is off.
func TestClassify_NoLeakOutsideDebug(t *testing.T) {
	errs := []error{
		errors.New("password=hunter2"),
		fmt.Errorf("query failed: %w", errors.New("SELECT secret")),
		Panic("nil map write", []byte("goroutine 1 [running]:\nmain.go:10")),
	}

	for _, err := range errs {
		c := Classify(err, false)
		assert.Equal(t, "Internal Server Error", c.Title)
		assert.Equal(t, 500, c.Code)
	}
}

func TestClassify_PanicDiagnostic(t *testing.T) {
	stack := []byte("goroutine 7 [running]:\nhandler.go:42")
	c := Classify(Panic("boom", stack), true)

	assert.Equal(t, 500, c.Status)
	assert.Contains(t, c.Title, "*apierror.PanicError: panic: boom")
	assert.Contains(t, c.Title, "handler.go:42")
}

func TestStack(t *testing.T) {
	stack := []byte("goroutine 7 [running]:")

	assert.Equal(t, stack, Stack(Panic("boom", stack)))
	assert.Equal(t, stack, Stack(fmt.Errorf("wrapped: %w", Panic("boom", stack))))
	assert.Nil(t, Stack(New(1, "no stack")))
	assert.Nil(t, Stack(nil))
}

func TestPanic_UnwrapsErrorValue(t *testing.T) {
	cause := New(11, "raised while panicking")
	p := Panic(cause, nil)

	assert.ErrorIs(t, p, cause)
	assert.Empty(t, p.Stack())
	assert.Equal(t, Classification{Code: 11, Status: 400, Title: "raised while panicking"}, Classify(p, false))
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "Test", New(42, "Test").Error())
	assert.Equal(t, "Not Found", HTTP(404).Error())
	assert.Equal(t, "auth error: token expired", Unauthorized(errors.New("token expired")).Error())
	assert.Equal(t, "code 3", Newf(3, "code %d", 3).Error())
}

func TestError_CopiesOnModify(t *testing.T) {
	base := New(1, "base")
	withStatus := base.WithStatus(http.StatusConflict)
	withCause := base.WithCause(errors.New("cause"))

	assert.Zero(t, base.Status)
	assert.Nil(t, base.Err)
	assert.Equal(t, http.StatusConflict, withStatus.Status)
	assert.Error(t, withCause.Unwrap())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "application", KindApplication.String())
	assert.Equal(t, "protocol", KindProtocol.String())
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "unclassified", KindUnclassified.String())
}
