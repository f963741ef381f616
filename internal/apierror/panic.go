// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apierror

import "fmt"

// PanicError is an unclassified failure built from a recovered panic.
type PanicError struct {
	Value any
	stack []byte
}

// Panic wraps a recovered panic value together with the goroutine stack
// captured at recovery time.
func Panic(value any, stack []byte) *PanicError {
	return &PanicError{Value: value, stack: stack}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Stack returns the captured stack trace.
func (e *PanicError) Stack() []byte {
	return e.stack
}
