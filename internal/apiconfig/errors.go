// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import "errors"

// Configuration errors. All of them are reported while building a [Resolver]
// or decoding configuration, never while resolving a request.
var (
	ErrInvalidPathPattern   = errors.New("invalid path pattern")
	ErrInvalidOriginPattern = errors.New("invalid cors allow-origin pattern")
	ErrInvalidPathTable     = errors.New("invalid path table")
	ErrInvalidHeaderList    = errors.New("invalid cors allow-headers value")
	ErrNegativeMaxAge       = errors.New("cors max age must not be negative")
)
