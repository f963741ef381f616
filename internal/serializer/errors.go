// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "errors"

var (
	ErrUnknownSerializer = errors.New("unknown serializer")
	ErrSerialize         = errors.New("error serializing response")
	ErrCycle             = errors.New("cycle in response data")
)
