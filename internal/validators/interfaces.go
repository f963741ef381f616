// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// Validation failures are returned as errors wrapping the sentinels in
// errors.go; [IsValidationError] tells them apart from other failures so the
// transport layer can answer with 422.
package validators

import "context"

// Validator validates a payload. When fields are given only those fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
