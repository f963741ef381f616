// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope shapes handler results and classified failures into the
// [models.Envelope] written to clients.
package envelope

import (
	"github.com/MKhiriev/go-api-response/internal/apierror"
	"github.com/MKhiriev/go-api-response/models"
)

// Success wraps a handler result. The returned envelope always has an empty
// error list.
func Success(data any) models.Envelope {
	return models.Envelope{Data: data, Errors: []models.EnvelopeError{}}
}

// Failure wraps a classified failure. The returned envelope carries exactly
// one error and no data.
func Failure(c apierror.Classification) models.Envelope {
	return models.Envelope{
		Errors: []models.EnvelopeError{{Code: c.Code, Title: c.Title}},
	}
}
