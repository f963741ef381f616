// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the API response envelope.
//
// The primary abstraction is [WidgetClient], which talks to the widget API
// over HTTP, unwraps success envelopes into typed values and turns failure
// envelopes into [*ResponseError] values. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPWidgetClient]).
//
// Failures can be matched by status with [errors.Is] against the sentinels
// in errors.go (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401), or
// inspected with [errors.As] for the envelope code and title.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-api-response/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WidgetClient defines communication with the widget API. Implementations
// are responsible for serialisation, authentication header management and
// decoding envelopes.
type WidgetClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Version fetches the server build information. The endpoint is served
	// as an envelope or as plain JSON depending on server configuration;
	// both are accepted.
	Version(ctx context.Context) (BuildInfo, error)

	// ListWidgets fetches the public view of widgets matching filter.
	ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error)

	// GetWidget fetches the public view of one widget.
	GetWidget(ctx context.Context, id int64) (models.Widget, error)

	// CreateWidget creates a widget owned by the token holder and returns
	// the owner view of it.
	CreateWidget(ctx context.Context, req models.CreateWidgetRequest) (models.Widget, error)

	// DeleteWidget deletes a widget owned by the token holder.
	DeleteWidget(ctx context.Context, id int64) error

	// Me describes the token holder.
	Me(ctx context.Context) (models.UserInfo, error)

	// Fetch performs an arbitrary request and returns the decoded response
	// without interpreting failures.
	Fetch(ctx context.Context, method, path string) (Response, error)
}
