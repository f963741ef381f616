// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application services behind the demo API:
// widgets, bearer-token authentication and build information.
//
// Services return plain Go errors. Translating them into response
// classifications is the job of the HTTP layer.
package service

import (
	"context"

	"github.com/MKhiriev/go-api-response/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WidgetService manages widgets on behalf of an authenticated or anonymous caller.
type WidgetService interface {
	// CreateWidget validates req and stores a new widget owned by ownerID.
	CreateWidget(ctx context.Context, ownerID int64, req models.CreateWidgetRequest) (models.Widget, error)

	// GetWidget returns a single widget by id.
	GetWidget(ctx context.Context, id int64) (models.Widget, error)

	// ListWidgets returns the widgets matching filter. A zero Limit means
	// the default page size.
	ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error)

	// DeleteWidget removes a widget owned by ownerID.
	DeleteWidget(ctx context.Context, id, ownerID int64) error
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
