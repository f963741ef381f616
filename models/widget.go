// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Widget is the demo resource served by the API.
//
// The groups tags select which fields the "groups" serializer emits for a
// given set of serialization groups: "public" for anonymous listings and
// "owner" for the authenticated owner.
type Widget struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id" groups:"public,owner"`

	// Name is the display name of the widget. Unique.
	Name string `json:"name" groups:"public,owner"`

	// Color is an optional free-form color label.
	Color string `json:"color,omitempty" groups:"public,owner"`

	// SecretNote is only visible to the owner.
	SecretNote string `json:"secret_note,omitempty" groups:"owner"`

	// OwnerID is the user that created the widget.
	OwnerID int64 `json:"owner_id" groups:"owner"`

	// CreatedAt is the creation time set by the database.
	CreatedAt time.Time `json:"created_at" groups:"public,owner"`
}

// CreateWidgetRequest is the body of POST /api/widgets.
type CreateWidgetRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	SecretNote string `json:"secret_note"`
}

// UserInfo describes the authenticated caller.
type UserInfo struct {
	UserID int64  `json:"user_id" groups:"owner"`
	Issuer string `json:"issuer" groups:"owner"`
}

// WidgetFilter narrows GET /api/widgets. Zero fields add no condition.
type WidgetFilter struct {
	Color   string
	OwnerID int64
	Limit   uint64
	Offset  uint64
}
