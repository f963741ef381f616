// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer provides the serialization strategies used to render
// successful API response envelopes: plain JSON ("json_encode") and
// field-group aware JSON ("groups").
package serializer
