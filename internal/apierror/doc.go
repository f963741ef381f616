// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apierror classifies failures into the (API code, HTTP status,
// title) triple rendered inside API response envelopes.
//
// The classifier is framework agnostic: transport adapters translate native
// failures into an [*Error] of the matching [Kind] before calling [Classify].
package apierror
