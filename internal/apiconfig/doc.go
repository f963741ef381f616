// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiconfig resolves the per-request API response configuration.
//
// Three sources are merged in ascending priority: the process defaults, the
// first path rule whose pattern matches the request path, and the route
// annotation. Merging is a shallow, field-by-field overwrite of present
// values (see [Merge]). A request matched neither by a path rule nor carrying
// an annotation is not an API response request.
//
// Resolvers are built once by [New] and are read-only afterwards; a [Store]
// swaps in freshly built resolvers on reload.
package apiconfig
