// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import "context"

type (
	annotationKey struct{}
	effectiveKey  struct{}
)

// WithAnnotation attaches a route-level annotation to ctx. Attaching an
// annotation opts the route into API response handling even if no path
// rule matches.
func WithAnnotation(ctx context.Context, rec Record) context.Context {
	rec = rec.Clone()
	return context.WithValue(ctx, annotationKey{}, &rec)
}

// AnnotationFrom returns the annotation attached to ctx, or nil.
func AnnotationFrom(ctx context.Context) *Record {
	rec, _ := ctx.Value(annotationKey{}).(*Record)
	return rec
}

// WithEffective stores the resolved settings of the current request.
func WithEffective(ctx context.Context, rec Record) context.Context {
	return context.WithValue(ctx, effectiveKey{}, rec)
}

// EffectiveFrom returns the resolved settings of the current request and
// whether the request is an API response request at all.
func EffectiveFrom(ctx context.Context) (Record, bool) {
	rec, ok := ctx.Value(effectiveKey{}).(Record)
	return rec, ok
}
