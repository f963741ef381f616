// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"fmt"
	"net/http"
	"regexp"
)

// compiledRule is a [PathRule] whose pattern has been compiled at load time.
type compiledRule struct {
	pattern *regexp.Regexp
	record  Record
}

// Resolver computes the effective API response settings of a request from
// the process defaults, the path table and an optional route annotation.
//
// A Resolver is immutable once built by [New] and safe for concurrent use.
// Reloads build a new Resolver and publish it through a [Store].
type Resolver struct {
	defaults Record
	rules    []compiledRule

	// origins caches compiled allow-origin patterns keyed by their source.
	origins map[string]*regexp.Regexp

	checkSerializer func(name string) error
}

// Option customises how [New] validates configuration.
type Option func(*Resolver)

// WithSerializerCheck makes [New] reject records naming a serializer that
// check does not accept, so unknown serializers fail at load time.
func WithSerializerCheck(check func(name string) error) Option {
	return func(r *Resolver) {
		r.checkSerializer = check
	}
}

// New compiles defaults and table into a Resolver.
//
// Every path pattern and every cors_allow_origin_regex is compiled here, so a
// malformed expression fails startup instead of a request. Patterns are
// regular expressions in RE2 syntax, unanchored, and are tested against the
// URL path only.
func New(defaults Record, table PathTable, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		defaults: defaults.Clone(),
		rules:    make([]compiledRule, 0, len(table)),
		origins:  make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.compileRecord(defaults); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	for _, rule := range table {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPathPattern, rule.Pattern, err)
		}
		if err := r.compileRecord(rule.Record); err != nil {
			return nil, fmt.Errorf("path %q: %w", rule.Pattern, err)
		}

		r.rules = append(r.rules, compiledRule{pattern: re, record: rule.Record.Clone()})
	}

	return r, nil
}

func (r *Resolver) compileRecord(rec Record) error {
	if rec.CorsMaxAge != nil && *rec.CorsMaxAge < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxAge, *rec.CorsMaxAge)
	}
	if rec.Serializer != nil && r.checkSerializer != nil {
		if err := r.checkSerializer(*rec.Serializer); err != nil {
			return err
		}
	}
	if rec.CorsAllowOriginRegex == nil {
		return nil
	}

	src := *rec.CorsAllowOriginRegex
	if _, ok := r.origins[src]; ok {
		return nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidOriginPattern, src, err)
	}
	r.origins[src] = re
	return nil
}

// Resolve returns the effective settings for path, merging in ascending
// priority: defaults, the first matching path rule, then annotation.
//
// The second return value is false when no path rule matched and annotation
// is nil; the request is then not an API response request and must be left
// untouched. The returned Record is a fresh copy owned by the caller.
func (r *Resolver) Resolve(path string, annotation *Record) (Record, bool) {
	result := r.defaults.Clone()
	matched := false

	for _, rule := range r.rules {
		if !rule.pattern.MatchString(path) {
			continue
		}
		Merge(&result, rule.record)
		matched = true
		break
	}

	if annotation != nil {
		Merge(&result, *annotation)
		matched = true
	}

	if !matched {
		return Record{}, false
	}
	return result, true
}

// CheckAnnotation validates a route annotation the way [New] validates
// configuration records, without changing r. Route setup calls it once per
// annotated route so a bad annotation fails at startup.
func (r *Resolver) CheckAnnotation(rec Record) error {
	probe := &Resolver{
		origins:         make(map[string]*regexp.Regexp),
		checkSerializer: r.checkSerializer,
	}
	return probe.compileRecord(rec)
}

// ResolveRequest resolves req by its URL path and the annotation attached to
// its context with [WithAnnotation].
func (r *Resolver) ResolveRequest(req *http.Request) (Record, bool) {
	return r.Resolve(req.URL.Path, AnnotationFrom(req.Context()))
}

// OriginAllowed reports whether origin matches the allow-origin pattern of
// rec. Only patterns compiled by [New] are consulted; a record with no
// pattern, or with one the resolver never compiled, allows nothing.
func (r *Resolver) OriginAllowed(rec Record, origin string) bool {
	if origin == "" || rec.CorsAllowOriginRegex == nil {
		return false
	}
	re, ok := r.origins[*rec.CorsAllowOriginRegex]
	if !ok {
		return false
	}
	return re.MatchString(origin)
}

// Defaults returns a copy of the process-wide default record.
func (r *Resolver) Defaults() Record {
	return r.defaults.Clone()
}

// Rules returns the number of path rules.
func (r *Resolver) Rules() int {
	return len(r.rules)
}
