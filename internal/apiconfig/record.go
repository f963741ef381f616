// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record holds the overridable API response settings of a single source:
// the process-wide defaults, one path rule, or one route annotation.
//
// Every field is optional. A nil field means "not specified here, inherit
// from a lower-priority source". For the two list fields a nil slice is
// absent, while a non-nil empty slice is a present, empty value.
type Record struct {
	// Serializer names the serialization strategy used on the success path.
	// If nil, the field will not be merged.
	Serializer *string `json:"serializer,omitempty" yaml:"serializer,omitempty"`

	// Groups lists the serialization field groups applied to response data.
	// If nil, the field will not be merged.
	Groups []string `json:"serialize_groups,omitempty" yaml:"serialize_groups,omitempty"`

	// CorsAllowHeaders lists the header names returned in
	// Access-Control-Allow-Headers on preflight requests.
	// If nil, the field will not be merged.
	CorsAllowHeaders HeaderList `json:"cors_allow_headers,omitempty" yaml:"cors_allow_headers,omitempty"`

	// CorsAllowOriginRegex is matched against the Origin request header.
	// If nil, the field will not be merged.
	CorsAllowOriginRegex *string `json:"cors_allow_origin_regex,omitempty" yaml:"cors_allow_origin_regex,omitempty"`

	// CorsMaxAge is the preflight cache lifetime in seconds.
	// If nil, the field will not be merged.
	CorsMaxAge *int `json:"cors_max_age,omitempty" yaml:"cors_max_age,omitempty"`
}

// String returns a pointer to v, for building Record literals.
func String(v string) *string {
	return &v
}

// Int returns a pointer to v, for building Record literals.
func Int(v int) *int {
	return &v
}

// Merge overwrites every field of dst that is present in src.
// Fields absent in src leave dst untouched. Lists are replaced, never
// unioned, and copied so dst never shares backing arrays with src.
func Merge(dst *Record, src Record) {
	if src.Serializer != nil {
		dst.Serializer = String(*src.Serializer)
	}
	if src.Groups != nil {
		dst.Groups = slices.Clone(src.Groups)
	}
	if src.CorsAllowHeaders != nil {
		dst.CorsAllowHeaders = slices.Clone(src.CorsAllowHeaders)
	}
	if src.CorsAllowOriginRegex != nil {
		dst.CorsAllowOriginRegex = String(*src.CorsAllowOriginRegex)
	}
	if src.CorsMaxAge != nil {
		dst.CorsMaxAge = Int(*src.CorsMaxAge)
	}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	var c Record
	Merge(&c, r)
	return c
}

// IsZero reports whether no field of r is present.
func (r Record) IsZero() bool {
	return r.Serializer == nil &&
		r.Groups == nil &&
		r.CorsAllowHeaders == nil &&
		r.CorsAllowOriginRegex == nil &&
		r.CorsMaxAge == nil
}

// SerializerOr returns the configured serializer name or fallback when unset.
func (r Record) SerializerOr(fallback string) string {
	if r.Serializer == nil || *r.Serializer == "" {
		return fallback
	}
	return *r.Serializer
}

// MaxAge returns the preflight max age and whether it was configured.
func (r Record) MaxAge() (int, bool) {
	if r.CorsMaxAge == nil {
		return 0, false
	}
	return *r.CorsMaxAge, true
}

// HeaderList is a list of HTTP header names. In configuration files it may be
// written either as a list or as a single comma-separated string.
type HeaderList []string

// String joins the header names the way Access-Control-Allow-Headers expects.
func (h HeaderList) String() string {
	return strings.Join(h, ", ")
}

// UnmarshalJSON accepts a JSON string or an array of strings.
func (h *HeaderList) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*h = nil
		return nil
	case string:
		*h = splitHeaders(value)
		return nil
	case []any:
		list := make(HeaderList, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: %v", ErrInvalidHeaderList, item)
			}
			list = append(list, strings.TrimSpace(s))
		}
		*h = list
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidHeaderList, string(b))
	}
}

// UnmarshalYAML accepts a YAML scalar or a sequence of scalars.
func (h *HeaderList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*h = splitHeaders(node.Value)
		return nil
	case yaml.SequenceNode:
		list := make(HeaderList, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: line %d", ErrInvalidHeaderList, item.Line)
			}
			list = append(list, strings.TrimSpace(item.Value))
		}
		*h = list
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidHeaderList, node.Line)
	}
}

// splitHeaders turns "X-A, X-B" into ["X-A", "X-B"]. An empty string yields
// a present, empty list.
func splitHeaders(s string) HeaderList {
	list := HeaderList{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
