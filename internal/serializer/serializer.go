// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"fmt"
	"sort"
)

// Serializer names recognised in configuration.
const (
	// JSONEncode encodes values as plain JSON and ignores groups.
	JSONEncode = "json_encode"

	// Groups encodes values honouring the groups struct tags.
	Groups = "groups"

	// Default is used when no configuration source sets a serializer.
	Default = JSONEncode
)

//go:generate mockgen -source=serializer.go -destination=../mock/serializer_mock.go -package=mock

// Serializer turns a response envelope into its JSON body.
type Serializer interface {
	// Serialize encodes v. groups are the serialization groups active for
	// the request; implementations may ignore them.
	Serialize(v any, groups []string) ([]byte, error)
}

// Registry maps serializer names to implementations. It is filled at startup
// and read-only afterwards.
type Registry struct {
	serializers map[string]Serializer
}

// NewRegistry returns a registry holding the built-in serializers.
func NewRegistry() *Registry {
	return &Registry{
		serializers: map[string]Serializer{
			JSONEncode: NewJSONSerializer(),
			Groups:     NewGroupsSerializer(),
		},
	}
}

// Register adds or replaces a serializer. It must not be called once the
// registry is shared with request handlers.
func (r *Registry) Register(name string, s Serializer) {
	r.serializers[name] = s
}

// Lookup returns the serializer registered under name.
func (r *Registry) Lookup(name string) (Serializer, error) {
	s, ok := r.serializers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSerializer, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.serializers))
	for name := range r.serializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
