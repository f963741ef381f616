// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"bytes"
	"encoding"
	stdjson "encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-api-response/models"
)

// DefaultGroup is the group of struct fields that carry no groups tag.
const DefaultGroup = "Default"

const groupsTag = "groups"

var (
	jsonMarshalerType = reflect.TypeFor[stdjson.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

type groupsSerializer struct{}

// NewGroupsSerializer returns the groups serializer.
//
// Struct fields list their groups in a `groups:"a,b"` tag; untagged fields
// belong to [DefaultGroup]. With no active groups every field is written,
// otherwise only fields sharing at least one active group. For envelopes the
// filter applies to the data member only.
func NewGroupsSerializer() Serializer {
	return groupsSerializer{}
}

func (groupsSerializer) Serialize(v any, groups []string) ([]byte, error) {
	f := newFilter(groups)

	var err error
	switch env := v.(type) {
	case models.Envelope:
		if !env.Failed() {
			env.Data, err = f.value(reflect.ValueOf(env.Data))
		}
		v = env
	default:
		v, err = f.value(reflect.ValueOf(v))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return b, nil
}

// filter converts values into plain ones where struct fields outside groups
// are dropped. It tracks the pointers, maps and slices on the current path
// so cyclic data fails instead of recursing forever.
type filter struct {
	groups []string
	path   map[visit]struct{}
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func newFilter(groups []string) *filter {
	return &filter{groups: groups, path: make(map[visit]struct{})}
}

// value filters v. Types with their own JSON or text encoding are kept as
// they are; pointer receivers count when v is addressable.
func (f *filter) value(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if marshals(v.Type()) {
		if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
			return nil, nil
		}
		return v.Interface(), nil
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && marshals(reflect.PointerTo(v.Type())) {
		return v.Addr().Interface(), nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return f.value(v.Elem())

	case reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		leave, err := f.enter(v, 0)
		if err != nil {
			return nil, err
		}
		defer leave()
		return f.value(v.Elem())

	case reflect.Struct:
		obj := object{}
		if err := f.appendFields(&obj, v); err != nil {
			return nil, err
		}
		return obj, nil

	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Interface(), nil
		}
		leave, err := f.enter(v, v.Len())
		if err != nil {
			return nil, err
		}
		defer leave()
		return f.list(v)

	case reflect.Array:
		return f.list(v)

	case reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
		leave, err := f.enter(v, 0)
		if err != nil {
			return nil, err
		}
		defer leave()

		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			item, err := f.value(iter.Value())
			if err != nil {
				return nil, err
			}
			m[mapKey(iter.Key())] = item
		}
		return m, nil

	default:
		return v.Interface(), nil
	}
}

func (f *filter) list(v reflect.Value) (any, error) {
	list := make([]any, v.Len())
	for i := range list {
		item, err := f.value(v.Index(i))
		if err != nil {
			return nil, err
		}
		list[i] = item
	}
	return list, nil
}

// enter marks v as being on the current path. The returned func unmarks it.
func (f *filter) enter(v reflect.Value, n int) (func(), error) {
	key := visit{ptr: v.Pointer(), typ: v.Type(), len: n}
	if _, ok := f.path[key]; ok {
		return nil, fmt.Errorf("%w via %s", ErrCycle, v.Type())
	}
	f.path[key] = struct{}{}
	return func() { delete(f.path, key) }, nil
}

func (f *filter) appendFields(obj *object, v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		name, opts, skip := jsonName(sf)
		if skip {
			continue
		}

		fv := v.Field(i)

		// promote untagged embedded structs like encoding/json does
		if sf.Anonymous && name == "" {
			if !fv.CanInterface() {
				continue
			}
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				if ft.Elem().Kind() == reflect.Struct {
					leave, err := f.enter(fv, 0)
					if err != nil {
						return err
					}
					err = f.appendFields(obj, fv.Elem())
					leave()
					if err != nil {
						return err
					}
					continue
				}
				ft, fv = ft.Elem(), fv.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := f.appendFields(obj, fv); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if !inGroups(sf, f.groups) {
			continue
		}
		if strings.Contains(opts, "omitempty") && isEmptyValue(fv) {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		value, err := f.value(fv)
		if err != nil {
			return err
		}
		*obj = append(*obj, member{key: name, value: value})
	}
	return nil
}

func marshals(t reflect.Type) bool {
	return t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType)
}

func jsonName(sf reflect.StructField) (name, opts string, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", "", true
	}
	name, opts, _ = strings.Cut(tag, ",")
	return name, opts, false
}

func inGroups(sf reflect.StructField, active []string) bool {
	if len(active) == 0 {
		return true
	}

	fieldGroups := []string{DefaultGroup}
	if tag, ok := sf.Tag.Lookup(groupsTag); ok {
		fieldGroups = strings.Split(tag, ",")
	}
	for _, g := range fieldGroups {
		if slices.Contains(active, strings.TrimSpace(g)) {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if b, err := tm.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(k.Interface())
}

// object is a JSON object that keeps struct field order.
type object []member

type member struct {
	key   string
	value any
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
