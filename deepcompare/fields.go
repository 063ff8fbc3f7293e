// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deepcompare

import "reflect"

// Fields is the named-field-access capability driving object-like
// comparison. Record-like types implement it to supply their field names
// explicitly; plain structs get the equivalent from their exported fields.
type Fields interface {
	// FieldNames returns the value's field names in a stable order.
	FieldNames() []string
	// Field returns the named field's value, or ok == false if the value has
	// no such field.
	Field(name string) (any, bool)
}

// fieldNamesOf returns the field-name list used to drive object comparison
// of v: the Fields implementation if present, otherwise the exported fields
// of the (possibly pointed-to) struct type in declaration order.
func fieldNamesOf(v any) ([]string, bool) {
	if f, ok := v.(Fields); ok {
		return f.FieldNames(), true
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}
	return names, true
}

// fieldOf looks up a named field on v, via the Fields capability or struct
// reflection.
func fieldOf(v any, name string) (any, bool) {
	if f, ok := v.(Fields); ok {
		return f.Field(name)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	fv := rv.FieldByName(name)
	if !fv.IsValid() || !fv.CanInterface() {
		return nil, false
	}
	return fv.Interface(), true
}

// Record is an ordered bundle of named values implementing Fields. It is the
// explicit-capability stand-in for ad hoc attribute bags and named tuples:
// handy as a test fixture or as the base of types that are mostly a bundle
// of attributes.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: map[string]any{}}
}

// Set sets a field, preserving first-set order, and returns the receiver for
// chaining.
func (r *Record) Set(name string, value any) *Record {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	return r
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// FieldNames returns the field names in first-set order.
func (r *Record) FieldNames() []string {
	return append([]string(nil), r.names...)
}

// Field returns the named field's value.
func (r *Record) Field(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}
