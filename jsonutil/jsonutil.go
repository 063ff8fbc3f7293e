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

// Package jsonutil converts arbitrary nested values into plain
// JSON-marshalable form: maps with string keys, slices, numbers, strings,
// bools and nil, with times rendered as RFC 3339 strings.
package jsonutil

import (
	"fmt"
	"reflect"
	"time"
)

// Compatible returns v rebuilt from JSON-marshalable parts. Maps become
// map[string]any (non-string keys are stringified), slices and arrays become
// []any, time.Time becomes an RFC 3339 string and structs are flattened to a
// map of their exported fields. Values with no JSON rendering, such as
// channels and functions, are rejected.
func Compatible(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339Nano), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return v, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Compatible(rv.Elem().Interface())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := compatibleKey(iter.Key())
			if err != nil {
				return nil, err
			}
			val, err := Compatible(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("map value for key %q: %w", key, err)
			}
			out[key] = val
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := Compatible(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = val
		}
		return out, nil
	case reflect.Struct:
		return compatibleStruct(rv)
	default:
		return nil, fmt.Errorf("jsonutil: no JSON rendering for type %T", v)
	}
}

func compatibleKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	key, err := Compatible(k.Interface())
	if err != nil {
		return "", fmt.Errorf("map key: %w", err)
	}
	return fmt.Sprint(key), nil
}

func compatibleStruct(rv reflect.Value) (any, error) {
	t := rv.Type()
	out := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		val, err := Compatible(rv.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		out[field.Name] = val
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("jsonutil: no JSON rendering for type %s", t)
	}
	return out, nil
}
