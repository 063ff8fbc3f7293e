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

import (
	"fmt"
	"reflect"

	"github.com/ledona/go-misc/data/frame"
)

// Shape is the structural category assigned to a comparison operand. It is
// computed once per value via explicit type tests; values that fit no
// category (channels, functions) yield a ConfigurationError rather than
// a crash.
type Shape int

const (
	// ShapeTabular is a *frame.Frame.
	ShapeTabular Shape = iota
	// ShapeObject is a value with named-field access: a Fields implementor,
	// or a struct (or pointer to struct) with at least one exported field.
	ShapeObject
	// ShapeMapping is any Go map.
	ShapeMapping
	// ShapeSequence is a slice or array.
	ShapeSequence
	// ShapeScalar is everything else; scalars are compared by equality.
	ShapeScalar
)

func (s Shape) String() string {
	switch s {
	case ShapeTabular:
		return "tabular"
	case ShapeObject:
		return "object"
	case ShapeMapping:
		return "mapping"
	case ShapeSequence:
		return "sequence"
	case ShapeScalar:
		return "scalar"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// classify assigns a Shape to v. Dispatch order matters and matches the
// comparator's documented precedence: tabular, object-like, mapping,
// sequence, scalar.
func classify(v any) (Shape, error) {
	if v == nil {
		return ShapeScalar, nil
	}
	if _, ok := v.(*frame.Frame); ok {
		return ShapeTabular, nil
	}
	if _, ok := v.(Fields); ok {
		return ShapeObject, nil
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return 0, &ConfigurationError{
			Reason: fmt.Sprintf("values of type %s cannot be compared", t),
		}
	case reflect.Map:
		return ShapeMapping, nil
	case reflect.Slice, reflect.Array:
		return ShapeSequence, nil
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct && hasExportedFields(t.Elem()) {
			return ShapeObject, nil
		}
	case reflect.Struct:
		// Structs without exported fields (time.Time and the like) compare as
		// scalars via their own equality.
		if hasExportedFields(t) {
			return ShapeObject, nil
		}
	}
	return ShapeScalar, nil
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
