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

package frame

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Diff deep-compares two frames cell by cell and returns a descriptive error
// for the first difference found, or nil if the frames are equal. Column
// names must match in order, column element types must match, and index
// presence, level names and values must match.
//
// Diff performs no normalization; callers wanting order- or index-insensitive
// comparison should sort/select/reset first.
func (f *Frame) Diff(other *Frame) error {
	if other == nil {
		return fmt.Errorf("second frame is nil")
	}
	if f.rows != other.rows {
		return fmt.Errorf("row counts differ: %d vs %d", f.rows, other.rows)
	}
	a, b := f.Columns(), other.Columns()
	if !reflect.DeepEqual(a, b) {
		return fmt.Errorf(
			"columns differ: [%s] vs [%s]", strings.Join(a, ", "), strings.Join(b, ", "))
	}
	for _, name := range f.names {
		ta, tb := f.types[name], other.types[name]
		if ta != tb {
			return fmt.Errorf(
				"column %q element types differ: %s vs %s", name, typeName(ta), typeName(tb))
		}
		va, vb := f.cols[name], other.cols[name]
		for row := range va {
			if !cellEqual(va[row], vb[row]) {
				return fmt.Errorf(
					"column %q row %d differs: %#v vs %#v", name, row, va[row], vb[row])
			}
		}
	}
	return diffIndex(f.index, other.index)
}

func diffIndex(a, b *Index) error {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil || b == nil:
		return fmt.Errorf("one frame has a row index, the other does not")
	}
	if !reflect.DeepEqual(a.names, b.names) {
		return fmt.Errorf("index level names differ: %v vs %v", a.names, b.names)
	}
	for i, name := range a.names {
		la, lb := a.levels[i], b.levels[i]
		for row := range la {
			if !cellEqual(la[row], lb[row]) {
				return fmt.Errorf(
					"index level %q row %d differs: %#v vs %#v", name, row, la[row], lb[row])
			}
		}
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "mixed"
	}
	return t.String()
}

// cellEqual compares two cells. Cells are typically basic values; go-cmp
// handles the rest (time.Time via its Equal method, nested slices/maps, etc).
func cellEqual(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	defer func() {
		// cmp panics on unexported fields without an Equal method; treat such
		// cells as comparable only via DeepEqual.
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// compareValues is a total order over cell values used for row sorting. Nil
// sorts first, then values are ordered within their type; values of
// different types are ordered by type name so the sort stays deterministic.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return strings.Compare(ta.String(), tb.String())
	}
	if at, ok := a.(time.Time); ok {
		return at.Compare(b.(time.Time))
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.String:
		return strings.Compare(va.String(), vb.String())
	case reflect.Bool:
		return boolCompare(va.Bool(), vb.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intCompare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch {
		case va.Uint() < vb.Uint():
			return -1
		case va.Uint() > vb.Uint():
			return 1
		}
		return 0
	case reflect.Float32, reflect.Float64:
		switch {
		case va.Float() < vb.Float():
			return -1
		case va.Float() > vb.Float():
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func intCompare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
