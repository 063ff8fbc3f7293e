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

// Package frame provides a small in-memory tabular data container: a set of
// named columns of equal length, each with an inferred element type, plus an
// optional single or composite row index.
//
// A Frame is treated as immutable once constructed; every transforming method
// (Select, SortedColumns, SortRows, ResetIndex, WithIndex) returns a new
// Frame and leaves the receiver untouched, so a Frame may be shared between
// goroutines without synchronization.
package frame

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Column is the construction unit for a Frame: a name and the column's cell
// values, one per row.
type Column struct {
	Name   string
	Values []any
}

// Frame is a two-dimensional labeled table.
type Frame struct {
	names []string         // column order
	cols  map[string][]any // column name -> cells
	types map[string]reflect.Type
	index *Index // nil means the default positional index
	rows  int
}

// New builds a Frame from the given columns. All columns must have the same
// number of values and column names must be unique.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  make(map[string][]any, len(cols)),
		types: make(map[string]reflect.Type, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("frame: column %d has no name", i)
		}
		if _, dup := f.cols[c.Name]; dup {
			return nil, fmt.Errorf("frame: duplicate column %q", c.Name)
		}
		if i == 0 {
			f.rows = len(c.Values)
		} else if len(c.Values) != f.rows {
			return nil, fmt.Errorf(
				"frame: column %q has %d values, want %d", c.Name, len(c.Values), f.rows)
		}
		f.names = append(f.names, c.Name)
		f.cols[c.Name] = append([]any(nil), c.Values...)
		f.types[c.Name] = inferType(c.Values)
	}
	return f, nil
}

// MustNew is New, panicking on error. Intended for tests and literals.
func MustNew(cols ...Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// inferType returns the common dynamic type of the non-nil values, or nil if
// the values are empty, all nil, or of mixed types (the "object" column type).
func inferType(values []any) reflect.Type {
	var t reflect.Type
	for _, v := range values {
		if v == nil {
			continue
		}
		vt := reflect.TypeOf(v)
		if t == nil {
			t = vt
		} else if t != vt {
			return nil
		}
	}
	return t
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// Columns returns the column names in column order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// ColumnValues returns a copy of the named column's cells.
func (f *Frame) ColumnValues(name string) ([]any, bool) {
	vals, ok := f.cols[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), vals...), true
}

// ColumnType returns the inferred element type of the named column. A nil
// type with ok == true means the column is empty or holds mixed types.
func (f *Frame) ColumnType(name string) (reflect.Type, bool) {
	if _, ok := f.cols[name]; !ok {
		return nil, false
	}
	return f.types[name], true
}

// Cell returns the value at the given column and row.
func (f *Frame) Cell(name string, row int) (any, bool) {
	vals, ok := f.cols[name]
	if !ok || row < 0 || row >= f.rows {
		return nil, false
	}
	return vals[row], true
}

// Index returns the frame's row index, or nil if the frame uses the default
// positional index.
func (f *Frame) Index() *Index { return f.index }

// WithIndex returns a copy of the frame using ix as its row index. The index
// length must match the frame's row count.
func (f *Frame) WithIndex(ix *Index) (*Frame, error) {
	if ix != nil && ix.Len() != f.rows {
		return nil, fmt.Errorf("frame: index has %d entries, frame has %d rows", ix.Len(), f.rows)
	}
	g := f.shallowCopy()
	g.index = ix.clone()
	return g, nil
}

// ResetIndex returns a copy of the frame with the row index dropped, so the
// frame reverts to the default positional index.
func (f *Frame) ResetIndex() *Frame {
	g := f.shallowCopy()
	g.index = nil
	return g
}

// Select returns a copy of the frame containing only the named columns, in
// the given order. The index is carried over unchanged.
func (f *Frame) Select(names ...string) (*Frame, error) {
	var missing []string
	for _, n := range names {
		if !f.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("frame: no such columns: %s", strings.Join(missing, ", "))
	}
	g := &Frame{
		cols:  make(map[string][]any, len(names)),
		types: make(map[string]reflect.Type, len(names)),
		index: f.index.clone(),
		rows:  f.rows,
	}
	for _, n := range names {
		if _, dup := g.cols[n]; dup {
			return nil, fmt.Errorf("frame: duplicate column %q in selection", n)
		}
		g.names = append(g.names, n)
		g.cols[n] = f.cols[n]
		g.types[n] = f.types[n]
	}
	return g, nil
}

// SortedColumns returns a copy of the frame with columns reordered into
// sorted-by-name order.
func (f *Frame) SortedColumns() *Frame {
	names := f.Columns()
	sort.Strings(names)
	g, err := f.Select(names...)
	if err != nil {
		// Select of the frame's own column names cannot fail.
		panic(err)
	}
	return g
}

// SortRows returns a copy of the frame with rows stably sorted by the given
// keys. Each key names either an index level or a column; index levels are
// looked up first. The index, if present, is permuted along with the rows.
func (f *Frame) SortRows(by ...string) (*Frame, error) {
	keys := make([][]any, 0, len(by))
	for _, name := range by {
		if f.index != nil {
			if level, ok := f.index.Level(name); ok {
				keys = append(keys, level)
				continue
			}
		}
		vals, ok := f.cols[name]
		if !ok {
			return nil, fmt.Errorf("frame: sort key %q is neither an index level nor a column", name)
		}
		keys = append(keys, vals)
	}

	order := make([]int, f.rows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ri, rj := order[i], order[j]
		for _, key := range keys {
			switch c := compareValues(key[ri], key[rj]); {
			case c < 0:
				return true
			case c > 0:
				return false
			}
		}
		return false
	})

	g := &Frame{
		names: f.Columns(),
		cols:  make(map[string][]any, len(f.names)),
		types: make(map[string]reflect.Type, len(f.names)),
		rows:  f.rows,
	}
	for name, vals := range f.cols {
		g.cols[name] = permute(vals, order)
		g.types[name] = f.types[name]
	}
	if f.index != nil {
		g.index = f.index.permute(order)
	}
	return g, nil
}

func (f *Frame) shallowCopy() *Frame {
	g := &Frame{
		names: f.Columns(),
		cols:  make(map[string][]any, len(f.names)),
		types: make(map[string]reflect.Type, len(f.names)),
		index: f.index,
		rows:  f.rows,
	}
	for name, vals := range f.cols {
		g.cols[name] = vals
		g.types[name] = f.types[name]
	}
	return g
}

func permute(vals []any, order []int) []any {
	out := make([]any, len(vals))
	for i, src := range order {
		out[i] = vals[src]
	}
	return out
}
