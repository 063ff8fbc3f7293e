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
	"sort"
	"strings"

	"github.com/ledona/go-misc/data/frame"
)

// CompareFrames compares two tabular frames.
//
// By default column name sequences must match positionally, row order is
// normalized away (rows are sorted by index levels, if any and not ignored,
// then by all columns in sorted-name order), and index shape and content
// must match. See Columns, IgnoreColumnOrder, CheckRowOrder and IgnoreIndex
// for the toggles. Column element types must always match. All normalization
// operates on copies; the operands are never mutated.
func CompareFrames(a, b *frame.Frame, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if err := startChecks(o); err != nil {
		return false, err
	}
	return finish(compareFrames(a, b, nil, o, true), o)
}

func compareFrames(a, b *frame.Frame, path []string, o *options, top bool) error {
	if a == nil || b == nil {
		if a == b {
			return nil
		}
		return &ShapeMismatchError{Label: o.label, Path: path, Reason: "one frame is nil"}
	}

	var err error
	if a, b, err = normalizeColumns(a, b, path, o); err != nil {
		return err
	}

	if o.ignoreIndex {
		a, b = a.ResetIndex(), b.ResetIndex()
	} else if err := checkIndexShape(a, b, path, o); err != nil {
		return err
	}

	if o.ignoreRowOrder {
		if a, b, err = sortRows(a, b); err != nil {
			return err
		}
	}

	if err := a.Diff(b); err != nil {
		return &ValueMismatchError{
			Label:  o.label,
			Path:   path,
			Detail: "frames differ: " + err.Error(),
		}
	}
	return nil
}

// normalizeColumns applies the column policy: an explicit Columns selection,
// strict positional name equality, or order-insensitive set equality
// followed by reordering both frames into sorted-name column order.
func normalizeColumns(a, b *frame.Frame, path []string, o *options) (*frame.Frame, *frame.Frame, error) {
	if len(o.columns) > 0 {
		for i, f := range []*frame.Frame{a, b} {
			var missing []string
			for _, name := range o.columns {
				if !f.HasColumn(name) {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				which := "first"
				if i == 1 {
					which = "second"
				}
				return nil, nil, &ShapeMismatchError{
					Label: o.label,
					Path:  path,
					Reason: fmt.Sprintf("%s frame does not have requested columns: %s",
						which, strings.Join(missing, ", ")),
				}
			}
		}
		sa, err := a.Select(o.columns...)
		if err != nil {
			return nil, nil, &ConfigurationError{Reason: err.Error()}
		}
		sb, err := b.Select(o.columns...)
		if err != nil {
			return nil, nil, &ConfigurationError{Reason: err.Error()}
		}
		return sa, sb, nil
	}

	if !o.ignoreColumnOrder {
		ca, cb := a.Columns(), b.Columns()
		if !reflect.DeepEqual(ca, cb) {
			return nil, nil, &ShapeMismatchError{
				Label: o.label,
				Path:  path,
				Reason: fmt.Sprintf("column sequences do not match: [%s] vs [%s]",
					strings.Join(ca, ", "), strings.Join(cb, ", ")),
			}
		}
		return a, b, nil
	}

	var onlyA, onlyB []string
	for _, name := range a.Columns() {
		if !b.HasColumn(name) {
			onlyA = append(onlyA, name)
		}
	}
	for _, name := range b.Columns() {
		if !a.HasColumn(name) {
			onlyB = append(onlyB, name)
		}
	}
	if len(onlyA) > 0 || len(onlyB) > 0 {
		sort.Strings(onlyA)
		sort.Strings(onlyB)
		return nil, nil, &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf(
				"column names don't match: only in first: [%s]; only in second: [%s]",
				strings.Join(onlyA, ", "), strings.Join(onlyB, ", ")),
		}
	}
	return a.SortedColumns(), b.SortedColumns(), nil
}

// checkIndexShape verifies that both frames agree on index presence, arity
// (plain vs composite) and level names.
func checkIndexShape(a, b *frame.Frame, path []string, o *options) error {
	ia, ib := a.Index(), b.Index()
	if (ia == nil) != (ib == nil) {
		return &ShapeMismatchError{
			Label:  o.label,
			Path:   path,
			Reason: "one frame has a row index, the other does not",
		}
	}
	if ia == nil {
		return nil
	}
	if ia.IsMulti() != ib.IsMulti() {
		return &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf("index shapes differ: first composite=%t, second composite=%t",
				ia.IsMulti(), ib.IsMulti()),
		}
	}
	if !reflect.DeepEqual(ia.Names(), ib.Names()) {
		return &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf("index names differ: %v vs %v", ia.Names(), ib.Names()),
		}
	}
	return nil
}

// sortRows normalizes row order in both frames: rows are sorted by the index
// level names (a plain unnamed index is labelled "INDEX" first) followed by
// all columns in sorted-name order. Frames without an explicit index sort by
// columns alone.
func sortRows(a, b *frame.Frame) (*frame.Frame, *frame.Frame, error) {
	sortBy := a.Columns()
	sort.Strings(sortBy)

	if ia := a.Index(); ia != nil && b.Index() != nil {
		names := ia.Names()
		if !ia.IsMulti() && names[0] == "" {
			var err error
			if a, err = a.WithIndex(ia.WithName("INDEX")); err != nil {
				return nil, nil, err
			}
			if b, err = b.WithIndex(b.Index().WithName("INDEX")); err != nil {
				return nil, nil, err
			}
			names = []string{"INDEX"}
		}
		sortBy = append(names, sortBy...)
	}

	sa, err := a.SortRows(sortBy...)
	if err != nil {
		return nil, nil, err
	}
	sb, err := b.SortRows(sortBy...)
	if err != nil {
		return nil, nil, err
	}
	return sa, sb, nil
}
