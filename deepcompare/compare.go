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
	"errors"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/ledona/go-misc/data/frame"
)

// Compare reports whether a and b are deeply equal under the shape-aware
// policy: tabular frames cell by cell after normalization, object-like
// values attribute by attribute, mappings key by key, sequences element by
// element, everything else by equality.
//
// In strict mode (the default) a mismatch comes back as a non-nil typed
// error carrying the breadcrumb path to the divergent leaf; with NonStrict a
// mismatch yields ok == false and a nil error. ConfigurationErrors are
// returned in both modes.
func Compare(a, b any, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if err := startChecks(o); err != nil {
		return false, err
	}
	return finish(compareValue(a, b, nil, o, true), o)
}

// CompareSequences compares two ordered collections: lengths must match,
// then elements are compared pairwise by Compare's rules. Unlike mapping
// comparison this stops at the first mismatch, and a length mismatch is
// itself reported (with both lengths) before any element is examined.
func CompareSequences(a, b any, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if err := startChecks(o); err != nil {
		return false, err
	}
	for i, v := range []any{a, b} {
		s, err := classify(v)
		if err != nil {
			return false, err
		}
		if s != ShapeSequence {
			return false, &ConfigurationError{
				Reason: fmt.Sprintf("CompareSequences operand %d is %s, not a sequence", i+1, s),
			}
		}
	}
	return finish(compareSequences(a, b, nil, o), o)
}

// startChecks runs the per-call preconditions shared by every entry point:
// option-combination validity and the strict-without-assertions guard.
func startChecks(o *options) error {
	if err := o.validate(); err != nil {
		return err
	}
	return checkStrictAllowed(o)
}

// finish converts the internal error-or-nil result to the public
// (ok, err) form per the strictness setting. Configuration errors always
// surface.
func finish(err error, o *options) (bool, error) {
	if err == nil {
		return true, nil
	}
	var cfg *ConfigurationError
	if errors.As(err, &cfg) {
		return false, err
	}
	if o.strict {
		return false, err
	}
	return false, nil
}

// compareValue is the recursive heart of the comparator. It classifies both
// operands, fails on incompatible shapes, and dispatches. top marks the
// outermost call, where the caller's policy options apply; recursion always
// runs under default policies so intermediate frames never swallow
// breadcrumb information.
func compareValue(a, b any, path []string, o *options, top bool) error {
	sa, err := classify(a)
	if err != nil {
		return err
	}
	sb, err := classify(b)
	if err != nil {
		return err
	}
	if sa != sb {
		return &ShapeMismatchError{
			Label:  o.label,
			Path:   path,
			Reason: fmt.Sprintf("shapes differ: first is %s, second is %s", sa, sb),
		}
	}
	switch sa {
	case ShapeTabular:
		return compareFrames(a.(*frame.Frame), b.(*frame.Frame), path, o, top)
	case ShapeObject:
		return compareObjects(a, b, path, o, top)
	case ShapeMapping:
		return compareMappings(a, b, path, o, top)
	case ShapeSequence:
		return compareSequences(a, b, path, o)
	}
	return compareScalars(a, b, path, o)
}

// compareObjects compares attribute by attribute using the field list of the
// first operand (or the explicit FieldNames list at the top level),
// recursing into each field value. It stops at the first mismatch.
func compareObjects(a, b any, path []string, o *options, top bool) error {
	names := o.fieldNames
	if !top || names == nil {
		var ok bool
		if names, ok = fieldNamesOf(a); !ok {
			return &ConfigurationError{
				Reason: fmt.Sprintf("%T offers no named-field access", a),
			}
		}
	}
	for _, name := range names {
		av, aok := fieldOf(a, name)
		if !aok {
			return &ShapeMismatchError{
				Label:  o.label,
				Path:   path,
				Reason: fmt.Sprintf("first operand has no attribute %q", name),
			}
		}
		bv, bok := fieldOf(b, name)
		if !bok {
			return &ShapeMismatchError{
				Label:  o.label,
				Path:   path,
				Reason: fmt.Sprintf("second operand has no attribute %q", name),
			}
		}
		if err := compareValue(av, bv, extend(path, name), o.child(), false); err != nil {
			return err
		}
	}
	return nil
}

// compareSequences requires equal lengths, then compares pairwise at
// corresponding indices, stopping at the first mismatch.
func compareSequences(a, b any, path []string, o *options) error {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Len() != vb.Len() {
		return &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf(
				"lengths do not match: first has length %d, second has length %d",
				va.Len(), vb.Len()),
		}
	}
	for i := 0; i < va.Len(); i++ {
		elemPath := extend(path, fmt.Sprintf("[%d]", i))
		err := compareValue(va.Index(i).Interface(), vb.Index(i).Interface(), elemPath, o.child(), false)
		if err != nil {
			return err
		}
	}
	return nil
}

func compareScalars(a, b any, path []string, o *options) error {
	if leafEqual(a, b) {
		return nil
	}
	return &ValueMismatchError{
		Label:  o.label,
		Path:   path,
		A:      a,
		B:      b,
		Detail: safeDiff(a, b),
	}
}

// leafEqual is the scalar equality check. go-cmp handles types with their
// own Equal methods (time.Time most notably); values it cannot compare fall
// back to reflect.DeepEqual.
func leafEqual(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// extend returns path plus one more breadcrumb segment, never aliasing the
// input's backing array (errors hold on to their path slices).
func extend(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}

// safeDiff renders a go-cmp diff when the values admit one; values cmp
// refuses (unexported fields without Equal) just get no extra detail.
func safeDiff(a, b any) (d string) {
	if a == nil || b == nil || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return ""
	}
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()
	return cmp.Diff(a, b)
}
