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
	"sort"
	"strings"
)

// CompareMappings compares two mappings under a key policy.
//
// The default policy is exact: the key sets must be identical (minus any
// IgnoreKeys) or the comparison fails describing the keys missing from each
// side. With Subset only the first operand's keys, or the Keys allow-list,
// must be present in both operands, and extra keys are ignored.
//
// Per-key value mismatches are aggregated: every key is checked and all
// diverging keys are reported together in one AggregatedMismatchError. This
// is deliberately different from the fail-fast behavior of every other
// shape.
func CompareMappings(a, b any, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if err := startChecks(o); err != nil {
		return false, err
	}
	for i, v := range []any{a, b} {
		s, err := classify(v)
		if err != nil {
			return false, err
		}
		if s != ShapeMapping {
			return false, &ConfigurationError{
				Reason: fmt.Sprintf("CompareMappings operand %d is %s, not a mapping", i+1, s),
			}
		}
	}
	return finish(compareMappings(a, b, nil, o, true), o)
}

func compareMappings(a, b any, path []string, o *options, top bool) error {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type().Key() != vb.Type().Key() {
		return &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf("mapping key types differ: %s vs %s",
				va.Type().Key(), vb.Type().Key()),
		}
	}

	var checkKeys []reflect.Value
	if top && o.subset {
		keys, err := subsetKeys(va, vb, path, o)
		if err != nil {
			return err
		}
		checkKeys = keys
	} else {
		ignore := map[string]bool{}
		if top {
			for _, k := range o.ignoreKeys {
				ignore[k] = true
			}
		}
		keys, err := exactKeys(va, vb, ignore, path, o)
		if err != nil {
			return err
		}
		checkKeys = keys
	}

	// Deterministic key order keeps aggregated reports stable.
	sort.Slice(checkKeys, func(i, j int) bool {
		return fmt.Sprint(checkKeys[i].Interface()) < fmt.Sprint(checkKeys[j].Interface())
	})

	var mismatches []KeyMismatch
	for _, k := range checkKeys {
		av := va.MapIndex(k).Interface()
		bv := vb.MapIndex(k).Interface()
		keyPath := extend(path, fmt.Sprintf("[%v]", k.Interface()))
		if err := compareValue(av, bv, keyPath, o.child(), false); err != nil {
			// Configuration errors are never aggregated into a mismatch
			// report; they surface as-is in both modes.
			var cfg *ConfigurationError
			if errors.As(err, &cfg) {
				return err
			}
			mismatches = append(mismatches, KeyMismatch{Key: k.Interface(), A: av, B: bv})
		}
	}
	if len(mismatches) > 0 {
		return &AggregatedMismatchError{Label: o.label, Path: path, Mismatches: mismatches}
	}
	return nil
}

// subsetKeys resolves the key list for the subset policy (the Keys
// allow-list, or all of a's keys) and verifies every key is present in both
// operands.
func subsetKeys(va, vb reflect.Value, path []string, o *options) ([]reflect.Value, error) {
	var keys []reflect.Value
	if len(o.keys) > 0 {
		if va.Type().Key().Kind() != reflect.String {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("Keys requires string-keyed mappings, got %s", va.Type().Key()),
			}
		}
		for _, name := range o.keys {
			keys = append(keys, reflect.ValueOf(name))
		}
	} else {
		keys = va.MapKeys()
	}
	for i, operand := range []reflect.Value{va, vb} {
		var missing []string
		for _, k := range keys {
			if !operand.MapIndex(k).IsValid() {
				missing = append(missing, fmt.Sprintf("%v", k.Interface()))
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			which := "first"
			if i == 1 {
				which = "second"
			}
			return nil, &ShapeMismatchError{
				Label: o.label,
				Path:  path,
				Reason: fmt.Sprintf("%s mapping does not have keys: %s",
					which, strings.Join(missing, ", ")),
			}
		}
	}
	return keys, nil
}

// exactKeys verifies key-set equality (after removing ignored keys) and
// returns the keys to value-compare. A failure describes the symmetric
// difference: which keys each operand is missing.
func exactKeys(va, vb reflect.Value, ignore map[string]bool, path []string, o *options) ([]reflect.Value, error) {
	ignored := func(k reflect.Value) bool {
		s, ok := k.Interface().(string)
		return ok && ignore[s]
	}

	var keys []reflect.Value
	var onlyA, onlyB []string
	for _, k := range va.MapKeys() {
		if ignored(k) {
			continue
		}
		if vb.MapIndex(k).IsValid() {
			keys = append(keys, k)
		} else {
			onlyA = append(onlyA, fmt.Sprintf("%v", k.Interface()))
		}
	}
	for _, k := range vb.MapKeys() {
		if ignored(k) {
			continue
		}
		if !va.MapIndex(k).IsValid() {
			onlyB = append(onlyB, fmt.Sprintf("%v", k.Interface()))
		}
	}
	if len(onlyA) > 0 || len(onlyB) > 0 {
		sort.Strings(onlyA)
		sort.Strings(onlyB)
		return nil, &ShapeMismatchError{
			Label: o.label,
			Path:  path,
			Reason: fmt.Sprintf(
				"mapping keys don't match: only in first: [%s]; only in second: [%s]",
				strings.Join(onlyA, ", "), strings.Join(onlyB, ", ")),
		}
	}
	return keys, nil
}
