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

// Option adjusts a single comparison call. The policy-carrying options
// (FieldNames, Keys, Subset, IgnoreKeys, Columns and the tabular toggles)
// apply to the outermost value only; recursion into nested values always
// uses the default policies, while the label and strictness carry through.
type Option func(*options)

type options struct {
	label  string
	strict bool

	// object-like
	fieldNames []string

	// mapping
	subset     bool
	keys       []string
	ignoreKeys []string

	// tabular
	columns           []string
	ignoreColumnOrder bool
	ignoreRowOrder    bool
	ignoreIndex       bool
}

func buildOptions(opts []Option) *options {
	o := &options{
		strict:         true,
		ignoreRowOrder: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validate rejects mutually exclusive option combinations up front.
func (o *options) validate() error {
	if len(o.keys) > 0 && !o.subset {
		return &ConfigurationError{Reason: "Keys requires Subset"}
	}
	if o.subset && len(o.ignoreKeys) > 0 {
		return &ConfigurationError{Reason: "IgnoreKeys cannot be combined with Subset"}
	}
	if len(o.columns) > 0 && !o.ignoreColumnOrder {
		return &ConfigurationError{Reason: "Columns requires IgnoreColumnOrder"}
	}
	return nil
}

// child returns the options recursion runs under: same label and strictness,
// default policies.
func (o *options) child() *options {
	return &options{label: o.label, strict: o.strict, ignoreRowOrder: true}
}

// Label prefixes every failure message of this comparison with a
// human-readable context string.
func Label(label string) Option {
	return func(o *options) { o.label = label }
}

// NonStrict makes mismatches come back as a false report instead of an
// error. Configuration errors are still returned.
func NonStrict() Option {
	return func(o *options) { o.strict = false }
}

// FieldNames supplies an explicit attribute list for object-like comparison,
// overriding the operand's own field enumeration. Useful for values whose
// interesting fields are a subset of what they expose.
func FieldNames(names ...string) Option {
	return func(o *options) { o.fieldNames = names }
}

// Subset switches mapping comparison to the subset key policy: only the
// first operand's keys (or the Keys allow-list) must be present in both
// operands; extra keys on either side are ignored.
func Subset() Option {
	return func(o *options) { o.subset = true }
}

// Keys names the mapping keys to compare under the Subset policy. Using Keys
// without Subset is a configuration error.
func Keys(keys ...string) Option {
	return func(o *options) { o.keys = keys }
}

// IgnoreKeys excludes the named keys from the exact key-set check and from
// value comparison. It cannot be combined with Subset.
func IgnoreKeys(keys ...string) Option {
	return func(o *options) { o.ignoreKeys = keys }
}

// Columns restricts tabular comparison to the named columns, which must be
// present in both frames. Requires IgnoreColumnOrder.
func Columns(names ...string) Option {
	return func(o *options) { o.columns = names }
}

// IgnoreColumnOrder makes tabular comparison require matching column sets
// rather than matching column sequences; both frames are reordered into
// sorted-by-name column order before cell comparison.
func IgnoreColumnOrder() Option {
	return func(o *options) { o.ignoreColumnOrder = true }
}

// CheckRowOrder disables the default row-order normalization, so rows must
// already be aligned for two frames to compare equal.
func CheckRowOrder() Option {
	return func(o *options) { o.ignoreRowOrder = false }
}

// IgnoreIndex drops the row index from both frames before comparison, so
// index content never affects equality.
func IgnoreIndex() Option {
	return func(o *options) { o.ignoreIndex = true }
}
