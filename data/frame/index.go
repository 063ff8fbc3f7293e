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

import "fmt"

// Index is a row index for a Frame: either a plain single-level index (whose
// name may be empty) or a composite index of two or more named levels.
type Index struct {
	names  []string
	levels [][]any
}

// NewIndex returns a plain single-level index. The name may be empty.
func NewIndex(name string, values []any) *Index {
	return &Index{
		names:  []string{name},
		levels: [][]any{append([]any(nil), values...)},
	}
}

// NewMultiIndex returns a composite index. At least two levels are required,
// every level must be named, and all levels must have the same length.
func NewMultiIndex(names []string, levels [][]any) (*Index, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("frame: composite index needs at least 2 levels, got %d", len(names))
	}
	if len(names) != len(levels) {
		return nil, fmt.Errorf("frame: %d index names but %d levels", len(names), len(levels))
	}
	ix := &Index{}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("frame: composite index level %d has no name", i)
		}
		if len(levels[i]) != len(levels[0]) {
			return nil, fmt.Errorf(
				"frame: index level %q has %d entries, level %q has %d",
				name, len(levels[i]), names[0], len(levels[0]))
		}
		ix.names = append(ix.names, name)
		ix.levels = append(ix.levels, append([]any(nil), levels[i]...))
	}
	return ix, nil
}

// IsMulti reports whether the index is composite (more than one level).
func (ix *Index) IsMulti() bool { return len(ix.names) > 1 }

// Names returns the level names in order. A plain index has exactly one name,
// possibly empty.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Len returns the number of index entries (one per frame row).
func (ix *Index) Len() int {
	if len(ix.levels) == 0 {
		return 0
	}
	return len(ix.levels[0])
}

// Level returns a copy of the values of the named level.
func (ix *Index) Level(name string) ([]any, bool) {
	for i, n := range ix.names {
		if n == name {
			return append([]any(nil), ix.levels[i]...), true
		}
	}
	return nil, false
}

// WithName returns a copy of a plain index with its level renamed. It panics
// on a composite index.
func (ix *Index) WithName(name string) *Index {
	if ix.IsMulti() {
		panic("frame: WithName on composite index")
	}
	return NewIndex(name, ix.levels[0])
}

func (ix *Index) clone() *Index {
	if ix == nil {
		return nil
	}
	out := &Index{names: append([]string(nil), ix.names...)}
	for _, level := range ix.levels {
		out.levels = append(out.levels, append([]any(nil), level...))
	}
	return out
}

func (ix *Index) permute(order []int) *Index {
	out := &Index{names: append([]string(nil), ix.names...)}
	for _, level := range ix.levels {
		out.levels = append(out.levels, permute(level, order))
	}
	return out
}
