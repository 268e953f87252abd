// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package patch

import (
	"znkr.io/patch/internal/myers"
	"znkr.io/patch/internal/ranges"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // The covered elements are present in both inputs.
	Delete           // The covered elements are removed from the old input.
	Insert           // The covered elements are added in the new input.
)

// A Span is a maximal run of consecutive elements covered by a single edit operation.
//
// Seq is a borrowed view into the input the span was drawn from: the old input for Equal and
// Delete spans, the new input for Insert spans. Spans never copy input elements.
type Span[T any] struct {
	Op  Op
	Seq T
}

// Slices compares the elements of x and y and returns a minimal difference (fewest deleted plus
// inserted elements) as ordered spans.
//
// The concatenation of all Equal and Delete spans is exactly x; removing the Delete spans and
// keeping the Insert spans in their place yields exactly y. Identical inputs produce a single
// Equal span, a single empty input a single Delete or Insert span, and two empty inputs no spans
// at all.
//
// The output is deterministic for identical inputs, but the particular minimal diff chosen may
// change between minor versions. DO NOT rely on the output being stable.
func Slices[E comparable](x, y []E) []Span[[]E] {
	rs := myers.Diff(len(x), len(y), func(s, t int) bool { return x[s] == y[t] })
	rs = ranges.Compact(rs)
	if len(rs) == 0 {
		return nil
	}
	out := make([]Span[[]E], 0, len(rs))
	for _, r := range rs {
		switch r.Op {
		case ranges.Equal:
			out = append(out, Span[[]E]{Equal, x[r.LowX:r.HighX]})
		case ranges.Delete:
			out = append(out, Span[[]E]{Delete, x[r.LowX:r.HighX]})
		case ranges.Insert:
			out = append(out, Span[[]E]{Insert, y[r.LowY:r.HighY]})
		default:
			panic("never reached")
		}
	}
	return out
}

// Text compares x and y byte by byte and returns a minimal difference as ordered spans of
// sub-strings of the inputs.
//
// For a line-by-line comparison of text, see [Lines].
func Text(x, y string) []Span[string] {
	rs := myers.Diff(len(x), len(y), func(s, t int) bool { return x[s] == y[t] })
	rs = ranges.Compact(rs)
	if len(rs) == 0 {
		return nil
	}
	out := make([]Span[string], 0, len(rs))
	for _, r := range rs {
		switch r.Op {
		case ranges.Equal:
			out = append(out, Span[string]{Equal, x[r.LowX:r.HighX]})
		case ranges.Delete:
			out = append(out, Span[string]{Delete, x[r.LowX:r.HighX]})
		case ranges.Insert:
			out = append(out, Span[string]{Insert, y[r.LowY:r.HighY]})
		default:
			panic("never reached")
		}
	}
	return out
}
