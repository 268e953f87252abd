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

// Package ranges contains the internal tagged-range representation that's produced by the myers
// package and is then translated to a user facing API. The representation is separate from the
// exported representation because it needs to solve a number of different problems: the
// divide-and-conquer diff emits fragmented ranges that need to be normalized, and patch assembly
// needs coalesced change blocks with absolute positions.
package ranges

import "fmt"

// Op describes the operation of a single range.
type Op uint8

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Range is a run of consecutive elements covered by a single operation.
//
// For the input slices x and y, [LowX, HighX) is the covered index span in x and [LowY, HighY)
// the covered span in y. A Delete covers no elements of y and an Insert no elements of x; the
// corresponding span is empty. For an Equal both spans have the same length.
//
// The ordered concatenation of the x-spans of all Equal and Delete ranges of a diff covers
// [0, len(x)) without gaps or overlaps, and likewise the y-spans of all Equal and Insert ranges
// cover [0, len(y)).
type Range struct {
	Op           Op
	LowX, HighX int
	LowY, HighY int
}

// LenX returns the number of elements of x covered by the range.
func (r Range) LenX() int { return r.HighX - r.LowX }

// LenY returns the number of elements of y covered by the range.
func (r Range) LenY() int { return r.HighY - r.LowY }

func (r Range) empty() bool {
	switch r.Op {
	case Delete:
		return r.LenX() == 0
	case Insert:
		return r.LenY() == 0
	default:
		return r.LenX() == 0 && r.LenY() == 0
	}
}

// Compact normalizes a diff in place into its canonical display form without changing its
// meaning:
//
//   - zero-length ranges are dropped,
//   - adjacent ranges with the same operation are merged (the divide-and-conquer diff may emit
//     them as separate fragments),
//   - at every change point, the Delete range is ordered before the Insert range.
//
// Compact is idempotent: compacting a compacted diff is a no-op.
func Compact(rs []Range) []Range {
	out := rs[:0]
	for _, r := range rs {
		if r.empty() {
			continue
		}
		n := len(out)
		switch {
		case n > 0 && out[n-1].Op == r.Op:
			// Extend only the side(s) the operation covers, a Delete covers no elements of y and
			// an Insert no elements of x.
			if r.Op != Insert {
				out[n-1].HighX = r.HighX
			}
			if r.Op != Delete {
				out[n-1].HighY = r.HighY
			}
		case n > 0 && r.Op == Delete && out[n-1].Op == Insert:
			// Canonicalize to Delete before Insert. If the range before the Insert is already a
			// Delete, the two Delete fragments are adjacent in x (the Insert in between covers no
			// elements of x) and can be merged directly.
			if n > 1 && out[n-2].Op == Delete {
				out[n-2].HighX = r.HighX
			} else {
				r.LowY, r.HighY = out[n-1].LowY, out[n-1].LowY
				out = append(out, out[n-1])
				out[n-1] = r
			}
		default:
			out = append(out, r)
		}
	}
	return out
}

// Block is a maximal run of Delete and Insert ranges uninterrupted by an Equal range, coalesced
// into one pair of absolute index spans: deleting x[X0:X1] and inserting y[Y0:Y1] at that
// position performs all edits of the run. Either span may be empty, but not both.
type Block struct {
	X0, X1 int
	Y0, Y1 int
}

// Blocks collapses a compacted diff into its change blocks, discarding Equal separators.
//
// The spans are absolute indices into x and y, not offsets relative to the preceding range.
func Blocks(rs []Range) []Block {
	var out []Block
	var b Block
	x, y := 0, 0
	open := false
	for _, r := range rs {
		switch r.Op {
		case Equal:
			if open {
				out = append(out, b)
				open = false
			}
			x += r.LenX()
			y += r.LenY()
		case Delete:
			n := r.LenX()
			if open {
				b.X1 += n
			} else {
				b = Block{x, x + n, y, y}
				open = true
			}
			x += n
		case Insert:
			n := r.LenY()
			if open {
				b.Y1 += n
			} else {
				b = Block{x, x, y, y + n}
				open = true
			}
			y += n
		}
	}
	if open {
		out = append(out, b)
	}
	return out
}
