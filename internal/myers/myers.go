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

package myers

import (
	"math"

	"znkr.io/patch/internal/ranges"
)

// Diff computes a shortest edit script transforming a sequence x of length n into a sequence y of
// length m and returns it as ordered tagged ranges. Elements are compared with eq, which is
// called with an index into x and an index into y. Working with indices instead of elements keeps
// the algorithm independent of the element representation: callers diff slices, strings, or
// interned line ids with the same search.
//
// The result covers both inputs completely: the x-spans of all Equal and Delete ranges partition
// [0, n) in order, the y-spans of all Equal and Insert ranges partition [0, m). The
// divide-and-conquer strategy may emit adjacent ranges with the same operation; use
// [ranges.Compact] to normalize the output.
func Diff(n, m int, eq func(s, t int) bool) []ranges.Range {
	if n == 0 && m == 0 {
		return nil
	}

	diagonals := n + m
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	d := differ{
		eq: eq,
		vf: buf[:vlen],
		vb: buf[vlen:],
		v0: diagonals + 1, // +1 for the middle point
	}
	d.compare(0, n, 0, m)
	return d.out
}

type differ struct {
	eq func(s, t int) bool

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to k0 = v0+k in [0, 2*d]. The endpoints only store the s-coordinate
	// since t = s - k.
	vf, vb []int
	v0     int

	// Edit script in x-then-y order.
	out []ranges.Range
}

func (d *differ) emit(op ranges.Op, lowX, highX, lowY, highY int) {
	d.out = append(d.out, ranges.Range{Op: op, LowX: lowX, HighX: highX, LowY: lowY, HighY: highY})
}

// compare appends the ranges of an optimal edit script for the rect (smin, tmin) to (smax, tmax)
// to the output, in order.
func (d *differ) compare(smin, smax, tmin, tmax int) {
	// Strip the common prefix and emit it as a single Equal range.
	s, t := smin, tmin
	for s < smax && t < tmax && d.eq(s, t) {
		s++
		t++
	}
	if s > smin {
		d.emit(ranges.Equal, smin, s, tmin, t)
		smin, tmin = s, t
	}

	// Strip the common suffix. The corresponding Equal range is emitted after the middle part
	// below to keep the output ordered.
	sufX, sufY := smax, tmax
	for smax > smin && tmax > tmin && d.eq(smax-1, tmax-1) {
		smax--
		tmax--
	}

	switch {
	case smin == smax && tmin == tmax:
		// Both sides are empty, nothing left to do.
	case smin == smax:
		d.emit(ranges.Insert, smin, smin, tmin, tmax)
	case tmin == tmax:
		d.emit(ranges.Delete, smin, smax, tmin, tmin)
	default:
		// Use split to divide the input into three pieces:
		//
		//   (1) A, possibly empty, rect (smin, tmin) to (s0, t0)
		//   (2) A, possibly empty, sequence of diagonals (matches) (s0, t0) to (s1, t1)
		//   (3) A, possibly empty, rect (s1, t1) to (smax, tmax)
		//
		// and recurse into (1) and (3).
		s0, s1, t0, t1 := d.split(smin, smax, tmin, tmax)
		d.compare(smin, s0, tmin, t0)
		if s1 > s0 {
			d.emit(ranges.Equal, s0, s1, t0, t1)
		}
		d.compare(s1, smax, t1, tmax)
	}

	if sufX > smax {
		d.emit(ranges.Equal, smax, sufX, tmax, sufY)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (d *differ) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	eq := d.eq
	vf, vb := d.vf, d.vb
	v0 := d.v0

	// Bounds for k. Since t = s - k, the min and max for k follow from k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// Number all diagonals with consistent k's by centering the forwards and backwards searches
	// around different midpoints, so that the overlap checks need no k conversion.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The optimal diff length is odd or even as (N-M) is odd or even. This decides when to check
	// for path overlaps.
	odd := (N-M)%2 != 0

	// Since split is never called with a common prefix or suffix, x != y within the rect and
	// there is no 0-path. The d=0 iteration reduces to the trivial endpoints below, so the search
	// starts at d=1 which keeps special handling of d == 0 out of the hot k-loops.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for dist := 1; ; dist++ {
		// Forwards iteration: find the furthest reaching d-path for every diagonal k. The bounds
		// on k are kept inside the edit grid, adjusting fmin and fmax whenever the search would
		// leave it. The border elements of the v-array are seeded so that the grid boundary falls
		// out of the same logic as every other diagonal.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// A furthest reaching d-path on diagonal k is a furthest reaching (d-1)-path on
			// diagonal k-1 followed by a horizontal edge, or one on diagonal k+1 followed by a
			// vertical edge, followed by as many diagonal edges as possible. Taking the
			// horizontal edge on ties prioritizes deletions over insertions and makes the output
			// deterministic.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			hs, ht := s, t
			for s < smax && t < tmax && eq(s, t) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return hs, s, ht, t
			}
		}

		// Backwards iteration, analogous to the forwards iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			hs, ht := s, t
			for s > smin && t > tmin && eq(s-1, t-1) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, hs, t, ht
			}
		}
	}
}
