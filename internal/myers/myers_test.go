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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/patch/internal/ranges"
)

func diffStrings(x, y []string) []ranges.Range {
	rs := Diff(len(x), len(y), func(s, t int) bool { return x[s] == y[t] })
	return ranges.Compact(rs)
}

// render translates a diff into one letter per covered element: M for a match, D for a deletion,
// I for an insertion.
func render(rs []ranges.Range) string {
	var sb strings.Builder
	for _, r := range rs {
		switch r.Op {
		case ranges.Equal:
			sb.WriteString(strings.Repeat("M", r.LenX()))
		case ranges.Delete:
			sb.WriteString(strings.Repeat("D", r.LenX()))
		case ranges.Insert:
			sb.WriteString(strings.Repeat("I", r.LenY()))
		}
	}
	return sb.String()
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "long-matching-middle",
			x:    strings.Split("x"+strings.Repeat("a", 60)+"y", ""),
			y:    strings.Split("w"+strings.Repeat("a", 60)+"it", ""),
			want: "DI" + strings.Repeat("M", 60) + "DII",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(diffStrings(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

// TestDiffRandomized checks the structural invariants and the minimality of the edit script for
// random inputs: the x-spans of Equal and Delete ranges must partition x in order, the y-spans of
// Equal and Insert ranges must partition y, Equal ranges must cover matching elements, and the
// number of edits must match the edit distance computed by an independent O(N·M)
// longest-common-subsequence table.
func TestDiffRandomized(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := make([]byte, rng.IntN(120))
			for s := range x {
				x[s] = 'a' + byte(rng.IntN(4))
			}
			y := make([]byte, rng.IntN(120))
			for t := range y {
				y[t] = 'a' + byte(rng.IntN(4))
			}

			rs := Diff(len(x), len(y), func(s, t int) bool { return x[s] == y[t] })
			checkInvariants(t, rs, x, y)

			edits := 0
			for _, r := range rs {
				switch r.Op {
				case ranges.Delete:
					edits += r.LenX()
				case ranges.Insert:
					edits += r.LenY()
				}
			}
			if want := len(x) + len(y) - 2*lcs(x, y); edits != want {
				t.Errorf("edit script has %d edits, want %d", edits, want)
			}
		})
	}
}

func FuzzDiff(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("a"))
	f.Add([]byte("aaaa"), []byte("aaaa"))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		rs := Diff(len(x), len(y), func(s, t int) bool { return x[s] == y[t] })
		checkInvariants(t, rs, x, y)
	})
}

func checkInvariants(t *testing.T, rs []ranges.Range, x, y []byte) {
	t.Helper()

	s, tt := 0, 0
	var rebuilt []byte
	for _, r := range rs {
		switch r.Op {
		case ranges.Equal:
			if r.LowX != s || r.LowY != tt {
				t.Fatalf("equal range (%d,%d) does not continue at cursor (%d,%d)", r.LowX, r.LowY, s, tt)
			}
			if r.LenX() != r.LenY() {
				t.Fatalf("equal range covers %d elements of x but %d of y", r.LenX(), r.LenY())
			}
			for i := range r.LenX() {
				if x[r.LowX+i] != y[r.LowY+i] {
					t.Fatalf("equal range covers non-matching elements at x[%d], y[%d]", r.LowX+i, r.LowY+i)
				}
			}
			rebuilt = append(rebuilt, x[r.LowX:r.HighX]...)
			s, tt = r.HighX, r.HighY
		case ranges.Delete:
			if r.LowX != s {
				t.Fatalf("delete range %d does not continue at cursor %d", r.LowX, s)
			}
			s = r.HighX
		case ranges.Insert:
			if r.LowY != tt {
				t.Fatalf("insert range %d does not continue at cursor %d", r.LowY, tt)
			}
			rebuilt = append(rebuilt, y[r.LowY:r.HighY]...)
			tt = r.HighY
		}
	}
	if s != len(x) || tt != len(y) {
		t.Fatalf("diff ends at (%d,%d), want (%d,%d)", s, tt, len(x), len(y))
	}
	if string(rebuilt) != string(y) {
		t.Fatalf("applying the edit script to x produced %q, want %q", rebuilt, y)
	}
}

// lcs returns the length of the longest common subsequence of x and y.
func lcs(x, y []byte) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for s := range x {
		for t := range y {
			if x[s] == y[t] {
				cur[t+1] = prev[t] + 1
			} else {
				cur[t+1] = max(prev[t+1], cur[t])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}
