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
	"strings"

	"znkr.io/patch/internal/myers"
	"znkr.io/patch/internal/ranges"
)

// Lines compares x and y line by line and returns the comparison as a [LineDiff].
//
// Every distinct line content is interned into a dense integer id before the comparison, so that
// the search compares integers instead of re-comparing line content. The interning table is
// scoped to this call.
func Lines(x, y string) *LineDiff {
	xlines := splitLines(x)
	ylines := splitLines(y)

	var c classifier
	xids := make([]int, len(xlines))
	for i, line := range xlines {
		xids[i] = c.classify(line)
	}
	yids := make([]int, len(ylines))
	for i, line := range ylines {
		yids[i] = c.classify(line)
	}

	rs := myers.Diff(len(xids), len(yids), func(s, t int) bool { return xids[s] == yids[t] })
	rs = ranges.Compact(rs)

	return &LineDiff{
		x:      xlines,
		y:      ylines,
		blocks: ranges.Blocks(rs),
	}
}

// classifier interns line content into dense integer ids: two lines receive the same id exactly
// if their content is byte-identical. Ids are assigned in first-seen order starting at 0.
type classifier struct {
	next int
	ids  map[string]int
}

func (c *classifier) classify(line string) int {
	if c.ids == nil {
		c.ids = make(map[string]int)
	}
	id, ok := c.ids[line]
	if !ok {
		id = c.next
		c.next++
		c.ids[line] = id
	}
	return id
}

// splitLines splits s on '\n' and strips the terminator from every line. A trailing line without
// a terminator counts as a line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	return lines
}

// A LineDiff is the result of comparing two texts line by line. Use [Lines] to create one.
type LineDiff struct {
	x, y   []string
	blocks []ranges.Block
}

// ToPatch expands every change block of the diff with up to context lines of unchanged text on
// either side, merges blocks whose context windows overlap into a single hunk, and returns the
// result as a [Patch].
//
// With context == 0, hunks contain only Delete and Insert lines. Growing context never increases
// the number of hunks, and a large enough context collapses all changes into a single hunk. A
// negative context counts as 0.
func (d *LineDiff) ToPatch(context int) Patch {
	context = max(0, context)

	var hunks []Hunk
	for i := 0; i < len(d.blocks); i++ {
		b := d.blocks[i]
		start1 := max(0, b.X0-context)
		start2 := max(0, b.Y0-context)
		end1, end2 := d.calcEnd(context, b.X1, b.Y1)

		var lines []Line
		for _, text := range d.y[start2:b.Y0] {
			lines = append(lines, Line{Equal, text})
		}
		for {
			for _, text := range d.x[b.X0:b.X1] {
				lines = append(lines, Line{Delete, text})
			}
			for _, text := range d.y[b.Y0:b.Y1] {
				lines = append(lines, Line{Insert, text})
			}

			if i+1 < len(d.blocks) {
				next := d.blocks[i+1]
				// If the next block's context window would start before this hunk's end,
				// rendering the two blocks separately would produce overlapping or ambiguous
				// hunks. Fill the gap with context lines instead (the gap is unchanged, so the
				// new side provides the text) and continue this hunk with the next block.
				if max(0, min(next.X0, len(d.x)-1)-context) < end1 {
					for j1, j2 := b.X1, b.Y1; j1 < next.X0 && j2 < next.Y0; j1, j2 = j1+1, j2+1 {
						lines = append(lines, Line{Equal, d.y[j2]})
					}
					end1, end2 = d.calcEnd(context, next.X1, next.Y1)
					b = next
					i++
					continue
				}
			}
			break
		}
		for _, text := range d.y[b.Y1:end2] {
			lines = append(lines, Line{Equal, text})
		}

		hunks = append(hunks, Hunk{
			OldRange: hunkRange(start1, end1),
			NewRange: hunkRange(start2, end2),
			Lines:    lines,
		})
	}
	return Patch{Hunks: hunks}
}

// calcEnd computes the end of the context window following a change block ending at (x1, y1).
// The window never reads past the end of either input; the smaller remaining length applies to
// both sides so that the trailing context stays symmetric.
func (d *LineDiff) calcEnd(context, x1, y1 int) (end1, end2 int) {
	post := min(context, len(d.x)-x1, len(d.y)-y1)
	return x1 + post, y1 + post
}

func hunkRange(start, end int) HunkRange {
	if n := end - start; n > 0 {
		return HunkRange{Start: start + 1, Len: n}
	}
	return HunkRange{Start: start, Len: 0}
}
