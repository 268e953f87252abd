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

// A Line is a single line of a [Hunk]: a context line (Equal), a line removed from the old text
// (Delete), or a line added in the new text (Insert).
//
// Text is the line content without its terminator, borrowed from the input the line was drawn
// from. Context lines are drawn from the new text; since context is unchanged, both inputs carry
// identical content there.
type Line struct {
	Op   Op
	Text string
}

// A HunkRange describes the region of one input covered by a hunk.
//
// When Len > 0, Start is the 1-based number of the first covered line. When the side contributes
// no lines (the hunk is a pure insertion or deletion on the other side), Len is 0 and Start is
// the number of the line after which the hunk applies, with 0 meaning the very beginning.
type HunkRange struct {
	Start int
	Len   int
}

// A Hunk is a contiguous region of a patch containing one or more changes together with their
// surrounding context lines.
type Hunk struct {
	OldRange HunkRange
	NewRange HunkRange
	Lines    []Line
}

// A Patch describes the difference between two texts as an ordered sequence of non-overlapping
// hunks in ascending position order.
//
// OldName and NewName are optional file labels. When both are empty, [Patch.String] renders no
// file header.
type Patch struct {
	OldName string
	NewName string
	Hunks   []Hunk
}
