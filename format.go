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
	"fmt"
	"strings"
)

const (
	prefixContext = " "
	prefixDelete  = "-"
	prefixInsert  = "+"
)

// String renders the patch in unified format: an optional ---/+++ file header followed by the
// hunks, each introduced by an @@ header. An empty patch renders as the empty string.
func (p *Patch) String() string {
	var f Formatter
	return f.Format(p)
}

// A Formatter renders a [Patch] as unified-diff text. The zero value renders plain text.
type Formatter struct {
	color bool
}

// WithColor returns a copy of the formatter that colors its output using ANSI SGR escape
// sequences: hunk headers in cyan, deletions in red, insertions in green.
//
// It's the responsibility of the caller to ensure that the underlying terminal supports these
// sequences.
func (f Formatter) WithColor() Formatter {
	f.color = true
	return f
}

// ANSI SGR parameters, see https://en.wikipedia.org/wiki/ANSI_escape_code#SGR.
const (
	sgrReset = "\x1b[0m"
	sgrCyan  = "\x1b[36m"
	sgrRed   = "\x1b[31m"
	sgrGreen = "\x1b[32m"
)

// Format renders p in unified format.
func (f Formatter) Format(p *Patch) string {
	var sb strings.Builder
	if p.OldName != "" || p.NewName != "" {
		fmt.Fprintf(&sb, "--- %s\n+++ %s\n", p.OldName, p.NewName)
	}
	for _, h := range p.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldRange.Start, h.OldRange.Len, h.NewRange.Start, h.NewRange.Len)
		f.write(&sb, sgrCyan, header)
		for _, line := range h.Lines {
			switch line.Op {
			case Equal:
				f.write(&sb, "", prefixContext+line.Text)
			case Delete:
				f.write(&sb, sgrRed, prefixDelete+line.Text)
			case Insert:
				f.write(&sb, sgrGreen, prefixInsert+line.Text)
			default:
				panic("never reached")
			}
		}
	}
	return sb.String()
}

// write writes one output line, coloring it with the given SGR sequence if coloring is enabled.
func (f Formatter) write(sb *strings.Builder, sgr, s string) {
	if f.color && sgr != "" {
		sb.WriteString(sgr)
		sb.WriteString(s)
		sb.WriteString(sgrReset)
	} else {
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
}
