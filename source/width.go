// Copyright 2020-2025 Buf Technologies, Inc.
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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Tabstop is the distance between tab stops, in terminal columns.
const Tabstop = 4

// Columns returns the column reached by printing text to a terminal starting
// at column col, counting from zero.
//
// Tabs advance to the next tab stop. Everything else is measured a grapheme
// cluster at a time, so combining sequences and wide runes inside selectors or
// strings land where a terminal would draw them.
func Columns(col int, text string) int {
	first := true
	for chunk := range strings.SplitSeq(text, "\t") {
		if !first {
			col += Tabstop - col%Tabstop
		}
		first = false
		col += uniseg.StringWidth(chunk)
	}
	return col
}

// ExpandTabs replaces the tabs in line with spaces, consistently with
// [Columns].
func ExpandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var out strings.Builder
	col := 0
	first := true
	for chunk := range strings.SplitSeq(line, "\t") {
		if !first {
			n := Tabstop - col%Tabstop
			out.WriteString(strings.Repeat(" ", n))
			col += n
		}
		first = false
		out.WriteString(chunk)
		col += uniseg.StringWidth(chunk)
	}
	return out.String()
}
