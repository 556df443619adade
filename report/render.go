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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/maraisr/hdx/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool
}

// Render renders the diagnostics in report, which must refer to file.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings. The error return is an error when writing to the writer.
func (r Renderer) Render(file *source.File, report Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report {
		d := &report[i]
		level := d.Level
		if level == Warning && r.WarningsAreErrors {
			level = Error
		}
		switch level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}

		if _, err = io.WriteString(out, r.Diagnostic(file, d, level)); err != nil {
			return
		}
	}
	return
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(file *source.File, d *Diagnostic, level Level) string {
	var color, reset string
	if r.Colorize {
		reset = "\033[0m"
		switch level {
		case Error:
			color = "\033[1;91m"
		case Warning:
			color = "\033[1;93m"
		default:
			color = "\033[1;96m"
		}
	}

	loc := file.Location(d.Span.Start)
	var out strings.Builder
	fmt.Fprintf(&out, "%s:%v: %s%s[%v]%s: %s\n", file.Path(), loc, color, level, d.Kind, reset, d.Err)
	if r.Compact {
		return out.String()
	}

	// Underline the offending span on its first line.
	text := file.Text()
	lineStart := strings.LastIndexByte(text[:d.Span.Start], '\n') + 1
	lineEnd := strings.IndexByte(text[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += lineStart
	}
	line := text[lineStart:lineEnd]

	margin := source.Columns(0, text[lineStart:d.Span.Start])
	under := source.Columns(margin, text[d.Span.Start:min(d.Span.End, lineEnd)])

	fmt.Fprintf(&out, "  | %s\n", source.ExpandTabs(line))
	fmt.Fprintf(&out, "  | %s%s%s%s\n",
		strings.Repeat(" ", margin), color,
		strings.Repeat("^", max(1, under-margin)), reset)

	if len(d.Want) > 0 {
		fmt.Fprintf(&out, "  = expected %s\n", strings.Join(d.Want, " or "))
	}
	if d.Suggestion != "" {
		fmt.Fprintf(&out, "  = help: did you mean `%s`?\n", d.Suggestion)
	}
	for _, note := range d.Notes {
		fmt.Fprintf(&out, "  = note: %s\n", note)
	}
	return out.String()
}
