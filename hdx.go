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

package hdx

import (
	"io"
	"strings"

	"github.com/maraisr/hdx/css"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/writer"
)

// Result is a parsed stylesheet together with the file it came from and the
// diagnostics produced while parsing it.
type Result struct {
	File   *source.File
	Sheet  css.StyleSheet
	Report report.Report
}

// Parse parses text as the contents of the file at path.
//
// Parsing never fails outright: malformed constructs are dropped or kept
// verbatim, and described in the returned Result's Report.
func Parse(path, text string) *Result {
	sheet, r := css.Parse(text)
	r.Sort()
	return &Result{
		File:   source.NewFile(path, text),
		Sheet:  sheet,
		Report: r,
	}
}

// Write writes the stylesheet to out under the given options.
func (r *Result) Write(out io.Writer, options writer.Options) error {
	p := writer.New(out, options)
	if err := r.Sheet.WriteCSS(p); err != nil {
		return err
	}
	return p.Flush()
}

// String writes the stylesheet to a string under the given options.
func (r *Result) String(options writer.Options) string {
	var out strings.Builder
	_ = r.Write(&out, options)
	return out.String()
}

// Index builds a span index over the stylesheet.
func (r *Result) Index() *css.Index {
	return css.NewIndex(r.Sheet)
}

// Format returns the canonical form of text.
func Format(text string) (string, report.Report) {
	res := Parse("", text)
	return res.String(writer.Canonical), res.Report
}

// Minify returns the smallest form of text that has the same meaning.
func Minify(text string) (string, report.Report) {
	res := Parse("", text)
	return res.String(writer.Minified), res.Report
}
