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

package writer

// Option is a set of constructs that a [Writer] may keep or drop.
type Option uint8

const (
	// RedundantRules keeps rules with empty bodies, and rule lists made up
	// only of such rules.
	RedundantRules Option = 1 << iota
	// TrailingSemicolon keeps the semicolon after the last declaration in a
	// block.
	TrailingSemicolon
	// QuotedFamilyNames quotes named font families, even when they would be
	// valid as bare identifiers.
	QuotedFamilyNames
	// LeadingZero keeps the zero in front of a fractional number, as in 0.5.
	LeadingZero
	// ZeroUnits keeps the unit on a zero length, as in 0px.
	ZeroUnits
	// LongColors writes colors as they were written, instead of their
	// shortest equivalent form.
	LongColors

	// AllOptions keeps everything.
	AllOptions = RedundantRules | TrailingSemicolon | QuotedFamilyNames |
		LeadingZero | ZeroUnits | LongColors
)

// Options configures a [Printer].
type Options struct {
	// Whether to collapse whitespace and newlines to the syntactic minimum.
	Minify bool

	// Which optional constructs to write.
	Output Option

	// The string to indent nested blocks by. Defaults to two spaces.
	Indent string
}

// Canonical is the lossless policy: every construct is kept, blocks are
// broken onto their own lines and indented.
var Canonical = Options{Output: AllOptions}

// Minified is the smallest-output policy.
var Minified = Options{Minify: true}

// WithDefaults replaces any unset (read: zero value) fields of an Options which
// specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}
