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

package css

import (
	"errors"
	"fmt"

	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
)

// ErrUnknownProperty diagnoses a declaration of a property with no known
// grammar.
type ErrUnknownProperty struct {
	Span       source.Span
	Got        string
	Suggestion string
}

// Error implements [error].
func (e ErrUnknownProperty) Error() string {
	return fmt.Sprintf("unknown property `%s`", e.Got)
}

// Kind implements [report.Diagnose].
func (e ErrUnknownProperty) Kind() report.Kind { return report.UnknownProperty }

// Diagnose implements [report.Diagnose].
func (e ErrUnknownProperty) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span), report.Got(e.Got), report.Suggest(e.Suggestion))
}

// ErrMisplacedCharset diagnoses an @charset rule anywhere but at the very
// start of a stylesheet.
type ErrMisplacedCharset struct {
	Span source.Span
}

// Error implements [error].
func (e ErrMisplacedCharset) Error() string {
	return "@charset must be the first thing in a stylesheet"
}

// Kind implements [report.Diagnose].
func (e ErrMisplacedCharset) Kind() report.Kind { return report.MisplacedCharset }

// Diagnose implements [report.Diagnose].
func (e ErrMisplacedCharset) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span))
}

// ErrUnknownAtRule diagnoses an at-rule with no known grammar. Such rules are
// kept as written.
type ErrUnknownAtRule struct {
	Span source.Span
	Got  string
}

// Error implements [error].
func (e ErrUnknownAtRule) Error() string {
	return fmt.Sprintf("unknown at-rule `@%s`", e.Got)
}

// Kind implements [report.Diagnose].
func (e ErrUnknownAtRule) Kind() report.Kind { return report.UnknownAtRule }

// Diagnose implements [report.Diagnose].
func (e ErrUnknownAtRule) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span), report.Got("@"+e.Got))
}

// ErrBadDeclaration diagnoses a declaration that was discarded because its
// value failed to parse.
type ErrBadDeclaration struct {
	Span source.Span // The whole discarded declaration.
	Err  error       // Why it was discarded.
}

// Error implements [error].
func (e ErrBadDeclaration) Error() string {
	return "invalid declaration: " + e.Err.Error()
}

// Unwrap returns the error the declaration was discarded for.
func (e ErrBadDeclaration) Unwrap() error {
	return e.Err
}

// Kind implements [report.Diagnose].
func (e ErrBadDeclaration) Kind() report.Kind { return report.BadDeclaration }

// Diagnose implements [report.Diagnose].
func (e ErrBadDeclaration) Diagnose(d *report.Diagnostic) {
	var cause report.Diagnose
	if errors.As(e.Err, &cause) {
		cause.Diagnose(d)
	} else {
		d.With(report.At(e.Span))
	}
	d.With(report.Note("discarded the declaration at offsets %d to %d", e.Span.Start, e.Span.End))
}
