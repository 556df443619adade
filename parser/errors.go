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

package parser

import (
	"fmt"
	"strings"

	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
)

// ErrUnexpected diagnoses a token that no production accepts at this point.
type ErrUnexpected struct {
	Span source.Span
	Got  string   // A description of the offending token.
	Want []string // Descriptions of what would have been accepted.
}

// Error implements [error].
func (e ErrUnexpected) Error() string {
	if len(e.Want) == 0 {
		return "unexpected " + e.Got
	}
	return fmt.Sprintf("unexpected %s, expected %s", e.Got, strings.Join(e.Want, " or "))
}

// Kind implements [report.Diagnose].
func (e ErrUnexpected) Kind() report.Kind { return report.UnexpectedToken }

// Diagnose implements [report.Diagnose].
func (e ErrUnexpected) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span), report.Got(e.Got), report.Want(e.Want...))
}

// ErrUnexpectedKeyword diagnoses an identifier that is not a member of the
// closed keyword set expected at this point.
type ErrUnexpectedKeyword struct {
	Span       source.Span
	Got        string
	Want       string // A description of the keyword set.
	Suggestion string // The nearest keyword in the set, if any.
}

// Error implements [error].
func (e ErrUnexpectedKeyword) Error() string {
	return fmt.Sprintf("unexpected keyword `%s`, expected %s", e.Got, e.Want)
}

// Kind implements [report.Diagnose].
func (e ErrUnexpectedKeyword) Kind() report.Kind { return report.UnexpectedKeyword }

// Diagnose implements [report.Diagnose].
func (e ErrUnexpectedKeyword) Diagnose(d *report.Diagnostic) {
	d.With(
		report.At(e.Span),
		report.Got(e.Got),
		report.Want(e.Want),
		report.Suggest(e.Suggestion),
	)
}

// ErrDuplicate diagnoses a keyword that may only appear once.
type ErrDuplicate struct {
	Span  source.Span
	First source.Span // The first occurrence.
	Got   string
}

// Error implements [error].
func (e ErrDuplicate) Error() string {
	return fmt.Sprintf("`%s` appears more than once", e.Got)
}

// Kind implements [report.Diagnose].
func (e ErrDuplicate) Kind() report.Kind { return report.UnexpectedDuplicate }

// Diagnose implements [report.Diagnose].
func (e ErrDuplicate) Diagnose(d *report.Diagnostic) {
	d.With(
		report.At(e.Span),
		report.Got(e.Got),
		report.Note("first specified at offset %d", e.First.Start),
	)
}

// ErrMalformedNumber diagnoses a numeric literal outside of its production's
// range.
type ErrMalformedNumber struct {
	Span   source.Span
	Got    string
	Reason string // e.g. "must be an integer".
}

// Error implements [error].
func (e ErrMalformedNumber) Error() string {
	return fmt.Sprintf("invalid number `%s`: %s", e.Got, e.Reason)
}

// Kind implements [report.Diagnose].
func (e ErrMalformedNumber) Kind() report.Kind { return report.MalformedNumber }

// Diagnose implements [report.Diagnose].
func (e ErrMalformedNumber) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span), report.Got(e.Got))
}

// ErrMismatch diagnoses a block that is never closed, or a block where none
// is allowed.
type ErrMismatch struct {
	Span source.Span
	Open source.Span // The opening delimiter, if any.
	Want token.Kind
}

// Error implements [error].
func (e ErrMismatch) Error() string {
	if e.Want == token.Invalid {
		return "unexpected block"
	}
	return fmt.Sprintf("expected a closing %v", e.Want)
}

// Kind implements [report.Diagnose].
func (e ErrMismatch) Kind() report.Kind { return report.StructuralMismatch }

// Diagnose implements [report.Diagnose].
func (e ErrMismatch) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span))
	if e.Want != token.Invalid {
		d.With(report.Want(e.Want.String()), report.Note("block opened at offset %d", e.Open.Start))
	}
}

// ErrUnimplemented diagnoses syntax that is recognized but not supported.
type ErrUnimplemented struct {
	Span source.Span
	What string
}

// Error implements [error].
func (e ErrUnimplemented) Error() string {
	return e.What + " are not supported yet"
}

// Kind implements [report.Diagnose].
func (e ErrUnimplemented) Kind() report.Kind { return report.Unimplemented }

// Diagnose implements [report.Diagnose].
func (e ErrUnimplemented) Diagnose(d *report.Diagnostic) {
	d.With(report.At(e.Span))
}
