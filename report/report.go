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
	"cmp"
	"fmt"
	"slices"

	"github.com/maraisr/hdx/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates input that cannot be parsed.
	Error Level = 1 + iota
	// Yellow. Indicates input that was kept or dropped, but probably should
	// not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Diagnose is an error that can be recorded as a diagnostic.
type Diagnose interface {
	error

	// Kind returns the category of this error.
	Kind() Kind

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level, Kind nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a structured description of a problem in some input.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	Kind  Kind
	Level Level

	// The offending span.
	Span source.Span

	// The offending text, and what would have been accepted in its place.
	Got  string
	Want []string

	// A replacement for Got, if a near match was found.
	Suggestion string

	// Notes to show after the message.
	Notes []string
}

// Error implements [error].
func (d *Diagnostic) Error() string {
	return d.Err.Error()
}

// Unwrap returns the error this diagnostic was created from.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// With applies the given options to this diagnostic.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// At sets the offending span.
func At(span source.Span) DiagnosticOption {
	return func(d *Diagnostic) { d.Span = span }
}

// Got sets the offending text.
func Got(text string) DiagnosticOption {
	return func(d *Diagnostic) { d.Got = text }
}

// Want appends to the expected alternatives.
func Want(text ...string) DiagnosticOption {
	return func(d *Diagnostic) { d.Want = append(d.Want, text...) }
}

// Suggest sets the suggested replacement text. An empty suggestion is
// ignored.
func Suggest(text string) DiagnosticOption {
	if text == "" {
		return nil
	}
	return func(d *Diagnostic) { d.Suggestion = text }
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	return r.push(err, Error)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	return r.push(err, Warning)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) *Diagnostic {
	return r.push(err, Remark)
}

func (r *Report) push(err Diagnose, level Level) *Diagnostic {
	*r = append(*r, Diagnostic{
		Err:   err,
		Kind:  err.Kind(),
		Level: level,
	})
	d := &(*r)[len(*r)-1]
	err.Diagnose(d)
	return d
}

// HasErrors returns whether this report contains any diagnostics at the
// [Error] level.
func (r Report) HasErrors() bool {
	return slices.ContainsFunc(r, func(d Diagnostic) bool {
		return d.Level == Error
	})
}

// Sort sorts this report by position, and then by level.
func (r Report) Sort() {
	slices.SortStableFunc(r, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Span.Start, b.Span.Start),
			cmp.Compare(a.Level, b.Level),
		)
	})
}
