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

import (
	"io"
	"strings"
)

// Printer is the [Writer] over an [io.Writer].
//
// Whitespace and newlines are buffered until the next piece of text, so that
// consecutive requests merge and trailing whitespace is never written.
type Printer struct {
	options Options
	out     io.Writer
	err     error

	// Buffered spaces and newlines, for whitespace merging in write().
	space    bool
	newlines int

	depth int
	// The last byte written, for deciding whether a minified space is
	// needed.
	last byte
}

var _ Writer = (*Printer)(nil)

// New returns a printer that writes to out.
func New(out io.Writer, options Options) *Printer {
	return &Printer{options: options.WithDefaults(), out: out}
}

// WriteString implements [Writer].
func (p *Printer) WriteString(s string) error {
	if s == "" {
		return p.err
	}
	p.flushTrivia(s[0])
	return p.raw(s)
}

// WriteByte implements [Writer].
func (p *Printer) WriteByte(c byte) error {
	p.flushTrivia(c)
	return p.raw(string(c))
}

// WriteWhitespace implements [Writer].
func (p *Printer) WriteWhitespace() error {
	p.space = true
	return p.err
}

// WriteNewline implements [Writer].
func (p *Printer) WriteNewline() error {
	if !p.options.Minify {
		p.newlines++
	}
	return p.err
}

// Indent implements [Writer].
func (p *Printer) Indent() {
	if !p.options.Minify {
		p.depth++
	}
}

// Dedent implements [Writer].
func (p *Printer) Dedent() {
	if !p.options.Minify && p.depth > 0 {
		p.depth--
	}
}

// CanOutput implements [Writer].
func (p *Printer) CanOutput(opt Option) bool {
	return p.options.Output&opt == opt
}

// Options implements [Writer].
func (p *Printer) Options() Options {
	return p.options
}

// Flush writes any buffered newlines. Buffered spaces are dropped.
func (p *Printer) Flush() error {
	for ; p.newlines > 0; p.newlines-- {
		_ = p.raw("\n")
	}
	p.space = false
	return p.err
}

// flushTrivia writes whatever whitespace is buffered in front of a token
// starting with next.
func (p *Printer) flushTrivia(next byte) {
	if p.newlines > 0 {
		_ = p.raw(strings.Repeat("\n", p.newlines))
		_ = p.raw(strings.Repeat(p.options.Indent, p.depth))
		p.newlines = 0
		p.space = false
		return
	}

	if p.space {
		p.space = false
		if p.last != 0 && (!p.options.Minify || mustSeparate(p.last, next)) {
			_ = p.raw(" ")
		}
	}
}

func (p *Printer) raw(s string) error {
	if p.err != nil || s == "" {
		return p.err
	}
	_, p.err = io.WriteString(p.out, s)
	p.last = s[len(s)-1]
	return p.err
}

// mustSeparate returns whether a token ending in prev and a token starting
// with next would lex differently if written with nothing between them.
func mustSeparate(prev, next byte) bool {
	if !isNameByte(prev) {
		return false
	}
	// A name followed by ( would become a function token, and a number
	// followed by . would gain a fraction.
	return isNameByte(next) || next == '(' || next == '.' || next == '\\'
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_' || c >= 0x80
}
