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

package writer_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/writer"
)

type writeFunc func(w writer.Writer) error

func (f writeFunc) WriteCSS(w writer.Writer) error { return f(w) }

func block(w writer.Writer) error {
	_ = w.WriteString("a")
	_ = w.WriteWhitespace()
	_ = w.WriteByte('{')
	_ = w.WriteNewline()
	w.Indent()
	_ = w.WriteString("margin:")
	_ = w.WriteWhitespace()
	_ = w.WriteString("1px")
	_ = w.WriteWhitespace()
	_ = w.WriteString("-2px")
	_ = w.WriteWhitespace()
	_ = w.WriteString(".5em")
	if w.CanOutput(writer.TrailingSemicolon) {
		_ = w.WriteByte(';')
	}
	_ = w.WriteNewline()
	w.Dedent()
	return w.WriteByte('}')
}

func TestPolicies(t *testing.T) {
	t.Parallel()

	got, err := writer.String(writeFunc(block), writer.Canonical)
	assert.NoError(t, err)
	assert.Equal(t, "a {\n  margin: 1px -2px .5em;\n}", got)

	got, err = writer.String(writeFunc(block), writer.Minified)
	assert.NoError(t, err)
	assert.Equal(t, "a{margin:1px -2px .5em}", got)

	got, err = writer.String(writeFunc(block), writer.Options{Output: writer.AllOptions, Indent: "\t"})
	assert.NoError(t, err)
	assert.Equal(t, "a {\n\tmargin: 1px -2px .5em;\n}", got)
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		parts     []string
		canonical string
		minified  string
	}{
		{"idents", []string{"screen", "and"}, "screen and", "screen and"},
		{"function", []string{"and", "(grid)"}, "and (grid)", "and (grid)"},
		{"after paren", []string{"(grid)", "and"}, "(grid) and", "(grid)and"},
		{"comma", []string{"a,", "b"}, "a, b", "a,b"},
		{"numbers", []string{"1", ".5"}, "1 .5", "1 .5"},
		{"percent", []string{"50%", "2px"}, "50% 2px", "50%2px"},
		{"string", []string{`"a"`, "b"}, `"a" b`, `"a"b`},
		{"leading", []string{"", "a"}, "a", "a"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			node := writeFunc(func(w writer.Writer) error {
				for i, part := range test.parts {
					if i > 0 {
						_ = w.WriteWhitespace()
					}
					_ = w.WriteString(part)
				}
				// Trailing whitespace is never written.
				return w.WriteWhitespace()
			})
			assert.Equal(t, test.canonical, writer.CanonicalString(node))
			assert.Equal(t, test.minified, writer.MinifiedString(node))
		})
	}
}

func TestBlankLines(t *testing.T) {
	t.Parallel()

	node := writeFunc(func(w writer.Writer) error {
		_ = w.WriteString("{")
		_ = w.WriteNewline()
		w.Indent()
		_ = w.WriteNewline()
		w.Dedent()
		_ = w.WriteString("}")
		return w.WriteNewline()
	})
	assert.Equal(t, "{\n\n}\n", writer.CanonicalString(node))
	assert.Equal(t, "{}", writer.MinifiedString(node))
}

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSinkError(t *testing.T) {
	t.Parallel()

	p := writer.New(failing{}, writer.Canonical)
	assert.EqualError(t, p.WriteString("a"), "disk full")
	assert.EqualError(t, p.WriteByte('b'), "disk full")
	assert.EqualError(t, p.Flush(), "disk full")
}

func TestQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"Gill Sans"`, writer.Quote("Gill Sans"))
	assert.Equal(t, `"a\"b\\c"`, writer.Quote(`a"b\c`))
	assert.Equal(t, `"a\a b"`, writer.Quote("a\nb"))
	assert.Equal(t, `""`, writer.Quote(""))
	assert.Equal(t, `"日本"`, writer.Quote("日本"))
}

func TestSame(t *testing.T) {
	t.Parallel()

	zero := func(unit string) writer.Writable {
		return writeFunc(func(w writer.Writer) error {
			if w.CanOutput(writer.ZeroUnits) {
				return w.WriteString("0" + unit)
			}
			return w.WriteString("0")
		})
	}

	canonical := writer.New(io.Discard, writer.Canonical)
	minified := writer.New(io.Discard, writer.Minified)
	assert.False(t, writer.Same(canonical, zero("px"), zero("")))
	assert.True(t, writer.Same(minified, zero("px"), zero("")))
	assert.True(t, writer.Same(canonical, zero("em"), zero("em")))
	assert.Equal(t, writer.Minified.WithDefaults(), minified.Options())
}
