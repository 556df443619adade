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

package grammar

import (
	"fmt"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Keyword is an enum generated for a closed set of keywords, whose String
// method returns its canonical spelling.
type Keyword interface {
	comparable
	fmt.Stringer
}

// Discrete is a media feature that is either tested for presence, as in
// `(hover)`, or compared against a keyword, as in `(hover: none)`.
type Discrete[K Keyword] struct {
	Name   atom.Atom
	Value  K
	Valued bool
}

// Is returns a presence test for name.
func Is[K Keyword](name atom.Atom) Discrete[K] {
	return Discrete[K]{Name: name}
}

// Equals returns a test of name against value.
func Equals[K Keyword](name atom.Atom, value K) Discrete[K] {
	return Discrete[K]{Name: name, Value: value, Valued: true}
}

// ParseDiscrete parses a discrete feature, starting at its name and stopping
// before the closing parenthesis.
func ParseDiscrete[K Keyword](p *parser.Parser, name atom.Atom, values *keyword.Table[K]) (Discrete[K], error) {
	if err := p.ExpectIdent(name); err != nil {
		return Discrete[K]{}, err
	}
	if p.Current().Kind != token.Colon {
		return Is[K](name), nil
	}
	p.Advance()

	v, err := parser.Keyword(p, values, fmt.Sprintf("a value for `%s`", name))
	if err != nil {
		return Discrete[K]{}, err
	}
	return Equals(name, v), nil
}

// WriteCSS implements [writer.Writable].
func (d Discrete[K]) WriteCSS(w writer.Writer) error {
	err := w.WriteString(d.Name.String())
	if d.Valued {
		_ = w.WriteByte(':')
		err = w.WriteString(d.Value.String())
	}
	return err
}
