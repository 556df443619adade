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

package values

import (
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/writer"
)

// MarginTrim is a value of the margin-trim property. The empty set is
// written as none.
type MarginTrim grammar.Flags

var none = atom.New("none")

// ParseMarginTrim parses none, or a set of margin-trim keywords.
func ParseMarginTrim(p *parser.Parser) (MarginTrim, error) {
	if p.Current().IsIdent(none) {
		p.Advance()
		return 0, nil
	}
	f, err := TrimSet.Parse(p)
	return MarginTrim(f), err
}

// WriteCSS implements [writer.Writable].
func (m MarginTrim) WriteCSS(w writer.Writer) error {
	if m == 0 {
		return w.WriteString(none.String())
	}
	return TrimSet.Write(grammar.Flags(m)).WriteCSS(w)
}
