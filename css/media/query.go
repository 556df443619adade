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

package media

import (
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Query is a single media query.
//
// Type is meaningful for every kind except [ConditionQuery]; Condition only
// for [ConditionQuery] and the *TypedCondition kinds, where it is always an
// [And] list.
type Query struct {
	Kind      QueryKind
	Type      Type
	Condition Condition
}

// ParseQuery parses a media query.
func ParseQuery(p *parser.Parser) (Query, error) {
	tok := p.Current()
	q := Query{Kind: Typed}
	switch {
	case tok.Kind == token.LeftParen:
		c, err := ParseCondition(p)
		return Query{Kind: ConditionQuery, Condition: c}, err
	case tok.IsIdent(kwNot) && p.PeekIs(token.LeftParen):
		c, err := ParseCondition(p)
		return Query{Kind: ConditionQuery, Condition: c}, err
	case tok.IsIdent(kwNot):
		q.Kind = NotTyped
		p.Advance()
	case tok.IsIdent(kwOnly):
		q.Kind = OnlyTyped
		p.Advance()
	}

	var err error
	if q.Type, err = ParseType(p); err != nil {
		return Query{}, err
	}

	// The `and` is consumed along with the condition it introduces.
	if !p.Current().IsIdent(kwAnd) {
		return q, nil
	}
	if q.Condition, err = parseTypedCondition(p); err != nil {
		return Query{}, err
	}
	switch q.Kind {
	case NotTyped:
		q.Kind = NotTypedCondition
	case OnlyTyped:
		q.Kind = OnlyTypedCondition
	default:
		q.Kind = TypedCondition
	}
	return q, nil
}

// WriteCSS implements [writer.Writable].
func (q Query) WriteCSS(w writer.Writer) error {
	switch q.Kind {
	case ConditionQuery:
		return q.Condition.WriteCSS(w)
	case NotTyped, NotTypedCondition:
		_ = w.WriteString(kwNot.String())
		_ = w.WriteWhitespace()
	case OnlyTyped, OnlyTypedCondition:
		_ = w.WriteString(kwOnly.String())
		_ = w.WriteWhitespace()
	}

	err := q.Type.WriteCSS(w)
	switch q.Kind {
	case TypedCondition, NotTypedCondition, OnlyTypedCondition:
		_ = w.WriteWhitespace()
		_ = w.WriteString(kwAnd.String())
		_ = w.WriteWhitespace()
		err = q.Condition.WriteCSS(w)
	}
	return err
}

// QueryList is a comma-separated list of media queries, which matches if any
// of its queries do. It is never empty.
type QueryList []source.Spanned[Query]

// ParseQueryList parses one or more comma-separated media queries.
func ParseQueryList(p *parser.Parser) (QueryList, error) {
	var list QueryList
	for {
		q, err := parser.Spanned(p, ParseQuery)
		if err != nil {
			return nil, err
		}
		list = append(list, q)

		if p.Current().Kind != token.Comma {
			return list, nil
		}
		p.Advance()
	}
}

// Parse parses text as a media query list.
func Parse(text string) (QueryList, error) {
	return parser.Parse(text, ParseQueryList)
}

// WriteCSS implements [writer.Writable].
func (l QueryList) WriteCSS(w writer.Writer) error {
	var err error
	for i, q := range l {
		if i > 0 {
			_ = w.WriteByte(',')
			_ = w.WriteWhitespace()
		}
		err = q.Node.WriteCSS(w)
	}
	return err
}
