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
	"errors"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Length is a <length>. A bare zero has no unit.
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Pixels returns a length in px.
func Pixels(v float64) Length {
	return Length{Value: v, Unit: Px}
}

// ParseLength parses a dimension with a length unit, or a bare zero.
func ParseLength(p *parser.Parser) (Length, error) {
	tok := p.Current()
	switch tok.Kind {
	case token.Number:
		if tok.Number != 0 {
			break
		}
		p.Advance()
		return Length{}, nil
	case token.Dimension:
		unit, err := parseUnit(tok, lengthUnits, "a length unit")
		if err != nil {
			return Length{}, err
		}
		p.Advance()
		return Length{Value: tok.Number, Unit: unit}, nil
	}
	return Length{}, p.Unexpected("a length")
}

// WriteCSS implements [writer.Writable].
func (l Length) WriteCSS(w writer.Writer) error {
	if l.Unit == NoUnit || (l.Value == 0 && !w.CanOutput(writer.ZeroUnits)) {
		return w.WriteString(formatNumber(l.Value, w.CanOutput(writer.LeadingZero)))
	}
	_ = writeNumber(w, l.Value)
	return w.WriteString(l.Unit.String())
}

// LengthPercentage is a <length-percentage>. When Percent is set, Value is
// the percentage and Unit is unset.
type LengthPercentage struct {
	Length
	Percent bool
}

// Percentage returns a percentage.
func Percentage(v float64) LengthPercentage {
	return LengthPercentage{Length: Length{Value: v}, Percent: true}
}

// ParseLengthPercentage parses a length or a percentage.
func ParseLengthPercentage(p *parser.Parser) (LengthPercentage, error) {
	tok := p.Current()
	if tok.Kind == token.Percentage {
		p.Advance()
		return Percentage(tok.Number), nil
	}
	l, err := ParseLength(p)
	if errors.As(err, new(parser.ErrUnexpected)) {
		return LengthPercentage{}, p.Unexpected("a length or percentage")
	}
	return LengthPercentage{Length: l}, err
}

// WriteCSS implements [writer.Writable].
func (l LengthPercentage) WriteCSS(w writer.Writer) error {
	if !l.Percent {
		return l.Length.WriteCSS(w)
	}
	_ = writeNumber(w, l.Value)
	return w.WriteByte('%')
}

// LengthPercentageOrAuto is a <length-percentage> or the keyword auto.
type LengthPercentageOrAuto struct {
	LengthPercentage
	Auto bool
}

var auto = atom.New("auto")

// ParseLengthPercentageOrAuto parses auto, a length or a percentage.
func ParseLengthPercentageOrAuto(p *parser.Parser) (LengthPercentageOrAuto, error) {
	if p.Current().IsIdent(auto) {
		p.Advance()
		return LengthPercentageOrAuto{Auto: true}, nil
	}
	l, err := ParseLengthPercentage(p)
	return LengthPercentageOrAuto{LengthPercentage: l}, err
}

// WriteCSS implements [writer.Writable].
func (l LengthPercentageOrAuto) WriteCSS(w writer.Writer) error {
	if l.Auto {
		return w.WriteString(auto.String())
	}
	return l.LengthPercentage.WriteCSS(w)
}

// Ratio is a <ratio>. A ratio written as a single number has a denominator
// of one.
type Ratio struct {
	Numerator, Denominator Number
}

// ParseRatio parses one number, or two separated by a slash.
func ParseRatio(p *parser.Parser) (Ratio, error) {
	num, err := nonNegative(ParseNumber)(p)
	if err != nil {
		return Ratio{}, err
	}
	r := Ratio{Numerator: num, Denominator: 1}
	if !p.Current().IsDelim('/') {
		return r, nil
	}
	p.Advance()
	r.Denominator, err = nonNegative(ParseNumber)(p)
	return r, err
}

// WriteCSS implements [writer.Writable].
func (r Ratio) WriteCSS(w writer.Writer) error {
	err := r.Numerator.WriteCSS(w)
	if r.Denominator != 1 {
		_ = w.WriteByte('/')
		err = r.Denominator.WriteCSS(w)
	}
	return err
}

// Resolution is a <resolution>.
type Resolution struct {
	Value float64
	Unit  ResolutionUnit
}

// ParseResolution parses a dimension with a resolution unit.
func ParseResolution(p *parser.Parser) (Resolution, error) {
	tok := p.Current()
	if tok.Kind != token.Dimension {
		return Resolution{}, p.Unexpected("a resolution")
	}
	if tok.Number < 0 {
		return Resolution{}, negative(tok)
	}
	unit, err := parseUnit(tok, resolutionUnits, "a resolution unit")
	if err != nil {
		return Resolution{}, err
	}
	p.Advance()
	return Resolution{Value: tok.Number, Unit: unit}, nil
}

// WriteCSS implements [writer.Writable].
func (r Resolution) WriteCSS(w writer.Writer) error {
	_ = writeNumber(w, r.Value)
	return w.WriteString(r.Unit.String())
}

// nonNegative wraps a numeric grammar so that it rejects negative numbers.
func nonNegative[T any](f parser.Func[T]) parser.Func[T] {
	return func(p *parser.Parser) (T, error) {
		if tok := p.Current(); tok.IsNumeric() && tok.Number < 0 {
			var z T
			return z, negative(tok)
		}
		return f(p)
	}
}
