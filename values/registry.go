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
	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/writer"
)

var grammars = [...]parser.Func[writer.Writable]{
	PropBorderTopWidth:         value(ParseLineWidth),
	PropBorderRightWidth:       value(ParseLineWidth),
	PropBorderBottomWidth:      value(ParseLineWidth),
	PropBorderLeftWidth:        value(ParseLineWidth),
	PropBorderBlockStartWidth:  value(ParseLineWidth),
	PropBorderBlockEndWidth:    value(ParseLineWidth),
	PropBorderInlineStartWidth: value(ParseLineWidth),
	PropBorderInlineEndWidth:   value(ParseLineWidth),
	PropBorderBlockWidth:       sides(ParseLineWidth),
	PropBorderInlineWidth:      sides(ParseLineWidth),
	PropBorderWidth:            rect(ParseLineWidth),
	PropBorderTopStyle:         value(ParseLineStyle),
	PropBorderRightStyle:       value(ParseLineStyle),
	PropBorderBottomStyle:      value(ParseLineStyle),
	PropBorderLeftStyle:        value(ParseLineStyle),
	PropBorderBlockStartStyle:  value(ParseLineStyle),
	PropBorderBlockEndStyle:    value(ParseLineStyle),
	PropBorderInlineStartStyle: value(ParseLineStyle),
	PropBorderInlineEndStyle:   value(ParseLineStyle),
	PropBorderBlockStyle:       sides(ParseLineStyle),
	PropBorderInlineStyle:      sides(ParseLineStyle),
	PropBorderStyle:            rect(ParseLineStyle),
	PropBorderTopColor:         value(ParseColor),
	PropBorderRightColor:       value(ParseColor),
	PropBorderBottomColor:      value(ParseColor),
	PropBorderLeftColor:        value(ParseColor),
	PropBorderBlockStartColor:  value(ParseColor),
	PropBorderBlockEndColor:    value(ParseColor),
	PropBorderInlineStartColor: value(ParseColor),
	PropBorderInlineEndColor:   value(ParseColor),
	PropBorderBlockColor:       sides(ParseColor),
	PropBorderInlineColor:      sides(ParseColor),
	PropBorderColor:            rect(ParseColor),
	PropMarginTop:              value(ParseLengthPercentageOrAuto),
	PropMarginRight:            value(ParseLengthPercentageOrAuto),
	PropMarginBottom:           value(ParseLengthPercentageOrAuto),
	PropMarginLeft:             value(ParseLengthPercentageOrAuto),
	PropMarginBlockStart:       value(ParseLengthPercentageOrAuto),
	PropMarginBlockEnd:         value(ParseLengthPercentageOrAuto),
	PropMarginInlineStart:      value(ParseLengthPercentageOrAuto),
	PropMarginInlineEnd:        value(ParseLengthPercentageOrAuto),
	PropMarginBlock:            sides(ParseLengthPercentageOrAuto),
	PropMarginInline:           sides(ParseLengthPercentageOrAuto),
	PropMargin:                 rect(ParseLengthPercentageOrAuto),
	PropPaddingTop:             value(nonNegative(ParseLengthPercentage)),
	PropPaddingRight:           value(nonNegative(ParseLengthPercentage)),
	PropPaddingBottom:          value(nonNegative(ParseLengthPercentage)),
	PropPaddingLeft:            value(nonNegative(ParseLengthPercentage)),
	PropPaddingBlockStart:      value(nonNegative(ParseLengthPercentage)),
	PropPaddingBlockEnd:        value(nonNegative(ParseLengthPercentage)),
	PropPaddingInlineStart:     value(nonNegative(ParseLengthPercentage)),
	PropPaddingInlineEnd:       value(nonNegative(ParseLengthPercentage)),
	PropPaddingBlock:           sides(nonNegative(ParseLengthPercentage)),
	PropPaddingInline:          sides(nonNegative(ParseLengthPercentage)),
	PropPadding:                rect(nonNegative(ParseLengthPercentage)),
	PropTop:                    value(ParseLengthPercentageOrAuto),
	PropRight:                  value(ParseLengthPercentageOrAuto),
	PropBottom:                 value(ParseLengthPercentageOrAuto),
	PropLeft:                   value(ParseLengthPercentageOrAuto),
	PropInsetBlockStart:        value(ParseLengthPercentageOrAuto),
	PropInsetBlockEnd:          value(ParseLengthPercentageOrAuto),
	PropInsetInlineStart:       value(ParseLengthPercentageOrAuto),
	PropInsetInlineEnd:         value(ParseLengthPercentageOrAuto),
	PropInsetBlock:             sides(ParseLengthPercentageOrAuto),
	PropInsetInline:            sides(ParseLengthPercentageOrAuto),
	PropInset:                  rect(ParseLengthPercentageOrAuto),
	PropMarginTrim:             value(ParseMarginTrim),
	PropVisibility:             value(ParseVisibility),
	PropZoom:                   value(ParseZoom),
	PropMaxWidth:               value(ParseMaxSize),
	PropMaxHeight:              value(ParseMaxSize),
	PropMaxBlockSize:           value(ParseMaxSize),
	PropMaxInlineSize:          value(ParseMaxSize),
	PropFontFamily:             value(ParseFontFamily),
	PropColor:                  value(ParseColor),
	PropBackgroundColor:        value(ParseColor),
}

// LookupProperty resolves a property name, ignoring ASCII case.
func LookupProperty(name string) (Property, bool) {
	return properties.Lookup(name)
}

// SuggestProperty returns the known property name closest to name, or "".
func SuggestProperty(name string) string {
	return properties.Suggest(name)
}

// ParseValue parses a value of prop, stopping at the end of the value.
//
// Every property also accepts a CSS-wide keyword, such as inherit, as its
// whole value.
func ParseValue(p *parser.Parser, prop Property) (writer.Writable, error) {
	if cssWide.Has(p.Current().Keyword()) {
		mark := p.Mark()
		k, _ := ParseCSSWide(p)
		if p.AtValueEnd() {
			return k, nil
		}
		p.Rewind(mark)
	}
	return grammars[prop](p)
}

func value[T writer.Writable](f parser.Func[T]) parser.Func[writer.Writable] {
	return func(p *parser.Parser) (writer.Writable, error) {
		v, err := f(p)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func sides[T grammar.Value](f parser.Func[T]) parser.Func[writer.Writable] {
	return value(func(p *parser.Parser) (grammar.LogicalSides[T], error) {
		return grammar.ParseLogicalSides(p, f)
	})
}

func rect[T grammar.Value](f parser.Func[T]) parser.Func[writer.Writable] {
	return value(func(p *parser.Parser) (grammar.Rect[T], error) {
		return grammar.ParseRect(p, f)
	})
}
