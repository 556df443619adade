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
	"strings"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/values"
	"github.com/maraisr/hdx/writer"
)

// Feature is a parenthesized media feature test, such as `(hover: none)` or
// `(min-width: 600px)`.
//
// Value is a [grammar.Discrete] over the keyword enum of a discrete feature
// (e.g. [Hover] for [FeatureHover]), or a [grammar.Range] over the value type
// of a range feature (e.g. [values.Length] for [FeatureWidth]). `grid` is a
// range over [values.Integer] that only accepts 0 and 1, and never takes a
// prefix or comparison.
type Feature struct {
	Name  FeatureName
	Value writer.Writable
}

// featureGrammar parses the inside of the parentheses of one feature.
type featureGrammar struct {
	parse func(p *parser.Parser, name atom.Atom, prefix grammar.Prefix) (writer.Writable, error)

	// Whether the feature may be prefixed with min- or max-.
	ranged bool
}

var (
	features = keyword.New(FeatureNames())

	hovers               = keyword.New(HoverValues())
	pointers             = keyword.New(PointerValues())
	colorGamuts          = keyword.New(ColorGamutValues())
	displayModes         = keyword.New(DisplayModeValues())
	dynamicRanges        = keyword.New(DynamicRangeValues())
	environmentBlendings = keyword.New(EnvironmentBlendingValues())
	forcedColors         = keyword.New(ForcedColorsValues())
	invertedColors       = keyword.New(InvertedColorsValues())
	navControls          = keyword.New(NavControlsValues())
	orientations         = keyword.New(OrientationValues())
	overflowBlocks       = keyword.New(OverflowBlockValues())
	overflowInlines      = keyword.New(OverflowInlineValues())
	colorSchemes         = keyword.New(ColorSchemeValues())
	contrasts            = keyword.New(ContrastValues())
	reductions           = keyword.New(ReductionValues())
	scans                = keyword.New(ScanValues())
	scriptings           = keyword.New(ScriptingValues())
	updates              = keyword.New(UpdateValues())

	featureGrammars = [...]featureGrammar{
		FeatureAnyHover:                   discrete(hovers),
		FeatureAnyPointer:                 discrete(pointers),
		FeatureAspectRatio:                ranged(values.ParseRatio),
		FeatureColor:                      ranged(values.ParseNonNegativeInteger),
		FeatureColorGamut:                 discrete(colorGamuts),
		FeatureColorIndex:                 ranged(values.ParseNonNegativeInteger),
		FeatureDeviceAspectRatio:          ranged(values.ParseRatio),
		FeatureDeviceHeight:               ranged(values.ParseLength),
		FeatureDeviceWidth:                ranged(values.ParseLength),
		FeatureDisplayMode:                discrete(displayModes),
		FeatureDynamicRange:               discrete(dynamicRanges),
		FeatureEnvironmentBlending:        discrete(environmentBlendings),
		FeatureForcedColors:               discrete(forcedColors),
		FeatureGrid:                       {parse: parseGrid},
		FeatureHeight:                     ranged(values.ParseLength),
		FeatureHorizontalViewportSegments: ranged(values.ParseNonNegativeInteger),
		FeatureHover:                      discrete(hovers),
		FeatureInvertedColors:             discrete(invertedColors),
		FeatureMonochrome:                 ranged(values.ParseNonNegativeInteger),
		FeatureNavControls:                discrete(navControls),
		FeatureOrientation:                discrete(orientations),
		FeatureOverflowBlock:              discrete(overflowBlocks),
		FeatureOverflowInline:             discrete(overflowInlines),
		FeaturePointer:                    discrete(pointers),
		FeaturePrefersColorScheme:         discrete(colorSchemes),
		FeaturePrefersContrast:            discrete(contrasts),
		FeaturePrefersReducedData:         discrete(reductions),
		FeaturePrefersReducedMotion:       discrete(reductions),
		FeaturePrefersReducedTransparency: discrete(reductions),
		FeatureResolution:                 ranged(values.ParseResolution),
		FeatureScan:                       discrete(scans),
		FeatureScripting:                  discrete(scriptings),
		FeatureUpdate:                     discrete(updates),
		FeatureVerticalViewportSegments:   ranged(values.ParseNonNegativeInteger),
		FeatureVideoColorGamut:            discrete(colorGamuts),
		FeatureVideoDynamicRange:          discrete(dynamicRanges),
		FeatureWidth:                      ranged(values.ParseLength),
	}
)

func discrete[K grammar.Keyword](table *keyword.Table[K]) featureGrammar {
	return featureGrammar{
		parse: func(p *parser.Parser, name atom.Atom, _ grammar.Prefix) (writer.Writable, error) {
			return grammar.ParseDiscrete(p, name, table)
		},
	}
}

func ranged[V writer.Writable](value parser.Func[V]) featureGrammar {
	return featureGrammar{
		ranged: true,
		parse: func(p *parser.Parser, name atom.Atom, prefix grammar.Prefix) (writer.Writable, error) {
			return grammar.ParseRange(p, name, prefix, value)
		},
	}
}

// IsRange returns whether this feature compares against a value, and so
// accepts min- and max- prefixes and comparison operators.
func (n FeatureName) IsRange() bool {
	return featureGrammars[n].ranged
}

// Atom returns the name of this feature as an atom.
func (n FeatureName) Atom() atom.Atom {
	return features.Unresolve(n)
}

// ParseFeature parses a parenthesized media feature.
func ParseFeature(p *parser.Parser) (Feature, error) {
	open, err := p.Expect(token.LeftParen)
	if err != nil {
		return Feature{}, err
	}

	tok := p.Current()
	switch {
	case tok.Kind == token.LeftParen,
		tok.IsIdent(kwNot) && p.PeekIs(token.LeftParen):
		return Feature{}, parser.ErrUnimplemented{Span: tok.Span, What: "nested media conditions"}
	case tok.IsNumeric():
		return Feature{}, parser.ErrUnimplemented{Span: tok.Span, What: "range features with the value first"}
	case tok.Kind != token.Ident:
		return Feature{}, p.Unexpected("a media feature")
	}

	name, prefix, err := resolveFeature(tok)
	if err != nil {
		return Feature{}, err
	}
	v, err := featureGrammars[name].parse(p, name.Atom(), prefix)
	if err != nil {
		return Feature{}, err
	}
	if err := p.Close(open); err != nil {
		return Feature{}, err
	}
	return Feature{Name: name, Value: v}, nil
}

// resolveFeature resolves a possibly prefixed feature name.
func resolveFeature(tok token.Token) (FeatureName, grammar.Prefix, error) {
	text := tok.Keyword().String()
	if name, ok := features.Lookup(text); ok {
		return name, grammar.NoPrefix, nil
	}
	for _, prefix := range [...]grammar.Prefix{grammar.Min, grammar.Max} {
		rest, ok := strings.CutPrefix(text, prefix.String())
		if !ok {
			continue
		}
		if name, ok := features.Lookup(rest); ok && name.IsRange() {
			return name, prefix, nil
		}
	}

	return 0, 0, parser.ErrUnexpectedKeyword{
		Span:       tok.Span,
		Got:        tok.Text(),
		Want:       "a media feature",
		Suggestion: features.Suggest(text),
	}
}

// parseGrid parses `grid` or `grid: 0|1`.
func parseGrid(p *parser.Parser, name atom.Atom, _ grammar.Prefix) (writer.Writable, error) {
	g := grammar.Range[values.Integer]{Name: name}
	if err := p.ExpectIdent(name); err != nil {
		return g, err
	}
	if p.Current().Kind != token.Colon {
		return g, nil
	}
	p.Advance()

	tok := p.Current()
	v, err := values.ParseInteger(p)
	if err != nil {
		return g, err
	}
	if v != 0 && v != 1 {
		return g, parser.ErrMalformedNumber{Span: tok.Span, Got: tok.Text(), Reason: "must be 0 or 1"}
	}
	g.Op, g.Value = grammar.Colon, v
	return g, nil
}

// WriteCSS implements [writer.Writable].
func (f Feature) WriteCSS(w writer.Writer) error {
	_ = w.WriteByte('(')
	_ = f.Value.WriteCSS(w)
	return w.WriteByte(')')
}
