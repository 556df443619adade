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

package media_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/css/media"
	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/values"
	"github.com/maraisr/hdx/writer"
)

func TestQueries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text      string
		kind      media.QueryKind
		canonical string
		minified  string
	}{
		{text: "print", kind: media.Typed, canonical: "print", minified: "print"},
		{text: "not embossed", kind: media.NotTyped, canonical: "not embossed", minified: "not embossed"},
		{text: "only screen", kind: media.OnlyTyped, canonical: "only screen", minified: "only screen"},
		{text: "(grid)", kind: media.ConditionQuery, canonical: "(grid)", minified: "(grid)"},
		{
			text:      "screen and (grid)",
			kind:      media.TypedCondition,
			canonical: "screen and (grid)",
			minified:  "screen and (grid)",
		},
		{
			text:      "screen and (hover) and (pointer)",
			kind:      media.TypedCondition,
			canonical: "screen and (hover) and (pointer)",
			minified:  "screen and (hover)and (pointer)",
		},
		{
			text:      "NOT Screen AND (Color)",
			kind:      media.NotTypedCondition,
			canonical: "not screen and (color)",
			minified:  "not screen and (color)",
		},
		{
			text:      "only print and (orientation: landscape)",
			kind:      media.OnlyTypedCondition,
			canonical: "only print and (orientation:landscape)",
			minified:  "only print and (orientation:landscape)",
		},
		{
			text:      "not (hover: none)",
			kind:      media.ConditionQuery,
			canonical: "not (hover:none)",
			minified:  "not (hover:none)",
		},
		{
			text:      "(min-width: 600px) and (max-width: 1200px)",
			kind:      media.ConditionQuery,
			canonical: "(min-width:600px) and (max-width:1200px)",
			minified:  "(min-width:600px)and (max-width:1200px)",
		},
		{
			text:      "(orientation: portrait) or (hover)",
			kind:      media.ConditionQuery,
			canonical: "(orientation:portrait) or (hover)",
			minified:  "(orientation:portrait)or (hover)",
		},
		{
			text:      "(width >= 600px)",
			kind:      media.ConditionQuery,
			canonical: "(width >= 600px)",
			minified:  "(width>=600px)",
		},
		{
			text:      "(aspect-ratio: 16 / 9)",
			kind:      media.ConditionQuery,
			canonical: "(aspect-ratio:16/9)",
			minified:  "(aspect-ratio:16/9)",
		},
		{
			text:      "(min-resolution: 2dppx)",
			kind:      media.ConditionQuery,
			canonical: "(min-resolution:2dppx)",
			minified:  "(min-resolution:2dppx)",
		},
		{text: "(grid: 1)", kind: media.ConditionQuery, canonical: "(grid:1)", minified: "(grid:1)"},
		{
			text:      "(prefers-color-scheme: DARK)",
			kind:      media.ConditionQuery,
			canonical: "(prefers-color-scheme:dark)",
			minified:  "(prefers-color-scheme:dark)",
		},
		{text: "TV", kind: media.Typed, canonical: "tv", minified: "tv"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			q, err := parser.Parse(test.text, media.ParseQuery)
			require.NoError(t, err)
			assert.Equal(t, test.kind, q.Kind)
			assert.Equal(t, test.canonical, writer.CanonicalString(q))
			assert.Equal(t, test.minified, writer.MinifiedString(q))

			for _, text := range []string{test.canonical, test.minified} {
				again, err := parser.Parse(text, media.ParseQuery)
				require.NoError(t, err)
				assert.Equal(t, test.canonical, writer.CanonicalString(again))
			}
		})
	}
}

func TestQueryList(t *testing.T) {
	t.Parallel()

	list, err := media.Parse("print, (prefers-reduced-motion: reduce)")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, source.Span{Start: 0, End: 5}, list[0].Span)
	assert.Equal(t, source.Span{Start: 7, End: 39}, list[1].Span)
	assert.Equal(t, "print, (prefers-reduced-motion:reduce)", writer.CanonicalString(list))
	assert.Equal(t, "print,(prefers-reduced-motion:reduce)", writer.MinifiedString(list))

	for _, text := range []string{"", "print,", ", print", "print screen"} {
		_, err := media.Parse(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestQueryTree(t *testing.T) {
	t.Parallel()

	q, err := parser.Parse("screen and (hover: none) and (min-width: 10px)", media.ParseQuery)
	require.NoError(t, err)

	want := media.Query{
		Kind: media.TypedCondition,
		Type: media.Type{Kind: media.Screen},
		Condition: media.Condition{
			Kind: media.And,
			Features: []source.Spanned[media.Feature]{
				{Node: media.Feature{
					Name:  media.FeatureHover,
					Value: grammar.Equals(atom.New("hover"), media.HoverNone),
				}},
				{Node: media.Feature{
					Name: media.FeatureWidth,
					Value: grammar.Range[values.Length]{
						Name:   atom.New("width"),
						Prefix: grammar.Min,
						Op:     grammar.Colon,
						Value:  values.Pixels(10),
					},
				}},
			},
		},
	}
	assert.Empty(t, cmp.Diff(want, q, cmpopts.IgnoreTypes(source.Span{})))

	features := q.Condition.Features
	assert.Equal(t, source.Span{Start: 11, End: 24}, features[0].Span)
	assert.Equal(t, source.Span{Start: 29, End: 46}, features[1].Span)
}

func TestFeatureNames(t *testing.T) {
	t.Parallel()

	var n, ranged int
	for name := range media.FeatureNames() {
		n++
		text := "(" + name.String() + ")"
		f, err := parser.Parse(text, media.ParseFeature)
		require.NoError(t, err, text)
		assert.Equal(t, name, f.Name)
		assert.Equal(t, text, writer.CanonicalString(f))

		if name.IsRange() {
			ranged++
			text := "(max-" + name.String() + ")"
			_, err := parser.Parse(text, media.ParseFeature)
			assert.ErrorAs(t, err, new(parser.ErrUnexpected), text)
		} else {
			text := "(min-" + name.String() + ": 1)"
			_, err := parser.Parse(text, media.ParseFeature)
			assert.ErrorAs(t, err, new(parser.ErrUnexpectedKeyword), text)
		}
	}
	assert.Equal(t, 37, n)
	assert.Equal(t, 12, ranged)
}

func TestQueryErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		err  error
	}{
		{
			text: "and (grid)",
			err:  parser.ErrUnexpectedKeyword{Span: source.Span{Start: 0, End: 3}, Got: "and", Want: "a media type"},
		},
		{
			text: "only (grid)",
			err: parser.ErrUnexpected{
				Span: source.Span{Start: 5, End: 6},
				Got:  "`(`",
				Want: []string{"a media type"},
			},
		},
		{
			text: "not",
			err: parser.ErrUnexpected{
				Span: source.Span{Start: 3, End: 3},
				Got:  "end of input",
				Want: []string{"a media type"},
			},
		},
		{
			text: "((hover))",
			err:  parser.ErrUnimplemented{Span: source.Span{Start: 1, End: 2}, What: "nested media conditions"},
		},
		{
			text: "(not (hover))",
			err:  parser.ErrUnimplemented{Span: source.Span{Start: 1, End: 4}, What: "nested media conditions"},
		},
		{
			text: "(600px < width)",
			err:  parser.ErrUnimplemented{Span: source.Span{Start: 1, End: 6}, What: "range features with the value first"},
		},
		{
			text: "(hover) and (pointer) or (grid)",
			err:  parser.ErrUnexpectedKeyword{Span: source.Span{Start: 22, End: 24}, Got: "or", Want: "`and`"},
		},
		{
			text: "(hover) or (pointer) AND (grid)",
			err:  parser.ErrUnexpectedKeyword{Span: source.Span{Start: 21, End: 24}, Got: "AND", Want: "`or`"},
		},
		{
			text: "screen and (hover) or (grid)",
			err:  parser.ErrUnexpectedKeyword{Span: source.Span{Start: 19, End: 21}, Got: "or", Want: "`and`"},
		},
		{
			text: "(prefers-reduced-data: reduced)",
			err: parser.ErrUnexpectedKeyword{
				Span:       source.Span{Start: 23, End: 30},
				Got:        "reduced",
				Want:       "a value for `prefers-reduced-data`",
				Suggestion: "reduce",
			},
		},
		{
			text: "(prefers-reduced-data:)",
			err: parser.ErrUnexpected{
				Span: source.Span{Start: 22, End: 23},
				Got:  "`)`",
				Want: []string{"a value for `prefers-reduced-data`"},
			},
		},
		{
			text: "(widht: 10px)",
			err: parser.ErrUnexpectedKeyword{
				Span:       source.Span{Start: 1, End: 6},
				Got:        "widht",
				Want:       "a media feature",
				Suggestion: "width",
			},
		},
		{
			text: "(grid: 2)",
			err:  parser.ErrMalformedNumber{Span: source.Span{Start: 7, End: 8}, Got: "2", Reason: "must be 0 or 1"},
		},
		{
			text: "(width: 10px",
			err: parser.ErrMismatch{
				Span: source.Span{Start: 12, End: 12},
				Open: source.Span{Start: 0, End: 1},
				Want: token.RightParen,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse(test.text, media.ParseQuery)
			assert.Equal(t, test.err, err)
		})
	}
}
