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

package hdx_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/writer"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	out, r := hdx.Format("a{color:red}")
	assert.Empty(t, r)
	assert.Equal(t, "a {\n  color: red;\n}\n", out)

	out, r = hdx.Minify("p { MARGIN: 0px 0px; Top: 0 !important; }")
	assert.Empty(t, r)
	assert.Equal(t, "p{margin:0;top:0!important}", out)

	out, _ = hdx.Minify("@media print {}")
	assert.Empty(t, out)
}

func TestParse(t *testing.T) {
	t.Parallel()

	res := hdx.Parse("a.css", "a { colr: red; color: blue }")
	assert.Equal(t, "a.css", res.File.Path())
	require.Len(t, res.Report, 1)
	assert.Equal(t, report.Warning, res.Report[0].Level)
	assert.False(t, res.Report.HasErrors())
	assert.Equal(t, "a{colr:red;color:blue}", res.String(writer.Minified))

	var out strings.Builder
	require.NoError(t, res.Write(&out, writer.Canonical))
	assert.Equal(t, "a {\n  colr: red;\n  color: blue;\n}\n", out.String())

	node, ok := res.Index().At(17)
	require.True(t, ok)
	assert.Equal(t, 15, node.Span.Start)
}

func TestProcessor(t *testing.T) {
	t.Parallel()

	srcs := map[string]string{
		"a.css": "a{color:red}",
		"b.css": "@media print{b{top:0}}",
		"c.css": "c{",
	}
	p := hdx.Processor{
		Resolver:       &hdx.SourceResolver{Accessor: hdx.SourceAccessorFromMap(srcs)},
		MaxParallelism: 2,
	}

	results, err := p.Process(context.Background(), "c.css", "a.css", "b.css")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "c.css", results[0].File.Path())
	assert.True(t, results[0].Report.HasErrors())
	assert.Equal(t, "a{color:red}", results[1].String(writer.Minified))
	assert.Equal(t, "@media print{b{top:0}}", results[2].String(writer.Minified))

	results, err = p.Process(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessorErrors(t *testing.T) {
	t.Parallel()

	p := hdx.Processor{
		Resolver: &hdx.SourceResolver{Accessor: hdx.SourceAccessorFromMap(nil)},
	}
	_, err := p.Process(context.Background(), "missing.css")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.css")

	_, err = (&hdx.Processor{}).Process(context.Background(), "a.css")
	require.Error(t, err)

	broken := errors.New("broken")
	p.Resolver = hdx.ResolverFunc(func(string) (hdx.SearchResult, error) {
		return hdx.SearchResult{Source: io.MultiReader(strings.NewReader("a{"), errReader{broken})}, nil
	})
	_, err = p.Process(context.Background(), "a.css")
	require.ErrorIs(t, err, broken)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Resolver = &hdx.SourceResolver{Accessor: hdx.SourceAccessorFromMap(map[string]string{"a.css": ""})}
	_, err = p.Process(ctx, "a.css")
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessorParallelism(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	var once sync.Once
	release := make(chan struct{})
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = fmt.Sprintf("%d.css", i)
	}

	p := hdx.Processor{
		MaxParallelism: 3,
		Resolver: hdx.ResolverFunc(func(path string) (hdx.SearchResult, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			if n == 3 {
				once.Do(func() { close(release) })
			}
			<-release
			return hdx.SearchResult{Source: strings.NewReader("a{}")}, nil
		}),
	}

	results, err := p.Process(context.Background(), paths...)
	require.NoError(t, err)
	assert.Len(t, results, len(paths))
	assert.Equal(t, int32(3), peak.Load())
}

func TestResolvers(t *testing.T) {
	t.Parallel()

	parsed := hdx.Parse("pre.css", "pre{}")
	composite := hdx.CompositeResolver{
		hdx.ResolverFunc(func(path string) (hdx.SearchResult, error) {
			if path == "pre.css" {
				return hdx.SearchResult{Parsed: parsed, Source: strings.NewReader("ignored{}")}, nil
			}
			return hdx.SearchResult{}, fs.ErrNotExist
		}),
		&hdx.SourceResolver{
			SearchPaths: []string{"lib", "vendor"},
			Accessor: hdx.SourceAccessorFromMap(map[string]string{
				"vendor/x.css": "x{}",
			}),
		},
	}

	p := hdx.Processor{Resolver: composite}
	results, err := p.Process(context.Background(), "pre.css", "x.css")
	require.NoError(t, err)
	assert.Same(t, parsed, results[0])
	assert.Equal(t, "x.css", results[1].File.Path())
	assert.Equal(t, "x{}", results[1].File.Text())

	_, err = p.Process(context.Background(), "y.css")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = hdx.CompositeResolver{}.FindFileByPath("x.css")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
