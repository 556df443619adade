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

package keyword_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
)

type scan int

const (
	interlace scan = iota
	progressive
)

func (s scan) String() string {
	return [...]string{"interlace", "progressive"}[s]
}

var scans = keyword.New(slices.Values([]scan{interlace, progressive}))

func TestTable(t *testing.T) {
	t.Parallel()

	for v := range scans.All() {
		got, ok := scans.Resolve(scans.Unresolve(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}

	v, ok := scans.Lookup("PROGRESSIVE")
	assert.True(t, ok)
	assert.Equal(t, progressive, v)

	v, ok = scans.Resolve(atom.Lower(atom.New("InterLace")))
	assert.True(t, ok)
	assert.Equal(t, interlace, v)

	_, ok = scans.Resolve(atom.New("InterLace"))
	assert.False(t, ok, "Resolve does not fold case")

	_, ok = scans.Lookup("interlaced-x")
	assert.False(t, ok)

	assert.Equal(t, 2, scans.Len())
	assert.Equal(t, []string{"interlace", "progressive"}, scans.Spellings())
	assert.Equal(t, "progressive", scans.Unresolve(progressive).String())
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "interlace", scans.Suggest("interlaced"))
	assert.Equal(t, "progressive", scans.Suggest("Progresive"))
	assert.Empty(t, scans.Suggest("none"))
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		keyword.New(slices.Values([]scan{interlace, interlace}))
	})
}
