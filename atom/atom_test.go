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

package atom_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/atom"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"px",
		"?",
		"min-width",
		"prefers-reduced-motion",
		"a_b_c",
		"-----",
		"foo-",
		"-webkit-box",
		"very long",
		" ",
		"verylongkeyword",
	}

	var table atom.Table
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%s/%d", s, i), func(t *testing.T) {
				t.Parallel()

				a := table.Intern(s)
				assert.Equal(t, s, table.Value(a), "atom: %v", int64(a))
				assert.Equal(t, shouldInline(s), a < 0)
			})
		}
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, atom.New("prefers-reduced-data"), atom.New("prefers-reduced-data"))
	assert.Equal(t, atom.New("px"), atom.New("px"))
	assert.NotEqual(t, atom.New("PX"), atom.New("px"))
	assert.Equal(t, "prefers-reduced-data", atom.New("prefers-reduced-data").String())
}

func TestLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, atom.New("utf-8"), atom.Lower(atom.New("UTF-8")))
	assert.Equal(t, atom.New("screen"), atom.Lower(atom.New("ScReEn")))

	a := atom.New("already-lower")
	assert.Equal(t, a, atom.Lower(a))
}

func TestConcurrent(t *testing.T) {
	t.Parallel()

	var (
		table atom.Table
		wg    sync.WaitGroup
	)
	got := make([]atom.Atom, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = table.Intern("a-keyword-long-enough-for-the-table")
		}()
	}
	wg.Wait()

	for _, a := range got {
		assert.Equal(t, got[0], a)
	}
}

func TestPreload(t *testing.T) {
	t.Parallel()

	var atoms struct {
		Media atom.Atom `atom:"media"`
		Skip  atom.Atom
	}
	atom.Preload(&atoms)
	assert.Equal(t, atom.New("media"), atoms.Media)
	assert.True(t, atoms.Skip.IsZero())
}

func shouldInline(s string) bool {
	if s == "" || len(s) > 10 || strings.HasSuffix(s, "-") {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r == '_', r == '-':

		default:
			return false
		}
	}

	return true
}
