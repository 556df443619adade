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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml, err string
	}{
		{
			name: "ok",
			yaml: `
name: Hover
type: int8
methods:
  - kind: string
  - kind: all
    name: HoverValues
    skip: [HoverNone]
values:
  - {name: HoverNone, string: none}
  - {name: HoverHover, string: hover}`,
		},
		{
			name: "uppercase",
			yaml: `{name: E, type: int, values: [{name: A, string: Screen}]}`,
			err:  `E.A: spelling "Screen" is not lowercase`,
		},
		{
			name: "default spelling",
			yaml: `{name: E, type: int, values: [{name: A}]}`,
			err:  `E.A: spelling "A" is not lowercase`,
		},
		{
			name: "duplicate spelling",
			yaml: `{name: E, type: int, values: [{name: A, string: x}, {name: B, string: x}]}`,
			err:  `E: A and B are both spelled "x"`,
		},
		{
			name: "duplicate name",
			yaml: `{name: E, type: int, values: [{name: A, string: x}, {name: A, string: y}]}`,
			err:  `E: duplicate value A`,
		},
		{
			name: "bad skip",
			yaml: `{name: E, type: int, methods: [{kind: all, name: Es, skip: [B]}], values: [{name: A, string: a}]}`,
			err:  `E: cannot skip unknown value B`,
		},
		{
			name: "unnamed all",
			yaml: `{name: E, type: int, methods: [{kind: all}], values: [{name: A, string: a}]}`,
			err:  `E: method of kind all needs a name`,
		},
		{
			name: "empty",
			yaml: `{name: E, type: int}`,
			err:  `E: no values`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var e Enum
			require.NoError(t, yaml.Unmarshal([]byte(test.yaml), &e))
			err := e.validate()
			if test.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, test.err)
		})
	}
}

func TestMakeDocs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, makeDocs("", "\t"))
	assert.Equal(t, "\t// One.\n\t//\n\t// Two.\n", makeDocs("One.\n\nTwo.\n", "\t"))
}
