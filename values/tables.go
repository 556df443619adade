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
	"github.com/maraisr/hdx/keyword"
)

var (
	lengthUnits     = keyword.New(LengthUnits())
	resolutionUnits = keyword.New(ResolutionUnits())
	lineWidths      = keyword.New(LineWidthKeywords())
	lineStyles      = keyword.New(LineStyles())
	visibilities    = keyword.New(Visibilities())
	zooms           = keyword.New(ZoomKeywords())
	maxSizes        = keyword.New(MaxSizeKeywords())
	colorKeywords   = keyword.New(ColorKeywords())
	genericFamilies = keyword.New(GenericFamilies())
	systemFamilies  = keyword.New(SystemFamilies())
	cssWide         = keyword.New(CSSWideKeywords())
	properties      = keyword.New(Properties())

	// TrimSet is the grammar of margin-trim's keywords.
	TrimSet = &grammar.FlagSet[Trim]{
		Keywords: keyword.New(Trims()),
		Full: grammar.Bit(BlockStart) | grammar.Bit(BlockEnd) |
			grammar.Bit(InlineStart) | grammar.Bit(InlineEnd),
		Coarse: grammar.Bit(Block) | grammar.Bit(Inline),
		What:   "a margin-trim keyword",
	}
)
