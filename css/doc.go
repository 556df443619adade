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

// Package css implements the grammar of whole stylesheets: the rule list,
// @charset and @media rules, style rules and their declarations.
//
// Unlike the value and media grammars, which fail atomically, this grammar
// recovers from errors. A declaration that fails to parse is discarded; a rule
// that fails to parse is skipped up to the end of its block. Either way, a
// diagnostic is recorded in the parser's report and parsing continues with
// the next sibling.
//
// Selectors, custom property values, unknown properties and unknown at-rules
// are kept as written, as a [Raw] run of tokens.
package css

//go:generate go run github.com/maraisr/hdx/internal/enum charset.yaml
