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

// Package report provides the structured diagnostics produced by the parser.
//
// A [Diagnostic] is data: a [Kind], a [Level], the offending [source.Span],
// and the expected and suggested text. Turning diagnostics into prose is the
// job of a renderer, such as [Render].
package report

//go:generate go run github.com/maraisr/hdx/internal/enum kind.yaml
