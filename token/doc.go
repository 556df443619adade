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

// Package token defines the CSS token model shared by the lexer and every
// grammar built on top of it.
//
// A [Stream] is an immutable, materialized sequence of [Token]s that always
// ends in an [EOF] token. Parsers walk a stream with a [Cursor], which
// provides one token of lookahead and skips trivia (whitespace and comments)
// unless asked not to.
package token

//go:generate go run github.com/maraisr/hdx/internal/enum kind.yaml
