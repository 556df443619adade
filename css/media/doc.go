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

// Package media implements the grammar of media query lists, as found in the
// prelude of an @media rule.
//
// The grammar is recursive descent with a single token of lookahead: every
// branch is chosen by the current token, and a token no branch accepts is an
// error at that token. Nested parenthesized conditions, as in
// `((hover) or (pointer))`, are recognized and rejected as unimplemented.
package media

//go:generate go run github.com/maraisr/hdx/internal/enum keywords.yaml
