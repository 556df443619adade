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

// Package grammar contains the generic shapes that families of CSS value and
// media feature grammars are built from.
//
// Each shape is parametrized by the grammar of a single value, or by a
// keyword table, so that a concrete property or feature is a one-line
// instantiation:
//
//   - [Discrete] is a media feature tested bare or against a keyword.
//   - [Range] is a media feature compared against a value.
//   - [LogicalSides] and [Rect] are the 2- and 4-slot box shorthands.
//   - [FlagSet] parses space-separated keywords into [Flags].
package grammar

//go:generate go run github.com/maraisr/hdx/internal/enum op.yaml
