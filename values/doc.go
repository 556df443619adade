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

// Package values implements the grammars of individual property values, and
// a registry mapping property names to them.
//
// Each value type is a closed sum encoded as a struct with a variant tag (its
// Kind), or a plain keyword enum when every variant is a keyword. Shorthands
// are instantiations of the templates in package grammar over these types.
package values

//go:generate go run github.com/maraisr/hdx/internal/enum keywords.yaml
//go:generate go run github.com/maraisr/hdx/internal/enum property.yaml
