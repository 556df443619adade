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

// Package hdx parses, formats and minifies CSS stylesheets.
//
// The work is split into these phases:
//  1. Lex the source into tokens.
//     Also see: lexer.Lex
//  2. Parse the tokens into a stylesheet tree, recovering from errors.
//     Also see: css.ParseStyleSheet
//  3. Write the tree back out under a canonical or minified policy.
//     Also see: writer.Options
//
// [Parse], [Format] and [Minify] run these phases over a single string. A
// [Processor] runs them over many files at once, loading each one through a
// [Resolver] and taking advantage of multiple CPU cores.
//
// # Resolvers
//
// A Resolver is how the processor locates its inputs. It can answer a query
// with source text, which will be parsed, or with an already parsed [Result],
// which is used as-is. A minimal Processor, which loads files from the file
// system relative to the current working directory, looks like this:
//
//	processor := hdx.Processor{
//	    Resolver: &hdx.SourceResolver{},
//	}
package hdx
