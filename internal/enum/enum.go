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

// enum generates Go enums from YAML descriptions.
//
// To generate an enum file, use
//
//	//go:generate go run github.com/maraisr/hdx/internal/enum foo.yaml
//
// This writes foo.go next to foo.yaml, which must contain a list of [Enum].
//
// Most enums in this module double as keyword tables: their String method
// returns the canonical spelling that [keyword.New] indexes them by, so every
// spelling must be lowercase and unique within its enum.
//
//nolint:revive // Fields ending in _ are exported for YAML but shadowed by methods.
package main

import (
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed enum.go.tmpl
var tmplText string

// Enum is one generated type.
type Enum struct {
	Name    string   `yaml:"name"` // Go name of the type.
	Type    string   `yaml:"type"` // Underlying integer type.
	Docs    string   `yaml:"docs"`
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns e's values, linked back to e.
func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// validate checks the constraints keyword tables rely on.
func (e *Enum) validate() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum is missing a name or type")
	}
	if len(e.Values_) == 0 {
		return fmt.Errorf("%s: no values", e.Name)
	}

	names := make(map[string]bool, len(e.Values_))
	spellings := make(map[string]string, len(e.Values_))
	for _, v := range e.Values_ {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true

		s := v.String()
		if s != strings.ToLower(s) {
			return fmt.Errorf("%s.%s: spelling %q is not lowercase", e.Name, v.Name, s)
		}
		if prev, ok := spellings[s]; ok {
			return fmt.Errorf("%s: %s and %s are both spelled %q", e.Name, prev, v.Name, s)
		}
		spellings[s] = v.Name
	}

	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: cannot skip unknown value %s", e.Name, skip)
			}
		}
	}
	return nil
}

// Value is one constant of an [Enum].
type Value struct {
	Name    string  `yaml:"name"`
	String_ *string `yaml:"string"` // Defaults to Name.
	Docs    string  `yaml:"docs"`

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

func (v Value) String() string {
	if v.String_ == nil {
		return v.Name
	}
	return *v.String_
}

// Method is a generated method or function over an [Enum].
type Method struct {
	Kind  MethodKind `yaml:"kind"`
	Name_ string     `yaml:"name"` // Required for "all".
	Docs_ string     `yaml:"docs"`
	Skip  []string   `yaml:"skip"` // Values the method ignores.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}
	switch m.Kind {
	case MethodString:
		return "String", nil
	case MethodGoString:
		return "GoString", nil
	case MethodAll:
		return "", errors.New("method of kind all needs a name")
	default:
		return "", fmt.Errorf("unknown method kind %q", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}
	switch m.Kind {
	case MethodString:
		return "String implements [fmt.Stringer]."
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	default:
		return ""
	}
}

// MethodKind selects what a [Method] generates.
type MethodKind string

const (
	// A method returning the value's spelling.
	MethodString MethodKind = "string"
	// A method returning the value's Go name.
	MethodGoString MethodKind = "go-string"
	// A function iterating over every value in declaration order.
	MethodAll MethodKind = "all"
)

// makeDocs turns text into a doc comment at the given indentation.
func makeDocs(text, indent string) string {
	if text == "" {
		return ""
	}
	var out strings.Builder
	for line := range strings.SplitSeq(strings.TrimSpace(text), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		fmt.Fprintf(&out, "// %s\n", line)
	}
	return out.String()
}

type input struct {
	Binary, Package, Path, Config string
	YAML                          []Enum
}

func generate(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	in := input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
		Path:    strings.TrimSuffix(config, ".yaml") + ".go",
	}
	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	in.Binary = info.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &in.YAML); err != nil {
		return err
	}
	for i := range in.YAML {
		if err := in.YAML[i].validate(); err != nil {
			return err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	out, err := os.Create(in.Path)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	failed := false
	for _, config := range os.Args[1:] {
		if err := generate(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", config, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
