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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/maraisr/hdx/writer"
)

// configNames are the files searched for, in order, when no -config flag is
// given.
var configNames = []string{"hdx.yaml", "hdx.yml", "hdx.json"}

// config is the on-disk configuration. Flags given on the command line take
// precedence over it.
type config struct {
	// Minify selects the minified output policy.
	Minify bool `yaml:"minify" json:"minify"`
	// Indent is the indentation string for canonical output.
	Indent string `yaml:"indent" json:"indent"`
	// Jobs bounds the number of files processed at once.
	Jobs int `yaml:"jobs" json:"jobs"`
	// Keep names optional constructs kept when minifying.
	Keep []string `yaml:"keep" json:"keep"`
	// WarningsAreErrors fails the run on any warning.
	WarningsAreErrors bool `yaml:"warnings-are-errors" json:"warnings-are-errors"`
}

var optionNames = map[string]writer.Option{
	"redundant-rules":     writer.RedundantRules,
	"trailing-semicolon":  writer.TrailingSemicolon,
	"quoted-family-names": writer.QuotedFamilyNames,
	"leading-zero":        writer.LeadingZero,
	"zero-units":          writer.ZeroUnits,
	"long-colors":         writer.LongColors,
	"all":                 writer.AllOptions,
}

// findConfig returns the path of the first config file in dir, or "" if
// there is none.
func findConfig(dir string) (string, error) {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}

// loadConfig reads the config file at path. YAML and JSON (with comments and
// trailing commas) are accepted, chosen by extension.
func loadConfig(path string) (config, error) {
	var c config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the zero config.
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return c, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return c, fmt.Errorf("unsupported config format %q", ext)
	}

	if c.Jobs < 0 {
		return c, fmt.Errorf("%s: jobs must not be negative", path)
	}
	if _, err := c.keep(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c config) keep() (writer.Option, error) {
	var opts writer.Option
	for _, name := range c.Keep {
		opt, ok := optionNames[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("unknown output option %q", name)
		}
		opts |= opt
	}
	return opts, nil
}

// options returns the writer policy this config selects.
func (c config) options() writer.Options {
	opts := writer.Canonical
	if c.Minify {
		opts = writer.Minified
		opts.Output, _ = c.keep()
	}
	opts.Indent = c.Indent
	return opts.WithDefaults()
}
