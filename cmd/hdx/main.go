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

// Command hdx formats and minifies CSS stylesheets.
//
// Usage:
//
//	hdx [flags] [files...]
//
// With no files, hdx reads a stylesheet from standard input. Formatted output
// goes to standard output unless -w is given, and diagnostics go to standard
// error. Settings are read from hdx.yaml or hdx.json in the working directory
// when present; flags override them.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/maraisr/hdx"
	"github.com/maraisr/hdx/report"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

const stdinPath = "<stdin>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	config, logFile, logLevel string
	check, write, compact     bool
}

// run is the whole program, parameterized over its environment.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hdx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: hdx [flags] [files...]")
		fs.PrintDefaults()
	}

	var f flags
	var c config
	fs.BoolVar(&c.Minify, "minify", false, "write the smallest equivalent stylesheet")
	fs.IntVar(&c.Jobs, "j", 0, "maximum number of files processed at once (0 means one per CPU)")
	fs.BoolVar(&c.WarningsAreErrors, "Werror", false, "treat warnings as errors")
	fs.BoolVar(&f.check, "check", false, "list files whose output differs from their contents and exit non-zero")
	fs.BoolVar(&f.write, "w", false, "write output back to each file instead of standard output")
	fs.BoolVar(&f.compact, "compact", false, "print one line per diagnostic")
	fs.StringVar(&f.config, "config", "", "path to a config file (default: hdx.yaml or hdx.json if present)")
	fs.StringVar(&f.logFile, "log-file", "", "also write JSON logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "warn", "minimum level logged to standard error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, closeLog, err := newLogger(stderr, f.logLevel, f.logFile)
	if err != nil {
		fmt.Fprintln(stderr, "hdx:", err)
		return exitUsage
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(stderr, "hdx:", err)
		}
	}()

	c, err = resolveConfig(fs, f.config, c)
	if err != nil {
		log.Error("loading config", "error", err)
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if f.write {
			log.Error("cannot use -w with standard input")
			return exitUsage
		}
		paths = []string{stdinPath}
	}

	fsys := &hdx.SourceResolver{}
	p := hdx.Processor{
		MaxParallelism: c.Jobs,
		Resolver: hdx.ResolverFunc(func(path string) (hdx.SearchResult, error) {
			if path == stdinPath {
				return hdx.SearchResult{Source: stdin}, nil
			}
			return fsys.FindFileByPath(path)
		}),
	}

	log.Debug("processing", "files", len(paths), "jobs", c.Jobs, "minify", c.Minify)
	results, err := p.Process(ctx, paths...)
	if err != nil {
		log.Error("processing failed", "error", err)
		return exitFailed
	}

	renderer := report.Renderer{
		Compact:           f.compact,
		Colorize:          isTerminal(stderr),
		WarningsAreErrors: c.WarningsAreErrors,
	}
	opts := c.options()

	code := exitOK
	for _, res := range results {
		errs, warns, err := renderer.Render(res.File, res.Report, stderr)
		if err != nil {
			log.Error("writing diagnostics", "error", err)
			return exitFailed
		}
		log := log.With("path", res.File.Path())
		if errs > 0 {
			log.Info("stylesheet has errors", "errors", errs, "warnings", warns)
			code = exitFailed
		}

		var out bytes.Buffer
		if err := res.Write(&out, opts); err != nil {
			log.Error("writing stylesheet", "error", err)
			return exitFailed
		}

		switch {
		case f.check:
			if out.String() != res.File.Text() {
				log.Warn("stylesheet is not formatted")
				fmt.Fprintln(stdout, res.File.Path())
				code = exitFailed
			}
		case f.write:
			if err := writeFile(res.File.Path(), out.Bytes()); err != nil {
				log.Error("writing stylesheet", "error", err)
				return exitFailed
			}
			log.Info("wrote stylesheet", "in", len(res.File.Text()), "out", out.Len())
		default:
			if _, err := stdout.Write(out.Bytes()); err != nil {
				log.Error("writing output", "error", err)
				return exitFailed
			}
		}
	}
	return code
}

// resolveConfig merges the config file, if any, under the flags that were set
// explicitly on the command line.
func resolveConfig(fs *flag.FlagSet, path string, flagged config) (config, error) {
	if path == "" {
		var err error
		if path, err = findConfig("."); err != nil || path == "" {
			return flagged, err
		}
	}
	c, err := loadConfig(path)
	if err != nil {
		return c, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "minify":
			c.Minify = flagged.Minify
		case "j":
			c.Jobs = flagged.Jobs
		case "Werror":
			c.WarningsAreErrors = flagged.WarningsAreErrors
		}
	})
	return c, nil
}

func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
