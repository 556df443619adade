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

package hdx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Processor parses many stylesheets in parallel.
type Processor struct {
	// Resolves file names into source code or already parsed stylesheets.
	// This field is required.
	Resolver Resolver
	// The maximum parallelism to use when processing. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// Process loads and parses the given files, returning one result per path in
// the same order.
//
// Diagnostics about a stylesheet's contents do not fail processing; they are
// recorded in each Result's Report. The returned error is the first failure
// to load a file, in which case processing of the remaining files stops.
func (p *Processor) Process(ctx context.Context, paths ...string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if p.Resolver == nil {
		return nil, errors.New("hdx: processor has no resolver")
	}

	par := p.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	results := make([]*Result, len(paths))
	grp, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		grp.Go(func() error {
			defer sem.Release(1)
			res, err := p.process(path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Processor) process(path string) (*Result, error) {
	found, err := p.Resolver.FindFileByPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if found.Parsed != nil {
		return found.Parsed, nil
	}
	if found.Source == nil {
		return nil, fmt.Errorf("resolving %s: resolver returned no source", path)
	}
	if c, ok := found.Source.(io.Closer); ok {
		defer c.Close()
	}
	text, err := io.ReadAll(found.Source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, string(text)), nil
}
