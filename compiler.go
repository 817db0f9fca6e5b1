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


package stubcompile

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/internal/ctxlog"
	"github.com/bufbuild/stubcompile/parser"
	"github.com/bufbuild/stubcompile/reporter"
)

// Compiler handles compilation tasks, to turn stub generator scripts into
// stubs that are ready to be rendered.
//
// Compilation does no language-specific work. Stubs are rewritten for a
// target language when they are rendered; see [Render].
type Compiler struct {
	// Resolves path/file names into source code or parsed stubs. This field
	// is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings.
	Reporter reporter.Reporter
}

// Compile compiles the given file names into stubs. The returned slice has
// one stub per file name, in the same order. A file name given more than
// once is only resolved and parsed once.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*ast.Stub, error) {
	if len(files) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		c:       c,
		h:       reporter.NewHandler(c.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.compile(ctx, f)
	}

	stubs := make([]*ast.Stub, len(files))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		// Duplicate names share a result, so hand out copies.
		if r.shared {
			stubs[i] = r.res.Clone()
		} else {
			stubs[i] = r.res
		}
		r.shared = true
	}

	return stubs, nil
}

type result struct {
	ready chan struct{}
	res   *ast.Stub
	err   error

	// Only accessed by Compile after ready is closed.
	shared bool
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(stub *ast.Stub) {
	r.res = stub
	close(r.ready)
}

type executor struct {
	c *Compiler
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// if results included a result, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	stub, err := e.asStub(file, sr)
	if err != nil {
		r.fail(err)
		return
	}
	ctxlog.FromContext(ctx).DebugContext(ctx, "compiled stub",
		"file", file,
		"commands", len(stub.Commands),
	)
	r.complete(stub)
}

func (e *executor) asStub(name string, r SearchResult) (*ast.Stub, error) {
	if r.Stub != nil {
		return r.Stub.Clone(), nil
	}
	if r.Source == nil {
		return nil, fmt.Errorf("search result for %q has neither source nor stub", name)
	}
	return parser.Parse(name, r.Source, e.h)
}
