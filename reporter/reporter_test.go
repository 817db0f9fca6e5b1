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

package reporter_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/reporter"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	pos := ast.SourcePos{Filename: "a.stub", Line: 3, Col: 7}
	err := reporter.Errorf(pos, "unknown token %q", "foo")
	assert.Equal(t, `a.stub:3:7: unknown token "foo"`, err.Error())
	assert.Equal(t, pos, err.GetPosition())
	assert.Equal(t, `unknown token "foo"`, err.Unwrap().Error())

	sentinel := errors.New("boom")
	wrapped := fmt.Errorf("compiling: %w", reporter.Error(ast.UnknownPos("b.stub"), sentinel))
	assert.ErrorIs(t, wrapped, sentinel)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, wrapped, &ewp)
	assert.Equal(t, "b.stub: boom", ewp.Error())
}

func TestHandlerDefaultFailsFast(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	first := h.HandleErrorf(ast.UnknownPos("x"), "first")
	require.Error(t, first)
	second := h.HandleErrorf(ast.UnknownPos("x"), "second")
	assert.Equal(t, first, second)
	assert.Equal(t, first, h.Error())
}

func TestHandlerSwallowingReporter(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var errs, warnings []string
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err.Error())
			return nil
		},
		func(err reporter.ErrorWithPos) {
			mu.Lock()
			defer mu.Unlock()
			warnings = append(warnings, err.Error())
		},
	)
	h := reporter.NewHandler(rep)
	assert.NoError(t, h.ReporterError())
	assert.NoError(t, h.HandleErrorf(ast.UnknownPos("x"), "oops"))
	h.HandleWarningf(ast.SourcePos{Filename: "x", Line: 1, Col: 1}, "careful")

	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
	assert.Equal(t, []string{"x: oops"}, errs)
	assert.Equal(t, []string{"x:1:1: careful"}, warnings)
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	plain := errors.New("not positional")
	assert.Equal(t, plain, h.HandleError(plain))
	assert.Equal(t, plain, h.Error())
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	source := "read n:int\nloop wirte x\n"
	err := reporter.Errorf(ast.SourcePos{Filename: "a.stub", Line: 2, Col: 6, Offset: 16}, "unknown token %q", "wirte")
	want := "a.stub:2:6: unknown token \"wirte\"\n" +
		"   2 | loop wirte x\n" +
		"     |      ^^^^^"
	assert.Equal(t, want, reporter.Snippet(err, source))

	// Wide characters shift the caret by their display width.
	source = "read 名前:int é:foo"
	err = reporter.Errorf(ast.SourcePos{Filename: "b.stub", Line: 1, Col: 17}, "bad type")
	got := reporter.Snippet(err, source)
	assert.True(t, strings.HasSuffix(got, "\n     | "+strings.Repeat(" ", 14)+"^^^^^"), got)

	// Positions outside the source degrade to the plain message.
	err = reporter.Errorf(ast.UnknownPos("c.stub"), "no position")
	assert.Equal(t, "c.stub: no position", reporter.Snippet(err, source))
}
