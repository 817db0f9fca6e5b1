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
	"strings"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/internal/ctxlog"
	"github.com/bufbuild/stubcompile/parser"
	"github.com/bufbuild/stubcompile/preprocessor"
	"github.com/bufbuild/stubcompile/renderer"
	"github.com/bufbuild/stubcompile/reporter"
)

// ScriptFilename is the file name used in positions of scripts given to
// [Generate] as a string.
const ScriptFilename = "<stub>"

// Compile parses script into a stub. No language-specific preprocessing is
// done. Warnings are dropped; use a [Compiler] with a custom reporter to see
// them.
func Compile(filename, script string) (*ast.Stub, error) {
	return parser.Parse(filename, strings.NewReader(script), reporter.NewHandler(nil))
}

// Generate compiles script and renders it as a program in the named
// built-in language. Warnings and the debug rendering are written to the
// logger in ctx.
func Generate(ctx context.Context, lang, script string) (string, error) {
	registry, err := renderer.Builtin()
	if err != nil {
		return "", err
	}
	l, err := registry.Lookup(lang)
	if err != nil {
		return "", err
	}

	logger := ctxlog.FromContext(ctx)
	rep := reporter.NewReporter(nil, func(w reporter.ErrorWithPos) {
		logger.WarnContext(ctx, "stub warning", "warning", w.Error())
	})
	stub, err := parser.Parse(ScriptFilename, strings.NewReader(script), reporter.NewHandler(rep))
	if err != nil {
		return "", err
	}
	return Render(ctx, l, stub)
}

// Preprocess returns a copy of stub rewritten by the preprocessor that lang
// asks for. The stub itself is not modified.
func Preprocess(lang *renderer.Language, stub *ast.Stub) (*ast.Stub, error) {
	pre, err := preprocessor.Lookup(lang.Preprocessor)
	if err != nil {
		return nil, err
	}
	stub = stub.Clone()
	preprocessor.Apply(stub, pre)
	return stub, nil
}

// Render preprocesses stub for lang and renders it. The result has no
// leading or trailing whitespace.
//
// The debug rendering of the preprocessed stub is logged at debug level.
func Render(ctx context.Context, lang *renderer.Language, stub *ast.Stub) (string, error) {
	stub, err := Preprocess(lang, stub)
	if err != nil {
		return "", err
	}

	debug, err := renderer.RenderStub(lang, stub, true)
	if err != nil {
		return "", err
	}
	ctxlog.FromContext(ctx).DebugContext(ctx, "preprocessed stub", "language", lang.Name, "stub", debug)

	out, err := renderer.RenderStub(lang, stub, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
