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


package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/stubcompile"
	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/config"
	"github.com/bufbuild/stubcompile/internal/ctxlog"
	"github.com/bufbuild/stubcompile/renderer"
	"github.com/bufbuild/stubcompile/reporter"
	"github.com/bufbuild/stubcompile/samples"
)

type generated struct {
	name string
	text string
}

func runGenerate(ctx context.Context, env Env, args []string) error {
	var g globalFlags
	flagSet := newFlagSet("generate", "[options] FILE...", env)
	g.register(flagSet)
	langFlag := flagSet.String("lang", "", "Comma-separated target languages. Defaults to the config file's languages, or all of them.")
	outFlag := flagSet.String("o", "", "Write each program into this directory instead of stdout.")
	debugFlag := flagSet.Bool("debug", false, "Print the preprocessed commands instead of the programs.")
	parFlag := flagSet.Int("j", 0, "Maximum parallelism. Defaults to the config file's max_parallelism, or the number of CPUs.")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return usageError("no stub files given")
	}

	ctx, cfg, err := g.setup(ctx, env)
	if err != nil {
		return err
	}
	targets, err := selectLanguages(*langFlag, cfg.Languages)
	if err != nil {
		return err
	}
	par := *parFlag
	if par <= 0 {
		par = cfg.MaxParallelism
	}

	files, err := expandFiles(flagSet.Args())
	if err != nil {
		return err
	}
	stubs, err := compileFiles(ctx, env, cfg, par, files)
	if err != nil {
		return err
	}

	outputs := make([]generated, len(stubs)*len(targets))
	grp, gctx := errgroup.WithContext(ctx)
	if par > 0 {
		grp.SetLimit(par)
	}
	for i, stub := range stubs {
		stem := strings.TrimSuffix(path.Base(filepath.ToSlash(files[i])), ".stub")
		for j, lang := range targets {
			k := i*len(targets) + j
			grp.Go(func() error {
				text, err := render(gctx, lang, stub, *debugFlag)
				if err != nil {
					return fmt.Errorf("%s: %w", files[i], err)
				}
				outputs[k] = generated{name: stem + "." + lang.SourceFileExt, text: text}
				return nil
			})
		}
	}
	if err := grp.Wait(); err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if *outFlag != "" {
		return writeOutputs(ctx, *outFlag, outputs)
	}
	printOutputs(env.Stdout, outputs)
	return nil
}

func render(ctx context.Context, lang *renderer.Language, stub *ast.Stub, debug bool) (string, error) {
	if !debug {
		return stubcompile.Render(ctx, lang, stub)
	}
	stub, err := stubcompile.Preprocess(lang, stub)
	if err != nil {
		return "", err
	}
	text, err := renderer.RenderStub(lang, stub, true)
	return strings.TrimSpace(text), err
}

// expandFiles replaces arguments that are glob patterns, such as
// "puzzles/**/*.stub", with the files they match, in order.
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, usageError("invalid pattern %q: %v", arg, err)
		}
		if len(matches) == 0 {
			return nil, usageError("no files match %q", arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// selectLanguages resolves the -lang flag, falling back to the configured
// languages and then to every built-in one.
func selectLanguages(flagValue string, configured []string) ([]*renderer.Language, error) {
	registry, err := renderer.Builtin()
	if err != nil {
		return nil, err
	}

	var names []string
	for name := range strings.SplitSeq(flagValue, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = configured
	}
	if len(names) == 0 {
		names = registry.Names()
	}

	langs := make([]*renderer.Language, 0, len(names))
	for _, name := range names {
		lang, err := registry.Lookup(name)
		if err != nil {
			return nil, usageError("%v (available: %s)", err, strings.Join(registry.Names(), ", "))
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

// compileFiles compiles the named scripts, which may also be bundled
// samples. Syntax errors are printed to stderr with the offending line.
func compileFiles(ctx context.Context, env Env, cfg *config.Config, par int, files []string) ([]*ast.Stub, error) {
	logger := ctxlog.FromContext(ctx)
	compiler := stubcompile.Compiler{
		Resolver:       samples.WithSamples(&stubcompile.SourceResolver{ImportPaths: cfg.ImportPaths}),
		MaxParallelism: par,
		Reporter: reporter.NewReporter(nil, func(w reporter.ErrorWithPos) {
			logger.Warn("Stub warning.", "warning", w.Error())
		}),
	}
	stubs, err := compiler.Compile(ctx, files...)
	if err == nil {
		logger.Debug("Compiled stub files.", "count", len(stubs))
		return stubs, nil
	}

	var ewp reporter.ErrorWithPos
	if errors.As(err, &ewp) {
		if source, ok := findSource(ewp.GetPosition().Filename, cfg.ImportPaths); ok {
			fmt.Fprintln(env.Stderr, reporter.Snippet(ewp, source))
			return nil, &ExitError{Code: ExitFailure}
		}
	}
	return nil, &ExitError{Code: ExitFailure, Message: err.Error()}
}

// findSource looks a script up the same way the compiler's resolver does.
func findSource(name string, importPaths []string) (string, bool) {
	if len(importPaths) == 0 {
		if source, ok := readSource(name); ok {
			return source, true
		}
	}
	for _, dir := range importPaths {
		if source, ok := readSource(filepath.Join(dir, name)); ok {
			return source, true
		}
	}
	return samples.Source(name)
}

func writeOutputs(ctx context.Context, dir string, outputs []generated) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	logger := ctxlog.FromContext(ctx)
	for _, out := range outputs {
		name := filepath.Join(dir, out.name)
		if err := os.WriteFile(name, []byte(out.text+"\n"), 0o644); err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		logger.Info("Wrote program.", "path", name)
	}
	return nil
}

func printOutputs(w io.Writer, outputs []generated) {
	if len(outputs) == 1 {
		fmt.Fprintln(w, outputs[0].text)
		return
	}
	for i, out := range outputs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n%s\n", out.name, out.text)
	}
}
