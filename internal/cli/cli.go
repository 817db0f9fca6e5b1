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
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bufbuild/stubcompile/config"
	"github.com/bufbuild/stubcompile/internal/ctxlog"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Env is what a command can see of the process.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env Env, args []string) error
}

var commands = []command{
	{name: "generate", summary: "render stub scripts as starter code", run: runGenerate},
	{name: "dump", summary: "print the syntax tree of a stub script as JSON", run: runDump},
	{name: "languages", summary: "list the target languages", run: runLanguages},
	{name: "samples", summary: "list the bundled sample scripts", run: runSamples},
	{name: "test", summary: "run a solution against test cases", run: runTest},
}

// Run runs the stubgen command line given in args, which excludes the
// program name.
func Run(ctx context.Context, env Env, args []string) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return &ExitError{Code: ExitUsage}
	}
	switch args[0] {
	case "help", "-h", "-help", "--help":
		printUsage(env.Stdout)
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(ctx, env, args[1:])
		}
	}
	printUsage(env.Stderr)
	return usageError("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `
stubgen - generate starter code for programming puzzles.

Usage:
  stubgen <command> [options] [arguments]

Commands:
`)
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w, "\nRun 'stubgen <command> -h' for the options of a command.")
}

// globalFlags are accepted by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func (g *globalFlags) register(flagSet *flag.FlagSet) {
	flagSet.StringVar(&g.configPath, "config", "", "Path to the config file. Defaults to "+config.DefaultFilename+" if it exists.")
	flagSet.StringVar(&g.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&g.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
}

// setup loads the config file and attaches a logger to ctx. Flags take
// precedence over the config file.
func (g *globalFlags) setup(ctx context.Context, env Env) (context.Context, *config.Config, error) {
	cfg, err := loadConfig(ctx, g.configPath)
	if err != nil {
		return nil, nil, &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	level, format := cfg.LogLevel, cfg.LogFormat
	if g.logLevel != "" {
		level = g.logLevel
	}
	if g.logFormat != "" {
		format = g.logFormat
	}
	logger, err := ctxlog.New(level, format, env.Stderr)
	if err != nil {
		return nil, nil, usageError("invalid logging options: %v", err)
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Configuration loaded.", "config", g.configPath, "languages", cfg.Languages)
	return ctx, cfg, nil
}

func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(ctx, path)
	}
	cfg, err := config.Load(ctx, config.DefaultFilename)
	if errors.Is(err, fs.ErrNotExist) {
		return &config.Config{}, nil
	}
	return cfg, err
}

// parseFlags parses args, turning -h into a clean exit and other flag
// errors into usage errors.
func parseFlags(flagSet *flag.FlagSet, args []string) (done bool, err error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return false, nil
}

func newFlagSet(name, usage string, env Env) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(env.Stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(env.Stderr, "\nUsage:\n  stubgen %s %s\n\nOptions:\n", name, usage)
		flagSet.PrintDefaults()
	}
	return flagSet
}

// readSource is for diagnostics only, so failures just mean no snippet.
func readSource(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
