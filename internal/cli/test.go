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
	"fmt"
	"strings"
	"time"

	"github.com/bufbuild/stubcompile/config"
	"github.com/bufbuild/stubcompile/internal/ctxlog"
	"github.com/bufbuild/stubcompile/solution"
)

func runTest(ctx context.Context, env Env, args []string) error {
	var g globalFlags
	flagSet := newFlagSet("test", "[options] [-- COMMAND [ARG...]]", env)
	g.register(flagSet)
	casesFlag := flagSet.String("cases", "", "YAML file of test cases. Defaults to the config file's test.cases.")
	timeoutFlag := flagSet.Duration("timeout", 0, fmt.Sprintf("Time limit per test case. Defaults to the config file's test.timeout, or %s.", config.DefaultTimeout))
	quietFlag := flagSet.Bool("q", false, "Only print failing test cases and the summary.")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}

	ctx, cfg, err := g.setup(ctx, env)
	if err != nil {
		return err
	}
	testCfg := cfg.Test
	if testCfg == nil {
		testCfg = &config.TestConfig{}
	}

	casesPath := *casesFlag
	if casesPath == "" {
		casesPath = testCfg.Cases
	}
	if casesPath == "" {
		flagSet.Usage()
		return usageError("no test cases given")
	}
	argv := flagSet.Args()
	if len(argv) == 0 {
		argv = testCfg.Run
	}
	cmd, err := solution.NewCommand(argv)
	if err != nil {
		flagSet.Usage()
		return usageError("%v", err)
	}
	timeout := *timeoutFlag
	if timeout <= 0 {
		timeout = testCfg.TimeoutDuration()
	}

	cases, err := solution.LoadCasesFile(casesPath)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	ctxlog.FromContext(ctx).Debug("Running test cases.", "cases", len(cases), "command", cmd.String(), "timeout", timeout)

	passed := 0
	for run := range solution.Run(ctx, cases, cmd, timeout) {
		if run.IsSuccessful() {
			passed++
			if !*quietFlag {
				fmt.Fprintf(env.Stdout, "PASS  %s\n", run.Case.Title)
			}
			continue
		}
		printFailure(env, run, timeout)
	}
	fmt.Fprintf(env.Stdout, "%d/%d tests passed\n", passed, len(cases))
	if err := ctx.Err(); err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	if passed != len(cases) {
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

func printFailure(env Env, run *solution.TestRun, timeout time.Duration) {
	fmt.Fprintf(env.Stdout, "FAIL  %s (%s)\n", run.Case.Title, run.Result)
	switch run.Result {
	case solution.UnableToRun:
		fmt.Fprintf(env.Stdout, "      %v\n", run.Err)
		return
	case solution.Timeout:
		fmt.Fprintf(env.Stdout, "      no answer within %s\n", timeout)
	}
	if diff := run.Diff(); diff != "" {
		fmt.Fprint(env.Stdout, indentLines(diff, "      "))
	}
	if run.Stderr != "" {
		fmt.Fprintln(env.Stdout, "      stderr:")
		fmt.Fprint(env.Stdout, indentLines(run.Stderr, "        "))
	}
}

func indentLines(text, prefix string) string {
	var buf strings.Builder
	for line := range strings.Lines(text) {
		buf.WriteString(prefix)
		buf.WriteString(line)
	}
	if !strings.HasSuffix(text, "\n") {
		buf.WriteByte('\n')
	}
	return buf.String()
}
