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


package solution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"strings"
	"time"

	"github.com/bufbuild/stubcompile/internal/ctxlog"
)

// waitDelay bounds how long Run waits for output pipes after the solution
// was killed, in case it left children behind holding them open.
const waitDelay = 500 * time.Millisecond

// Command is how to start a solution.
type Command struct {
	Path string
	Args []string
	// Working directory. Empty means the current one.
	Dir string
	// Extra environment entries, in "key=value" form, appended to the
	// current environment.
	Env []string
}

// NewCommand creates a command from an argument vector.
func NewCommand(argv []string) (Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Command{}, errors.New("empty run command")
	}
	return Command{Path: argv[0], Args: argv[1:]}, nil
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Run returns a sequence that runs cmd once per test case, in order, giving
// each run at most timeout to finish. Nothing is run until the sequence is
// consumed, and stopping early skips the remaining cases. The sequence ends
// early if ctx is done.
func Run(ctx context.Context, cases []TestCase, cmd Command, timeout time.Duration) iter.Seq[*TestRun] {
	return func(yield func(*TestRun) bool) {
		for i := range cases {
			if ctx.Err() != nil {
				return
			}
			run := runCase(ctx, &cases[i], cmd, timeout)
			ctxlog.FromContext(ctx).DebugContext(ctx, "test case finished",
				"title", run.Case.Title,
				"result", run.Result.String(),
			)
			if !yield(run) {
				return
			}
		}
	}
}

func runCase(ctx context.Context, tc *TestCase, cmd Command, timeout time.Duration) *TestRun {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(runCtx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(c.Environ(), cmd.Env...)
	}
	c.Stdin = strings.NewReader(tc.Input)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = waitDelay

	if err := c.Start(); err != nil {
		return &TestRun{
			Case:   tc,
			Result: UnableToRun,
			Err:    fmt.Errorf("%s: %w", cmd.Path, err),
		}
	}
	waitErr := c.Wait()
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)

	run := &TestRun{
		Case:   tc,
		Stdout: normalize(stdout.String()),
		Stderr: stderr.String(),
	}
	switch {
	case run.Stdout == normalize(tc.Output):
		run.Result = Success
	case timedOut:
		run.Result = Timeout
	case waitErr == nil:
		run.Result = WrongOutput
	default:
		run.Result = RuntimeError
	}
	return run
}
