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
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(t *testing.T, script string) Command {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
	return Command{Path: "sh", Args: []string{"-c", script}}
}

var echoCases = []TestCase{
	{Title: "first", Input: "1\n", Output: "123"},
	{Title: "second", Input: "2\n", Output: "123\n"},
}

func collect(ctx context.Context, cases []TestCase, cmd Command, timeout time.Duration) []*TestRun {
	var runs []*TestRun
	for run := range Run(ctx, cases, cmd, timeout) {
		runs = append(runs, run)
	}
	return runs
}

func TestRunPassing(t *testing.T) {
	t.Parallel()

	runs := collect(context.Background(), echoCases, shell(t, "read input; echo 123"), 5*time.Second)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.True(t, run.IsSuccessful(), "%s: %s", run.Case.Title, run.Result)
		assert.Empty(t, run.Diff())
	}
	assert.Equal(t, "first", runs[0].Case.Title)
}

func TestRunFailing(t *testing.T) {
	t.Parallel()

	runs := collect(context.Background(), echoCases, shell(t, "read input; echo nada"), 5*time.Second)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.Equal(t, WrongOutput, run.Result)
		assert.Equal(t, "nada", run.Stdout)
	}

	diff := runs[0].Diff()
	assert.Contains(t, diff, "--- expected")
	assert.Contains(t, diff, "+++ actual")
	assert.Contains(t, diff, "-123\n")
	assert.Contains(t, diff, "+nada\n")
}

func TestRunEchoesInput(t *testing.T) {
	t.Parallel()

	cases := []TestCase{{Title: "cat", Input: "a b\nc\n", Output: "a b\nc"}}
	runs := collect(context.Background(), cases, shell(t, "cat"), 5*time.Second)
	require.Len(t, runs, 1)
	assert.Equal(t, Success, runs[0].Result)
}

func TestRunNormalizesOutput(t *testing.T) {
	t.Parallel()

	cases := []TestCase{{Input: "", Output: "1\r\n2  \n\n"}}
	runs := collect(context.Background(), cases, shell(t, `printf '1\r\n2\r\n\r\n'`), 5*time.Second)
	require.Len(t, runs, 1)
	assert.Equal(t, Success, runs[0].Result)
	assert.Equal(t, "1\n2", runs[0].Stdout)
}

func TestRunRuntimeError(t *testing.T) {
	t.Parallel()

	cases := []TestCase{{Title: "boom", Input: "", Output: "123"}}
	runs := collect(context.Background(), cases, shell(t, "echo 12; echo oops >&2; exit 3"), 5*time.Second)
	require.Len(t, runs, 1)
	assert.Equal(t, RuntimeError, runs[0].Result)
	assert.Equal(t, "12", runs[0].Stdout)
	assert.Equal(t, "oops\n", runs[0].Stderr)

	// The expected output wins even if the solution then fails.
	runs = collect(context.Background(), cases, shell(t, "echo 123; exit 1"), 5*time.Second)
	assert.Equal(t, Success, runs[0].Result)
}

func TestRunTimeout(t *testing.T) {
	t.Parallel()

	cases := []TestCase{{Title: "slow", Input: "", Output: "123"}}
	start := time.Now()
	runs := collect(context.Background(), cases, shell(t, "exec sleep 10"), 100*time.Millisecond)
	require.Len(t, runs, 1)
	assert.Equal(t, Timeout, runs[0].Result)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunUnableToRun(t *testing.T) {
	t.Parallel()

	cmd := Command{Path: filepath.Join(t.TempDir(), "no-such-solution")}
	runs := collect(context.Background(), echoCases, cmd, time.Second)
	require.Len(t, runs, 2)
	assert.Equal(t, UnableToRun, runs[0].Result)
	require.Error(t, runs[0].Err)
	assert.Contains(t, runs[0].Err.Error(), "no-such-solution")
	assert.Empty(t, runs[0].Diff())
}

func TestRunIsLazy(t *testing.T) {
	t.Parallel()

	marker := filepath.Join(t.TempDir(), "ran")
	cmd := shell(t, `echo x >> "$MARKER"; echo 123`)
	cmd.Env = []string{"MARKER=" + marker}

	for run := range Run(context.Background(), echoCases, cmd, 5*time.Second) {
		assert.True(t, run.IsSuccessful())
		break
	}
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, collect(ctx, echoCases, shell(t, "echo 123"), time.Second))
}

func TestNewCommand(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand([]string{"python3", "main.py"})
	require.NoError(t, err)
	assert.Equal(t, Command{Path: "python3", Args: []string{"main.py"}}, cmd)
	assert.Equal(t, "python3 main.py", cmd.String())

	_, err = NewCommand(nil)
	require.Error(t, err)
}

func TestLoadCases(t *testing.T) {
	t.Parallel()

	src := `
- title: Simple
  input: |
    1 2
  output: "3"
- input: "5 5\n"
  output: "10"
`
	cases, err := LoadCases(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []TestCase{
		{Title: "Simple", Input: "1 2\n", Output: "3"},
		{Title: "Test 2", Input: "5 5\n", Output: "10"},
	}, cases)

	cases, err = LoadCases(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)

	_, err = LoadCases(strings.NewReader("- title: x\n  expected: y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestLoadCasesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {input: a, output: b}\n"), 0o600))
	cases, err := LoadCasesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []TestCase{{Title: "Test 1", Input: "a", Output: "b"}}, cases)

	require.NoError(t, os.WriteFile(path, []byte("oops: true\n"), 0o600))
	_, err = LoadCasesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestResultString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wrong output", WrongOutput.String())
	assert.Equal(t, "unable to run", UnableToRun.String())
	assert.Equal(t, "unknown", Result(42).String())
}
