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
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Result is the outcome of running one test case.
type Result int8

const (
	Success Result = iota
	WrongOutput
	RuntimeError
	Timeout
	UnableToRun
)

var resultNames = [...]string{
	Success:      "success",
	WrongOutput:  "wrong output",
	RuntimeError: "runtime error",
	Timeout:      "timeout",
	UnableToRun:  "unable to run",
}

func (r Result) String() string {
	if int(r) < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// TestRun is the record of running one test case.
type TestRun struct {
	Case   *TestCase
	Result Result
	// Normalized standard output and raw standard error of the solution.
	Stdout string
	Stderr string
	// Set only when Result is UnableToRun.
	Err error
}

// IsSuccessful reports whether the solution printed the expected output.
func (r *TestRun) IsSuccessful() bool {
	return r.Result == Success
}

// Expected returns the normalized expected output.
func (r *TestRun) Expected() string {
	return normalize(r.Case.Output)
}

// Diff returns a unified diff from the expected output to the actual one.
// It is empty for successful runs.
func (r *TestRun) Diff() string {
	if r.IsSuccessful() || r.Result == UnableToRun {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(r.Expected() + "\n"),
		B:        difflib.SplitLines(r.Stdout + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}

// normalize converts line endings to "\n" and drops trailing whitespace.
func normalize(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), " \t\r\n")
}
