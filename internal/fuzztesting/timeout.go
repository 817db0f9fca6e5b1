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


// Package fuzztesting contains helpers for reproducing issues found by
// fuzzing the stub parser. The resulting test cases also verify that we
// don't have regressions.
package fuzztesting

import (
	"context"
	"testing"
	"time"
)

// AllowedDuration is how long the iterations of one reproduction may take
// in total.
var AllowedDuration = 10 * time.Second

// Iterations is how many times a reproduction is run.
const Iterations = 3

// RunWithFuzzerTimeout runs fn a few times and fails t if that took longer
// than AllowedDuration. Inputs that are slow to process are findings too.
func RunWithFuzzerTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), AllowedDuration)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", AllowedDuration)
		}
		cancel()
	}()
	for range Iterations {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
