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
	"text/tabwriter"

	"github.com/bufbuild/stubcompile/renderer"
	"github.com/bufbuild/stubcompile/samples"
)

func runLanguages(_ context.Context, env Env, args []string) error {
	flagSet := newFlagSet("languages", "", env)
	if done, err := parseFlags(flagSet, args); done {
		return err
	}

	registry, err := renderer.Builtin()
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEXTENSION\tNAMES\tPREPROCESSOR")
	for lang := range registry.Languages() {
		pre := lang.Preprocessor
		if pre == "" {
			pre = "-"
		}
		fmt.Fprintf(tw, "%s\t.%s\t%s\t%s\n", lang.Name, lang.SourceFileExt, lang.VariableNameCase, pre)
	}
	return tw.Flush()
}

func runSamples(_ context.Context, env Env, args []string) error {
	flagSet := newFlagSet("samples", "", env)
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	for _, name := range samples.Names() {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
