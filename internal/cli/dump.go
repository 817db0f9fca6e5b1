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

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/bufbuild/stubcompile"
	"github.com/bufbuild/stubcompile/ast"
)

func runDump(ctx context.Context, env Env, args []string) error {
	var g globalFlags
	flagSet := newFlagSet("dump", "[options] FILE", env)
	g.register(flagSet)
	langFlag := flagSet.String("lang", "", "Preprocess the stub for this language before dumping it.")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return usageError("dump takes exactly one stub file")
	}

	ctx, cfg, err := g.setup(ctx, env)
	if err != nil {
		return err
	}
	stubs, err := compileFiles(ctx, env, cfg, 1, flagSet.Args())
	if err != nil {
		return err
	}
	stub := stubs[0]

	if *langFlag != "" {
		langs, err := selectLanguages(*langFlag, nil)
		if err != nil {
			return err
		}
		if stub, err = stubcompile.Preprocess(langs[0], stub); err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
	}

	msg, err := ast.ToStruct(stub)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	fmt.Fprintln(env.Stdout, string(data))
	return nil
}
