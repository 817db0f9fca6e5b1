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

// Package walk provides helper functions for traversing the commands of a
// stub, descending into loop bodies.
package walk

import "github.com/bufbuild/stubcompile/ast"

// Commands walks every command in cmds in depth-first, pre-order. Loop
// bodies are visited right after the loop that contains them. If enter
// returns an error, traversal stops and that error is returned.
func Commands(cmds []ast.Cmd, enter func(ast.Cmd) error) error {
	return CommandsEnterAndExit(cmds, enter, nil)
}

// CommandsEnterAndExit is like Commands, but also calls exit, if non-nil,
// after a command and all of its nested commands have been visited.
func CommandsEnterAndExit(cmds []ast.Cmd, enter, exit func(ast.Cmd) error) error {
	for _, cmd := range cmds {
		if err := command(cmd, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

func command(cmd ast.Cmd, enter, exit func(ast.Cmd) error) error {
	if err := enter(cmd); err != nil {
		return err
	}
	if loop, ok := cmd.(*ast.Loop); ok && loop.Body != nil {
		if err := command(loop.Body, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Innermost follows the bodies of nested loops starting at cmd and returns
// the first command that is not a loop. It returns nil for a loop with no
// body.
func Innermost(cmd ast.Cmd) ast.Cmd {
	for {
		loop, ok := cmd.(*ast.Loop)
		if !ok {
			return cmd
		}
		if loop.Body == nil {
			return nil
		}
		cmd = loop.Body
	}
}

// Leaves calls visit with the innermost command of each command in cmds, as
// computed by Innermost.
func Leaves(cmds []ast.Cmd, visit func(ast.Cmd)) {
	for _, cmd := range cmds {
		if leaf := Innermost(cmd); leaf != nil {
			visit(leaf)
		}
	}
}
