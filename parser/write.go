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

package parser

import (
	"strings"

	"github.com/bufbuild/stubcompile/ast"
)

// parseWrite parses the lines following a write keyword, up to the next
// blank line. The first line may instead be a join(...) call.
func (p *parser) parseWrite(kw Token) (ast.Cmd, error) {
	node := ast.Node{Pos: kw.Pos}
	var lines []string
	for {
		line, ok := p.restOfLine()
		if !ok {
			break
		}
		if len(lines) == 0 {
			if cmd := writeJoin(node, line); cmd != nil {
				return cmd, nil
			}
		}
		lines = append(lines, line)
	}
	return &ast.Write{Node: node, Lines: lines}, nil
}

// writeJoin checks the first line of a write for a join(...) call. It
// returns nil if the line should be treated as ordinary text.
//
// The rules:
//   - join() with nothing between the parentheses is not a call;
//   - join( without a closing parenthesis on the same line is not a call;
//   - if any argument is blank (as in join("a",,"b")), the line is written
//     out verbatim as a single-line write;
//   - otherwise, arguments containing a double quote are literals, and the
//     rest are variable references.
func writeJoin(node ast.Node, line string) ast.Cmd {
	_, args, ok := strings.Cut(strings.ReplaceAll(line, "join()", ""), "join(")
	if !ok {
		return nil
	}
	args, _, ok = strings.Cut(args, ")")
	if !ok {
		return nil
	}

	raw := strings.Split(args, ",")
	for _, arg := range raw {
		if strings.TrimSpace(arg) == "" {
			return &ast.Write{Node: node, Lines: []string{line}}
		}
	}

	terms := make([]ast.JoinTerm, len(raw))
	for i, arg := range raw {
		if strings.Contains(arg, `"`) {
			terms[i] = ast.NewLiteral(unquote(arg))
		} else {
			terms[i] = ast.NewVariableRef(strings.TrimSpace(arg))
		}
	}
	return &ast.WriteJoin{Node: node, Terms: terms}
}

// unquote drops everything outside the outermost quotes of s, and then the
// quotes themselves.
func unquote(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool { return r != '"' })
	return strings.Trim(s, `"`)
}
