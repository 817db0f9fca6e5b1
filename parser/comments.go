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
	"github.com/bufbuild/stubcompile/walk"
)

// parseOutputComment parses the text block of an OUTPUT keyword and gives
// it to every write in cmds that has no output comment yet.
func (p *parser) parseOutputComment(cmds []ast.Cmd) {
	comment := p.parseTextBlock()
	walk.Leaves(cmds, func(cmd ast.Cmd) {
		switch cmd := cmd.(type) {
		case *ast.Write:
			if cmd.OutputComment == "" {
				cmd.OutputComment = comment
			}
		case *ast.WriteJoin:
			if cmd.OutputComment == "" {
				cmd.OutputComment = comment
			}
		}
	})
}

// parseInputComment parses the text block of an INPUT keyword, made of
// "ident: comment" lines, and attaches each comment to the variables with
// that identifier in cmds. Lines without a colon are ignored, as are
// identifiers that match nothing.
func (p *parser) parseInputComment(cmds []ast.Cmd) {
	block := p.parseTextBlock()
	for line := range strings.Lines(block) {
		ident, comment, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		ident, comment = strings.TrimSpace(ident), strings.TrimSpace(comment)

		walk.Leaves(cmds, func(cmd ast.Cmd) {
			var vars []*ast.VariableCommand
			switch cmd := cmd.(type) {
			case *ast.Read:
				vars = cmd.Vars
			case *ast.LoopLine:
				vars = cmd.Vars
			}
			for _, v := range vars {
				if v.Ident == ident {
					v.InputComment = comment
				}
			}
		})
	}
}
