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
	"regexp"
	"strings"
	"unicode"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/reporter"
)

var lengthType = regexp.MustCompile(`^(word|string)\((\w+)\)$`)

var simpleTypes = map[string]ast.VarType{
	"int":   ast.Int,
	"float": ast.Float,
	"long":  ast.Long,
	"bool":  ast.Bool,
}

// parseVariables parses the rest of the line after kw as a list of
// ident:type pairs.
func (p *parser) parseVariables(kw Token) ([]*ast.VariableCommand, error) {
	toks, ok := p.tokensUptoNewline()
	if !ok {
		return nil, reporter.Errorf(kw.Pos, "%w after %q", ErrEmptyLine, kw.Text)
	}

	var vars []*ast.VariableCommand
	for _, tok := range toks {
		if tok.IsBlank() {
			continue
		}
		v, err := parseVariable(tok)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// parseVariable parses a single ident:type token. Types are one of int,
// float, long, bool, or word(len) and string(len), where len is a literal
// or the name of another variable.
func parseVariable(tok Token) (*ast.VariableCommand, error) {
	ident, rest, ok := strings.Cut(tok.Text, ":")
	if !ok {
		return nil, reporter.Errorf(tok.Pos, "%w %q: missing type", ErrInvalidVariable, tok.Text)
	}
	typ, _, _ := strings.Cut(rest, ":")
	typ = strings.TrimRightFunc(typ, unicode.IsSpace)

	if t, ok := simpleTypes[typ]; ok {
		return &ast.VariableCommand{Ident: ident, Type: t}, nil
	}

	m := lengthType.FindStringSubmatch(typ)
	if m == nil {
		return nil, reporter.Errorf(tok.Pos, "%w %q: unknown type %q", ErrInvalidVariable, tok.Text, typ)
	}
	v := &ast.VariableCommand{Ident: ident, Type: ast.Word, MaxLength: m[2]}
	if m[1] == "string" {
		v.Type = ast.String
	}
	return v, nil
}
