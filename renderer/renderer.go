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


// Package renderer turns a stub into source code for a target language,
// using the language's templates.
//
// Every command kind has a template of the same name: read_one and
// read_many for reads of one or several variables, write, write_join, loop,
// loopline, and main for the whole program. Templates that render a
// variable list get it as []*ast.VariableCommand and convert identifiers
// with the name function.
package renderer

import (
	"fmt"
	"strings"

	"github.com/bufbuild/stubcompile/ast"
)

// Renderer renders the commands of one stub. It is the [ast.Renderer] seen
// by nodes synthesized by preprocessors.
type Renderer struct {
	lang *Language
	cmds []ast.Cmd
}

var _ ast.Renderer = (*Renderer)(nil)

// RenderStub renders stub as a program in lang.
//
// When debug is set, it instead renders each top-level command on its own,
// under a header naming its kind, which is useful for checking what a
// preprocessor did.
//
// Rendering works on a copy of stub, so stub is never modified.
func RenderStub(lang *Language, stub *ast.Stub, debug bool) (string, error) {
	stub = stub.Clone()
	r := &Renderer{lang: lang, cmds: stub.Commands}
	if debug {
		return r.debug(stub)
	}

	body, err := r.renderSequence(stub.Commands, lang.BodyIndent)
	if err != nil {
		return "", err
	}
	var statement []string
	if stub.Statement != "" {
		statement = strings.Split(stub.Statement, "\n")
	}
	return r.RenderTemplate("main", map[string]any{
		"statement": statement,
		"commands":  body,
	})
}

func (r *Renderer) debug(stub *ast.Stub) (string, error) {
	var buf strings.Builder
	if stub.Statement != "" {
		buf.WriteString("# statement\n")
		buf.WriteString(stub.Statement)
		buf.WriteString("\n")
	}
	for _, cmd := range stub.Commands {
		text, err := r.RenderCommand(cmd, 0)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "# %s\n", ast.KindOf(cmd))
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// renderSequence renders cmds one after the other, stopping after the first
// command that renders the rest itself.
func (r *Renderer) renderSequence(cmds []ast.Cmd, indent int) (string, error) {
	var buf strings.Builder
	for _, cmd := range cmds {
		text, err := r.RenderCommand(cmd, indent)
		if err != nil {
			return "", err
		}
		buf.WriteString(text)
		if ast.Encloses(cmd) {
			break
		}
	}
	return buf.String(), nil
}

// Commands implements [ast.Renderer].
func (r *Renderer) Commands() []ast.Cmd {
	return r.cmds
}

// RenderCommand implements [ast.Renderer].
func (r *Renderer) RenderCommand(cmd ast.Cmd, indent int) (string, error) {
	var text string
	var err error
	switch cmd := cmd.(type) {
	case *ast.Read:
		if len(cmd.Vars) == 1 {
			text, err = r.RenderTemplate("read_one", map[string]any{"var": cmd.Vars[0]})
		} else {
			text, err = r.RenderTemplate("read_many", map[string]any{"vars": cmd.Vars})
		}
	case *ast.Write:
		text, err = r.RenderTemplate("write", map[string]any{
			"lines":          cmd.Lines,
			"output_comment": cmd.OutputComment,
		})
	case *ast.WriteJoin:
		text, err = r.RenderTemplate("write_join", map[string]any{
			"terms":          cmd.Terms,
			"output_comment": cmd.OutputComment,
		})
	case *ast.Loop:
		var body string
		if cmd.Body != nil {
			body, err = r.RenderCommand(cmd.Body, 1)
			if err != nil {
				return "", err
			}
		}
		text, err = r.RenderTemplate("loop", map[string]any{
			"count": cmd.CountVar,
			"body":  body,
		})
	case *ast.LoopLine:
		text, err = r.RenderTemplate("loopline", map[string]any{
			"count": cmd.CountVar,
			"vars":  cmd.Vars,
		})
	case *ast.External:
		text, err = cmd.Renderable.Render(r, indent)
	default:
		err = fmt.Errorf("cannot render %T", cmd)
	}
	if err != nil {
		return "", err
	}
	return r.indent(text, indent), nil
}

// RenderTemplate implements [ast.Renderer].
func (r *Renderer) RenderTemplate(name string, data map[string]any) (string, error) {
	tmpl := r.lang.templates.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", &Error{Lang: r.lang.Name, Template: name, Err: ErrUnknownTemplate}
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &Error{Lang: r.lang.Name, Template: name, Err: err}
	}
	return buf.String(), nil
}

// indent normalizes text to end in exactly one newline, and indents every
// non-empty line by the given level.
func (r *Renderer) indent(text string, level int) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(r.lang.Indent, level)
	var buf strings.Builder
	for line := range strings.SplitSeq(text, "\n") {
		if line != "" {
			buf.WriteString(prefix)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String()
}
