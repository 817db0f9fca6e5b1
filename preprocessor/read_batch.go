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

package preprocessor

import (
	"strings"

	"github.com/bufbuild/stubcompile/ast"
)

// ReadBatches groups every maximal run of adjacent top-level reads into a
// single [ReadBatch] node. Each batch can see the commands that follow it,
// so that languages where reading input introduces a scope (such as a let
// binding) can nest the rest of the program inside it.
//
// Reads nested in loops are left alone.
func ReadBatches(stub *ast.Stub) {
	var cmds []ast.Cmd
	for i := 0; i < len(stub.Commands); {
		read, ok := stub.Commands[i].(*ast.Read)
		if !ok {
			cmds = append(cmds, stub.Commands[i])
			i++
			continue
		}

		batch := &ReadBatch{}
		for ok {
			batch.Lines = append(batch.Lines, read.Vars)
			i++
			if i == len(stub.Commands) {
				break
			}
			read, ok = stub.Commands[i].(*ast.Read)
		}
		cmds = append(cmds, &ast.External{Node: ast.Node{Pos: batch.pos(stub, i)}, Renderable: batch})
	}
	stub.Commands = cmds

	for i, cmd := range stub.Commands {
		if batch, ok := batchOf(cmd); ok {
			batch.tail = ast.TailFrom(i)
		}
	}
}

// ReadBatch is a run of reads, rendered together with the commands that
// follow it.
type ReadBatch struct {
	// Variables of each of the batched reads, in order.
	Lines [][]*ast.VariableCommand

	tail ast.Tail
}

var (
	_ ast.Enclosing = (*ReadBatch)(nil)
	_ ast.Describer = (*ReadBatch)(nil)
)

// Tail returns the position of this batch in its stub's command list. The
// commands from there on, starting with the batch itself, are its tail.
func (b *ReadBatch) Tail() ast.Tail {
	return b.tail
}

// Render implements [ast.Renderable]. It evaluates the read_batch template
// with read_lines set to the batched variable lists and nested_lines set to
// the lines of the rendered commands after this batch.
//
// Rendering of nested commands stops after the next enclosing node, which
// renders whatever follows it by itself.
func (b *ReadBatch) Render(r ast.Renderer, _ int) (string, error) {
	var nested strings.Builder
	if tail := b.tail.In(r.Commands()); len(tail) > 0 {
		for _, cmd := range tail[1:] {
			text, err := r.RenderCommand(cmd, 0)
			if err != nil {
				return "", err
			}
			nested.WriteString(text)
			if ast.Encloses(cmd) {
				break
			}
		}
	}

	var lines []string
	for line := range strings.Lines(nested.String()) {
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}

	return r.RenderTemplate(NameReadBatches, map[string]any{
		"read_lines":   b.Lines,
		"nested_lines": lines,
	})
}

// Clone implements [ast.Renderable].
func (b *ReadBatch) Clone() ast.Renderable {
	clone := &ReadBatch{tail: b.tail, Lines: make([][]*ast.VariableCommand, len(b.Lines))}
	for i, vars := range b.Lines {
		clone.Lines[i] = ast.CloneVars(vars)
	}
	return clone
}

// Describe implements [ast.Describer].
func (b *ReadBatch) Describe() map[string]any {
	lines := make([]any, len(b.Lines))
	for i, vars := range b.Lines {
		lines[i] = ast.DescribeVars(vars)
	}
	return map[string]any{
		"renderable": "read_batch",
		"read_lines": lines,
	}
}

// pos returns the position of the first read in the run that ends before
// index end.
func (b *ReadBatch) pos(stub *ast.Stub, end int) ast.SourcePos {
	return stub.Commands[end-len(b.Lines)].Position()
}

func batchOf(cmd ast.Cmd) (*ReadBatch, bool) {
	ext, ok := cmd.(*ast.External)
	if !ok {
		return nil, false
	}
	batch, ok := ext.Renderable.(*ReadBatch)
	return batch, ok
}
