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

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/bufbuild/stubcompile/ast"
)

type fakeNode struct {
	lines []string
	tail  ast.Tail
}

func (f *fakeNode) Render(ast.Renderer, int) (string, error) { return "", nil }

func (f *fakeNode) Clone() ast.Renderable {
	return &fakeNode{lines: append([]string(nil), f.lines...), tail: f.tail}
}

func (f *fakeNode) Describe() map[string]any {
	return map[string]any{"tail_from": f.tail.From()}
}

func sampleStub() *ast.Stub {
	return &ast.Stub{
		Commands: []ast.Cmd{
			&ast.Read{Vars: []*ast.VariableCommand{
				{Ident: "n", Type: ast.Int},
				{Ident: "s", Type: ast.String, MaxLength: "40", InputComment: "a name"},
			}},
			&ast.Loop{CountVar: "n", Body: &ast.Write{Lines: []string{"hi"}}},
			&ast.WriteJoin{Terms: []ast.JoinTerm{ast.NewLiteral("a"), ast.NewVariableRef("s")}},
			&ast.External{Renderable: &fakeNode{lines: []string{"x"}, tail: ast.TailFrom(3)}},
		},
		Statement: "do the thing",
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	stub := sampleStub()
	clone := stub.Clone()
	assert.Empty(t, cmp.Diff(stub, clone, cmp.AllowUnexported(fakeNode{}, ast.Tail{})))

	clone.Commands[0].(*ast.Read).Vars[0].Ident = "m"
	clone.Commands[1].(*ast.Loop).Body.(*ast.Write).Lines[0] = "bye"
	clone.Commands[3].(*ast.External).Renderable.(*fakeNode).lines[0] = "y"

	assert.Equal(t, "n", stub.Commands[0].(*ast.Read).Vars[0].Ident)
	assert.Equal(t, "hi", stub.Commands[1].(*ast.Loop).Body.(*ast.Write).Lines[0])
	assert.Equal(t, "x", stub.Commands[3].(*ast.External).Renderable.(*fakeNode).lines[0])
}

func TestTail(t *testing.T) {
	t.Parallel()

	cmds := sampleStub().Commands
	var zero ast.Tail
	assert.False(t, zero.Valid())
	assert.Nil(t, zero.In(cmds))

	tail := ast.TailFrom(2)
	assert.True(t, tail.Valid())
	assert.Len(t, tail.In(cmds), 2)
	assert.Same(t, cmds[2], tail.In(cmds)[0])
	assert.Nil(t, ast.TailFrom(4).In(cmds))
}

type enclosingNode struct {
	fakeNode
}

func (e *enclosingNode) Tail() ast.Tail { return e.tail }

func TestEncloses(t *testing.T) {
	t.Parallel()

	assert.False(t, ast.Encloses(&ast.Write{}))
	assert.False(t, ast.Encloses(&ast.External{Renderable: &fakeNode{tail: ast.TailFrom(0)}}))
	assert.False(t, ast.Encloses(&ast.External{Renderable: &enclosingNode{}}))
	assert.True(t, ast.Encloses(&ast.External{Renderable: &enclosingNode{fakeNode{tail: ast.TailFrom(1)}}}))
}

func TestVarType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string", ast.String.String())
	assert.Equal(t, "unknown", ast.VarType(0).String())
	assert.True(t, ast.Word.HasLength())
	assert.False(t, ast.Long.HasLength())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	var kinds []string
	for _, cmd := range sampleStub().Commands {
		kinds = append(kinds, ast.KindOf(cmd))
	}
	assert.Equal(t, []string{"read", "loop", "write_join", "external"}, kinds)
}

func TestToStruct(t *testing.T) {
	t.Parallel()

	s, err := ast.ToStruct(sampleStub())
	require.NoError(t, err)

	cmds := s.GetFields()["commands"].GetListValue().GetValues()
	require.Len(t, cmds, 4)
	read := cmds[0].GetStructValue().GetFields()
	assert.Equal(t, "read", read["kind"].GetStringValue())
	second := read["vars"].GetListValue().GetValues()[1].GetStructValue().GetFields()
	assert.Equal(t, "40", second["max_length"].GetStringValue())
	assert.Equal(t, "a name", second["input_comment"].GetStringValue())

	ext := cmds[3].GetStructValue().GetFields()
	assert.Equal(t, float64(3), ext["tail_from"].GetNumberValue())
	assert.Equal(t, "do the thing", s.GetFields()["statement"].GetStringValue())

	_, err = protojson.Marshal(s)
	require.NoError(t, err)
}
