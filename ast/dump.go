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

package ast

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Describer may be implemented by a Renderable to contribute fields to
// [ToMap]. Values must be representable by [structpb.NewValue].
type Describer interface {
	Describe() map[string]any
}

// ToMap converts a stub into a tree of maps and slices, suitable for
// serializing as JSON or YAML. Positions are omitted.
func ToMap(stub *Stub) map[string]any {
	cmds := make([]any, len(stub.Commands))
	for i, cmd := range stub.Commands {
		cmds[i] = describeCmd(cmd)
	}
	out := map[string]any{"commands": cmds}
	if stub.Statement != "" {
		out["statement"] = stub.Statement
	}
	return out
}

// ToStruct is like [ToMap], but produces a [structpb.Struct], which can be
// marshaled with protojson.
func ToStruct(stub *Stub) (*structpb.Struct, error) {
	return structpb.NewStruct(ToMap(stub))
}

// DescribeVars converts a variable list the same way [ToMap] does.
func DescribeVars(vars []*VariableCommand) []any {
	out := make([]any, len(vars))
	for i, v := range vars {
		m := map[string]any{
			"ident": v.Ident,
			"type":  v.Type.String(),
		}
		if v.HasMaxLength() {
			m["max_length"] = v.MaxLength
		}
		if v.InputComment != "" {
			m["input_comment"] = v.InputComment
		}
		out[i] = m
	}
	return out
}

func describeCmd(cmd Cmd) map[string]any {
	m := map[string]any{"kind": KindOf(cmd)}
	switch cmd := cmd.(type) {
	case *Read:
		m["vars"] = DescribeVars(cmd.Vars)
	case *Write:
		lines := make([]any, len(cmd.Lines))
		for i, line := range cmd.Lines {
			lines[i] = line
		}
		m["lines"] = lines
		if cmd.OutputComment != "" {
			m["output_comment"] = cmd.OutputComment
		}
	case *WriteJoin:
		terms := make([]any, len(cmd.Terms))
		for i, term := range cmd.Terms {
			kind := "variable"
			if term.IsLiteral() {
				kind = "literal"
			}
			terms[i] = map[string]any{kind: term.Text}
		}
		m["terms"] = terms
		if cmd.OutputComment != "" {
			m["output_comment"] = cmd.OutputComment
		}
	case *Loop:
		m["count"] = cmd.CountVar
		if cmd.Body != nil {
			m["body"] = describeCmd(cmd.Body)
		}
	case *LoopLine:
		m["count"] = cmd.CountVar
		m["vars"] = DescribeVars(cmd.Vars)
	case *External:
		if d, ok := cmd.Renderable.(Describer); ok {
			for k, v := range d.Describe() {
				m[k] = v
			}
		}
	}
	return m
}
