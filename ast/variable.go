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

// VarType is the type of a variable read from input.
type VarType int8

const (
	Int VarType = 1 + iota
	Float
	Long
	Bool
	// A single whitespace-free token, with a maximum length.
	Word
	// The rest of a line, with a maximum length.
	String
)

var varTypeNames = [...]string{
	Int:    "int",
	Float:  "float",
	Long:   "long",
	Bool:   "bool",
	Word:   "word",
	String: "string",
}

// String returns the keyword used for this type in scripts.
func (t VarType) String() string {
	if t <= 0 || int(t) >= len(varTypeNames) {
		return "unknown"
	}
	return varTypeNames[t]
}

// HasLength returns whether variables of this type carry a max length.
func (t VarType) HasLength() bool {
	return t == Word || t == String
}

// VariableCommand is a single variable of a read or loopline command.
type VariableCommand struct {
	Ident string
	Type  VarType
	// Set only for Word and String. Either a literal integer or the
	// identifier of another variable.
	MaxLength string
	// Set by an INPUT block.
	InputComment string
}

// HasMaxLength returns whether this variable has a max length parameter.
func (v *VariableCommand) HasMaxLength() bool {
	return v.MaxLength != ""
}

// CloneVars deep copies a list of variables.
func CloneVars(vars []*VariableCommand) []*VariableCommand {
	if vars == nil {
		return nil
	}
	out := make([]*VariableCommand, len(vars))
	for i, v := range vars {
		clone := *v
		out[i] = &clone
	}
	return out
}
