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

// JoinTermKind distinguishes the two kinds of [JoinTerm].
type JoinTermKind int8

const (
	// A quoted literal; Text is the text between the quotes.
	Literal JoinTermKind = 1 + iota
	// A reference to a variable; Text is its identifier.
	VariableRef
)

// JoinTerm is a single argument of a join(...) write.
type JoinTerm struct {
	Kind JoinTermKind
	Text string
}

// NewLiteral returns a literal join term.
func NewLiteral(text string) JoinTerm {
	return JoinTerm{Kind: Literal, Text: text}
}

// NewVariableRef returns a join term referring to the given variable.
func NewVariableRef(ident string) JoinTerm {
	return JoinTerm{Kind: VariableRef, Text: ident}
}

// IsLiteral returns whether this term is a quoted literal.
func (t JoinTerm) IsLiteral() bool {
	return t.Kind == Literal
}
