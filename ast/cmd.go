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

import "slices"

// Cmd is a single command of a stub: one of *Read, *Write, *WriteJoin,
// *Loop, *LoopLine or *External.
//
// This interface should not be implemented outside of this package; new
// kinds of nodes are introduced by wrapping a Renderable in an External.
type Cmd interface {
	// Position returns the location of the keyword that introduced this
	// command.
	Position() SourcePos
	// Clone returns a deep copy of this command.
	Clone() Cmd

	isCmd()
}

var (
	_ Cmd = (*Read)(nil)
	_ Cmd = (*Write)(nil)
	_ Cmd = (*WriteJoin)(nil)
	_ Cmd = (*Loop)(nil)
	_ Cmd = (*LoopLine)(nil)
	_ Cmd = (*External)(nil)
)

// Node holds the fields shared by every command.
type Node struct {
	Pos SourcePos
}

// Position implements [Cmd].
func (n Node) Position() SourcePos {
	return n.Pos
}

// Read reads one line of input into several variables.
type Read struct {
	Node
	Vars []*VariableCommand
}

// Write prints one or more literal lines.
type Write struct {
	Node
	Lines         []string
	OutputComment string
}

// WriteJoin prints a single line built by joining literals and variable
// values, in order.
type WriteJoin struct {
	Node
	Terms         []JoinTerm
	OutputComment string
}

// Loop repeats Body CountVar times.
//
// A loop always has exactly one nested command. Several repeated steps
// are expressed by nesting loops.
type Loop struct {
	Node
	CountVar string
	Body     Cmd
}

// LoopLine reads CountVar repetitions of Vars from a single line.
type LoopLine struct {
	Node
	CountVar string
	Vars     []*VariableCommand
}

// External wraps a node synthesized by a preprocessor.
type External struct {
	Node
	Renderable Renderable
}

func (c *Read) Clone() Cmd {
	return &Read{Node: c.Node, Vars: CloneVars(c.Vars)}
}

func (c *Write) Clone() Cmd {
	return &Write{Node: c.Node, Lines: slices.Clone(c.Lines), OutputComment: c.OutputComment}
}

func (c *WriteJoin) Clone() Cmd {
	return &WriteJoin{Node: c.Node, Terms: slices.Clone(c.Terms), OutputComment: c.OutputComment}
}

func (c *Loop) Clone() Cmd {
	loop := &Loop{Node: c.Node, CountVar: c.CountVar}
	if c.Body != nil {
		loop.Body = c.Body.Clone()
	}
	return loop
}

func (c *LoopLine) Clone() Cmd {
	return &LoopLine{Node: c.Node, CountVar: c.CountVar, Vars: CloneVars(c.Vars)}
}

func (c *External) Clone() Cmd {
	ext := &External{Node: c.Node}
	if c.Renderable != nil {
		ext.Renderable = c.Renderable.Clone()
	}
	return ext
}

func (*Read) isCmd()      {}
func (*Write) isCmd()     {}
func (*WriteJoin) isCmd() {}
func (*Loop) isCmd()      {}
func (*LoopLine) isCmd()  {}
func (*External) isCmd()  {}

// KindOf returns the script keyword for cmd, or "external" for nodes
// synthesized by preprocessing.
func KindOf(cmd Cmd) string {
	switch cmd.(type) {
	case *Read:
		return "read"
	case *Write:
		return "write"
	case *WriteJoin:
		return "write_join"
	case *Loop:
		return "loop"
	case *LoopLine:
		return "loopline"
	case *External:
		return "external"
	default:
		return "unknown"
	}
}
