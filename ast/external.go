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

// Renderable is a node synthesized by a preprocessor, carried by an
// External command.
//
// Preprocessors locate their own nodes again with a type assertion on the
// Renderable held by an External.
type Renderable interface {
	// Render produces the text for this node. The renderer indents the
	// result to the given level, so the text itself is unindented.
	Render(r Renderer, indent int) (string, error)
	// Clone returns a deep copy of this node.
	Clone() Renderable
}

// Renderer is the view of a renderer that a Renderable gets while it is
// being rendered.
type Renderer interface {
	// RenderCommand renders a single command at the given indentation level.
	// The result is empty or ends in a newline.
	RenderCommand(cmd Cmd, indent int) (string, error)
	// RenderTemplate evaluates one of the current language's templates.
	RenderTemplate(name string, data map[string]any) (string, error)
	// Commands returns the top-level commands of the stub being rendered.
	// A Tail is resolved against this slice.
	Commands() []Cmd
}

// Enclosing is implemented by Renderables that render every command after
// them as part of their own output. Anything rendering a sequence of
// commands must stop right after rendering one of these.
type Enclosing interface {
	Renderable
	Tail() Tail
}

// Encloses reports whether cmd is an External whose Renderable encloses
// the commands after it.
func Encloses(cmd Cmd) bool {
	ext, ok := cmd.(*External)
	if !ok {
		return false
	}
	e, ok := ext.Renderable.(Enclosing)
	return ok && e.Tail().Valid()
}

// Tail is a read-only view of a stub's top-level commands, from some index
// to the end. It stores only the index, so it never owns the commands it
// refers to; it is resolved at render time with [Tail.In].
type Tail struct {
	from int
	ok   bool
}

// TailFrom returns a tail starting at the given index.
func TailFrom(index int) Tail {
	return Tail{from: index, ok: true}
}

// From returns the index this tail starts at.
func (t Tail) From() int {
	return t.from
}

// Valid returns whether this tail has been populated.
func (t Tail) Valid() bool {
	return t.ok
}

// In resolves this tail against cmds. An unpopulated or out of range tail
// resolves to nil.
func (t Tail) In(cmds []Cmd) []Cmd {
	if !t.ok || t.from < 0 || t.from >= len(cmds) {
		return nil
	}
	return cmds[t.from:]
}
