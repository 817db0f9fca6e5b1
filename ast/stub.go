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

// Stub is a compiled stub generator script.
type Stub struct {
	// The commands of the script, in render order.
	Commands []Cmd
	// The problem statement. Set by the last STATEMENT block of the
	// script, if any.
	Statement string
}

// Clone returns a deep copy of this stub.
//
// External nodes are copied through Renderable.Clone; a Tail held by a
// cloned node resolves against the clone's commands.
func (s *Stub) Clone() *Stub {
	if s == nil {
		return nil
	}
	return &Stub{
		Commands:  CloneAll(s.Commands),
		Statement: s.Statement,
	}
}

// CloneAll deep copies every command in cmds.
func CloneAll(cmds []Cmd) []Cmd {
	if cmds == nil {
		return nil
	}
	out := make([]Cmd, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Clone()
	}
	return out
}
