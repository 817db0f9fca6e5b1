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

// Package ast defines types for modeling the AST (Abstract Syntax
// Tree) of a stub generator script.
//
// The root of the tree is a *Stub: an ordered list of commands plus a free
// text problem statement. Commands form a closed set of variants (Read,
// Write, WriteJoin, Loop, LoopLine) implementing Cmd, plus one open variant,
// External, which carries a Renderable. External is how preprocessing
// passes introduce node kinds the script grammar cannot express; a pass
// synthesizes an External node and later finds it again with a type
// assertion on its Renderable.
//
// Every command records the SourcePos of the keyword that introduced it.
// Positions are only used for diagnostics and are never significant when
// comparing trees.
//
// The tree is built once by the parser, optionally rewritten once by a
// preprocessor, and is treated as read-only afterwards. Renderers that need
// to scribble on a tree should work on the result of Stub.Clone.
package ast
