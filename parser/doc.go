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

// Package parser contains the logic for parsing stub generator scripts into
// an AST (abstract syntax tree).
//
// A script is line oriented. Each line is split into tokens on single
// spaces, and an explicit newline token follows the tokens of every line, so
// the parser can tell where lines end without looking at the raw text again.
// Blank lines terminate multi-line blocks (write bodies and the text blocks
// following OUTPUT, INPUT and STATEMENT).
//
// Every syntax error is fatal: parsing stops at the first one and no partial
// AST is returned.
package parser
