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

package parser

import "errors"

// Sentinel errors wrapped by the errors the parser reports. Use errors.Is
// to check for them; the reported error also carries the position of the
// offending token (see reporter.ErrorWithPos).
var (
	ErrUnknownToken     = errors.New("unknown token")
	ErrEmptyLine        = errors.New("empty line")
	ErrInvalidVariable  = errors.New("invalid variable")
	ErrMissingLoopCount = errors.New("missing loop count")
	ErrMissingLoopBody  = errors.New("missing loop command")
	ErrInvalidLoopBody  = errors.New("invalid loop command")
)

// ErrStatementReplaced is passed to the warning reporter when a STATEMENT
// block replaces the text of an earlier one.
var ErrStatementReplaced = errors.New("STATEMENT block replaces an earlier statement")
