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

import (
	"iter"
	"strings"

	"github.com/bufbuild/stubcompile/ast"
)

// Newline is the text of the token that ends every line.
const Newline = "\n"

// Token is a single token of a stub generator script.
//
// Tokens are the space-separated fields of a line, so two consecutive
// spaces produce a token with empty text. Consumers treat those as "nothing
// here" rather than as an error.
type Token struct {
	Text string
	Pos  ast.SourcePos
}

// IsNewline returns whether this is a line boundary token.
func (t Token) IsNewline() bool {
	return t.Text == Newline
}

// IsBlank returns whether this token has no text at all.
func (t Token) IsBlank() bool {
	return t.Text == ""
}

// Tokenize returns the tokens of text, lazily. A Newline token is yielded
// after the fields of every line, including the last one.
//
// A trailing carriage return is dropped from each line, and a newline at
// the very end of text does not start another line. Empty text has no
// tokens at all.
func Tokenize(filename, text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		offset := 0
		for lineNo, line := range lines(text) {
			lineStart := offset
			offset += len(line) + 1
			line = strings.TrimSuffix(line, "\r")

			col := 0
			for field := range strings.SplitSeq(line, " ") {
				tok := Token{Text: field, Pos: position(filename, lineNo, col, lineStart)}
				if !yield(tok) {
					return
				}
				col += len(field) + 1
			}

			tok := Token{Text: Newline, Pos: position(filename, lineNo, len(line), lineStart)}
			if !yield(tok) {
				return
			}
		}
	}
}

func position(filename string, lineNo, col, lineStart int) ast.SourcePos {
	return ast.SourcePos{
		Filename: filename,
		Line:     lineNo + 1,
		Col:      col + 1,
		Offset:   lineStart + col,
	}
}

// lines yields the lines of text along with their zero-based index.
func lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if text == "" {
			return
		}
		text = strings.TrimSuffix(text, "\n")
		i := 0
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(i, line) {
				return
			}
			i++
		}
	}
}
