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
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/reporter"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Parse parses the stub generator script read from r.
//
// Parsing stops at the first syntax error, which is passed to handler. In
// that case the returned stub is nil, and the returned error is the one
// returned by the handler's reporter (or reporter.ErrInvalidSource if the
// reporter chose to swallow it). Warnings are reported to handler and never
// fail the parse.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.Stub, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// if file has UTF8 byte order marker preface, consume it
	data = bytes.TrimPrefix(data, utf8Bom)

	p := newParser(filename, Tokenize(filename, string(data)), handler)
	defer p.close()

	stub, err := p.parse()
	if err != nil {
		_ = p.handler.HandleError(err)
		return nil, p.handler.Error()
	}
	return stub, nil
}

// parser is a single-pass recursive descent parser with one cursor over a
// token sequence.
type parser struct {
	filename string
	handler  *reporter.Handler

	next func() (Token, bool)
	stop func()

	// The most recently consumed token. Used to place errors about
	// running out of input.
	last Token
}

func newParser(filename string, tokens iter.Seq[Token], handler *reporter.Handler) *parser {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	next, stop := iter.Pull(tokens)
	return &parser{
		filename: filename,
		handler:  handler,
		next:     next,
		stop:     stop,
		last:     Token{Pos: ast.UnknownPos(filename)},
	}
}

func (p *parser) close() {
	p.stop()
}

func (p *parser) parse() (*ast.Stub, error) {
	stub := new(ast.Stub)
	var stmt *Token

	for {
		tok, ok := p.nextToken()
		if !ok {
			return stub, nil
		}

		var cmd ast.Cmd
		var err error
		switch tok.Text {
		case "read":
			cmd, err = p.parseRead(tok)
		case "write":
			cmd, err = p.parseWrite(tok)
		case "loop":
			cmd, err = p.parseLoop(tok)
		case "loopline":
			cmd, err = p.parseLoopLine(tok)
		case "OUTPUT":
			p.parseOutputComment(stub.Commands)
		case "INPUT":
			p.parseInputComment(stub.Commands)
		case "STATEMENT":
			if stmt != nil {
				p.handler.HandleWarning(tok.Pos, fmt.Errorf("%w at %s", ErrStatementReplaced, stmt.Pos))
			}
			stmt = &tok
			stub.Statement = p.parseTextBlock()
		case Newline, "":
			continue
		default:
			err = reporter.Errorf(tok.Pos, "%w %q", ErrUnknownToken, tok.Text)
		}

		if err != nil {
			return nil, err
		}
		if cmd != nil {
			stub.Commands = append(stub.Commands, cmd)
		}
	}
}

func (p *parser) parseRead(kw Token) (ast.Cmd, error) {
	vars, err := p.parseVariables(kw)
	if err != nil {
		return nil, err
	}
	return &ast.Read{Node: ast.Node{Pos: kw.Pos}, Vars: vars}, nil
}

func (p *parser) parseLoop(kw Token) (ast.Cmd, error) {
	count, err := p.parseCount(kw)
	if err != nil {
		return nil, err
	}
	body, err := p.parseLoopable(kw)
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Node: ast.Node{Pos: kw.Pos}, CountVar: count, Body: body}, nil
}

// parseLoopable parses the single command repeated by a loop.
func (p *parser) parseLoopable(loop Token) (ast.Cmd, error) {
	tok, ok := p.nextPastNewline()
	if !ok {
		return nil, reporter.Errorf(p.last.Pos, "%w: unexpected end of input after %q", ErrMissingLoopBody, loop.Text)
	}

	switch tok.Text {
	case "read":
		return p.parseRead(tok)
	case "write":
		return p.parseWrite(tok)
	case "loopline":
		return p.parseLoopLine(tok)
	case "loop":
		return p.parseLoop(tok)
	case Newline, "":
		return nil, reporter.Errorf(tok.Pos, "%w: nothing to repeat after %q", ErrMissingLoopBody, loop.Text)
	default:
		return nil, reporter.Errorf(tok.Pos, "%w %q", ErrInvalidLoopBody, tok.Text)
	}
}

func (p *parser) parseLoopLine(kw Token) (ast.Cmd, error) {
	count, err := p.parseCount(kw)
	if err != nil {
		return nil, err
	}
	vars, err := p.parseVariables(kw)
	if err != nil {
		return nil, err
	}
	return &ast.LoopLine{Node: ast.Node{Pos: kw.Pos}, CountVar: count, Vars: vars}, nil
}

// parseCount parses the count identifier of a loop or loopline. The count
// may be on the keyword's own line or at the start of the next one.
func (p *parser) parseCount(kw Token) (string, error) {
	tok, ok := p.nextPastNewline()
	switch {
	case !ok:
		return "", reporter.Errorf(p.last.Pos, "%w: unexpected end of input after %q", ErrMissingLoopCount, kw.Text)
	case tok.IsNewline(), tok.IsBlank():
		return "", reporter.Errorf(tok.Pos, "%w: could not find count identifier for %q", ErrMissingLoopCount, kw.Text)
	}
	return tok.Text, nil
}

// parseTextBlock skips the rest of the current line, then collects lines
// up to the next blank line or the end of input.
func (p *parser) parseTextBlock() string {
	p.skipToNextLine()

	var block []string
	for {
		line, ok := p.restOfLine()
		if !ok {
			return strings.Join(block, "\n")
		}
		block = append(block, line)
	}
}

func (p *parser) skipToNextLine() {
	for {
		tok, ok := p.nextToken()
		if !ok || tok.IsNewline() {
			return
		}
	}
}

// nextPastNewline returns the next token that is not blank. If that token
// ends the current line, the token right after it is returned instead,
// whatever it is.
func (p *parser) nextPastNewline() (Token, bool) {
	for {
		tok, ok := p.nextToken()
		switch {
		case !ok:
			return tok, false
		case tok.IsBlank():
			continue
		case tok.IsNewline():
			return p.nextToken()
		default:
			return tok, true
		}
	}
}

func (p *parser) nextToken() (Token, bool) {
	tok, ok := p.next()
	if ok {
		p.last = tok
	}
	return tok, ok
}

// restOfLine returns the remaining tokens of the current line, joined by
// single spaces and trimmed. It consumes the newline. A line without any
// text is reported as absent.
func (p *parser) restOfLine() (string, bool) {
	toks, ok := p.tokensUptoNewline()
	if !ok {
		return "", false
	}
	return strings.TrimSpace(joinTokens(toks)), true
}

// tokensUptoNewline returns the remaining tokens of the current line and
// consumes the newline. The boolean is false if the line has no text.
func (p *parser) tokensUptoNewline() ([]Token, bool) {
	var buf []Token
	for {
		tok, ok := p.nextToken()
		if !ok || tok.IsNewline() {
			break
		}
		buf = append(buf, tok)
	}

	for _, tok := range buf {
		if !tok.IsBlank() {
			return buf, true
		}
	}
	return buf, false
}

func joinTokens(toks []Token) string {
	var buf strings.Builder
	for i, tok := range toks {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(tok.Text)
	}
	return buf.String()
}
