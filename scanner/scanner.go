// Copyright 2024 The VC Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scanner implements a scanner for VC source text. It takes a
// []byte as source which can then be tokenized through repeated calls to
// the Next method.
package scanner

import (
	"fmt"

	"github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/internal/diag"
	"github.com/hpoole/vc/token"
)

// escapes is the fixed set of recognised two-character string escape
// sequences. Anything else following a backslash is a lexical error.
var escapes = map[rune]bool{
	'n': true, 't': true, 'r': true, 'f': true, 'b': true,
	'\\': true, '\'': true, '"': true,
}

// Scanner holds the scanner's internal state while processing a given
// text. It must be initialized via Init before use.
type Scanner struct {
	src []rune
	err errors.Handler
	run *diag.Run

	idx  int // index of the next unread rune in src
	line int // line of the next unread rune, 1-based
	col  int // column of the next unread rune, 1-based

	fatal bool // set once an unrecoverable lexical error has been reported
}

// Init prepares s to scan src, reporting fatal lexical errors (unterminated
// block comments, unterminated or malformed string literals) through err.
func Init(src []byte, err errors.Handler) *Scanner {
	return &Scanner{
		src:  []rune(string(src)),
		err:  err,
		run:  diag.NewRun(),
		idx:  0,
		line: 1,
		col:  1,
	}
}

func (s *Scanner) eof() bool {
	return s.idx >= len(s.src)
}

func (s *Scanner) peekAt(off int) rune {
	if s.idx+off >= len(s.src) {
		return 0
	}
	return s.src[s.idx+off]
}

func (s *Scanner) current() rune {
	return s.peekAt(0)
}

func (s *Scanner) peekNext() rune {
	return s.peekAt(1)
}

// advance consumes the current rune and updates the line/column cursor,
// expanding tabs to the next multiple of token.TabWidth.
func (s *Scanner) advance() rune {
	r := s.current()
	s.idx++
	switch r {
	case '\n':
		s.line++
		s.col = 1
	case '\t':
		s.col = ((s.col-1)/token.TabWidth+1)*token.TabWidth + 1
	default:
		s.col++
	}
	return r
}

func (s *Scanner) pos() token.Position {
	return token.FromCursor(s.line, s.col)
}

func (s *Scanner) fail(pos token.Position, format string, args ...interface{}) {
	s.fatal = true
	if s.err != nil {
		s.err(errors.Newf(pos, format, args...))
	}
}

// skipTrivia consumes whitespace, line comments and block comments. An
// unterminated block comment is a fatal lexical error.
func (s *Scanner) skipTrivia() {
	for !s.eof() {
		switch {
		case s.current() == ' ' || s.current() == '\t' || s.current() == '\n' || s.current() == '\r':
			s.advance()
		case s.current() == '/' && s.peekNext() == '/':
			for !s.eof() && s.current() != '\n' {
				s.advance()
			}
		case s.current() == '/' && s.peekNext() == '*':
			start := s.pos()
			s.advance()
			s.advance()
			closed := false
			for !s.eof() {
				if s.current() == '*' && s.peekNext() == '/' {
					s.advance()
					s.advance()
					closed = true
					break
				}
				s.advance()
			}
			if !closed {
				s.fail(start, "unterminated block comment starting at %s", start)
				return
			}
		default:
			return
		}
	}
}

// Next returns the next token, advancing the scanner. It is total and
// never fails outright: fatal lexical conditions are reported through the
// error handler supplied to Init and yield an ERROR token that terminates
// the caller's scan loop. Calling Next again after EOF keeps returning
// EOF tokens.
func (s *Scanner) Next() token.Token {
	s.skipTrivia()
	start := s.pos()

	if s.fatal {
		return token.Token{Kind: token.ERROR, Spelling: "", Pos: start}
	}
	if s.eof() {
		return token.Token{Kind: token.EOF, Spelling: "$", Pos: start}
	}

	c := s.current()
	s.run.Debugf("dispatch at %s: current char %q", start, c)

	switch {
	case isSeparator(c):
		return s.scanSeparator(start)
	case isOperatorStart(c):
		return s.scanOperator(start)
	case isDigit(c) || (c == '.' && isDigit(s.peekNext())):
		return s.scanNumber(start)
	case c == '"':
		return s.scanString(start)
	case isIdentStart(c):
		return s.scanIdentifier(start)
	default:
		s.advance()
		return token.Token{Kind: token.ERROR, Spelling: string(c), Pos: start.WithSpelling(1)}
	}
}

func isSeparator(c rune) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']', ';', ',':
		return true
	}
	return false
}

var separatorKinds = map[rune]token.Kind{
	'(': token.LPAREN, ')': token.RPAREN,
	'{': token.LBRACE, '}': token.RBRACE,
	'[': token.LBRACKET, ']': token.RBRACKET,
	';': token.SEMICOLON, ',': token.COMMA,
}

func (s *Scanner) scanSeparator(start token.Position) token.Token {
	c := s.advance()
	kind := separatorKinds[c]
	return token.Token{Kind: kind, Spelling: string(c), Pos: start.WithSpelling(1)}
}

func isOperatorStart(c rune) bool {
	switch c {
	case '+', '-', '*', '/', '!', '=', '<', '>', '&', '|':
		return true
	}
	return false
}

// scanOperator applies maximal munch: the two-character operators take
// precedence over their single-character prefixes.
func (s *Scanner) scanOperator(start token.Position) token.Token {
	c := s.advance()
	n := s.current()

	two := func(kind token.Kind, spelling string) token.Token {
		s.advance()
		return token.Token{Kind: kind, Spelling: spelling, Pos: start.WithSpelling(2)}
	}
	one := func(kind token.Kind) token.Token {
		return token.Token{Kind: kind, Spelling: string(c), Pos: start.WithSpelling(1)}
	}

	switch c {
	case '+':
		return one(token.PLUS)
	case '-':
		return one(token.MINUS)
	case '*':
		return one(token.MUL)
	case '/':
		return one(token.DIV)
	case '!':
		if n == '=' {
			return two(token.NOTEQ, "!=")
		}
		return one(token.NOT)
	case '=':
		if n == '=' {
			return two(token.EQ, "==")
		}
		return one(token.ASSIGN)
	case '<':
		if n == '=' {
			return two(token.LTEQ, "<=")
		}
		return one(token.LT)
	case '>':
		if n == '=' {
			return two(token.GTEQ, ">=")
		}
		return one(token.GT)
	case '&':
		if n == '&' {
			return two(token.ANDAND, "&&")
		}
		s.fail(start, "unexpected character %q", c)
		return token.Token{Kind: token.ERROR, Spelling: string(c), Pos: start.WithSpelling(1)}
	case '|':
		if n == '|' {
			return two(token.OROR, "||")
		}
		s.fail(start, "unexpected character %q", c)
		return token.Token{Kind: token.ERROR, Spelling: string(c), Pos: start.WithSpelling(1)}
	}
	panic(fmt.Sprintf("scanOperator: unreachable for %q", c))
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

// scanNumber reads an integer or float literal. The kind is decided by
// the presence of a fractional part or exponent.
func (s *Scanner) scanNumber(start token.Position) token.Token {
	var runes []rune
	for isDigit(s.current()) {
		runes = append(runes, s.advance())
	}

	isFloat := false
	if s.current() == '.' {
		isFloat = true
		runes = append(runes, s.advance())
		for isDigit(s.current()) {
			runes = append(runes, s.advance())
		}
	}
	if s.current() == 'e' || s.current() == 'E' {
		isFloat = true
		runes = append(runes, s.advance())
		if s.current() == '+' || s.current() == '-' {
			runes = append(runes, s.advance())
		}
		for isDigit(s.current()) {
			runes = append(runes, s.advance())
		}
	}

	spelling := string(runes)
	kind := token.INTLITERAL
	if isFloat {
		kind = token.FLOATLITERAL
	}
	return token.Token{Kind: kind, Spelling: spelling, Pos: start.WithSpelling(len(runes))}
}

// scanString reads a string literal. The surrounding quotes are stripped
// from the spelling; escape sequences are preserved verbatim as two
// characters. An unescaped newline/carriage-return or an unknown escape
// sequence before the closing quote is a fatal lexical error, as is
// running off the end of the source.
func (s *Scanner) scanString(start token.Position) token.Token {
	s.advance() // opening quote
	var runes []rune
	for {
		if s.eof() {
			s.fail(start, "unterminated string literal starting at %s", start)
			return token.Token{Kind: token.ERROR, Spelling: string(runes), Pos: start}
		}
		c := s.current()
		switch {
		case c == '"':
			s.advance()
			spelling := string(runes)
			// +2 for the stripped quotes, to keep the column span accurate.
			return token.Token{Kind: token.STRINGLITERAL, Spelling: spelling, Pos: start.WithSpelling(len(runes) + 2)}
		case c == '\n' || c == '\r':
			s.fail(start, "unterminated string literal: newline before closing quote")
			return token.Token{Kind: token.ERROR, Spelling: string(runes), Pos: start}
		case c == '\\':
			n := s.peekNext()
			if !escapes[n] {
				s.fail(start, "invalid escape sequence \\%c", n)
				return token.Token{Kind: token.ERROR, Spelling: string(runes), Pos: start}
			}
			runes = append(runes, s.advance(), s.advance())
		default:
			runes = append(runes, s.advance())
		}
	}
}

// scanIdentifier reads a maximal run of identifier characters, then
// classifies it as a keyword, a boolean literal, or a plain ID.
func (s *Scanner) scanIdentifier(start token.Position) token.Token {
	var runes []rune
	for isIdentPart(s.current()) {
		runes = append(runes, s.advance())
	}
	spelling := string(runes)
	return token.Token{Kind: token.Lookup(spelling), Spelling: spelling, Pos: start.WithSpelling(len(runes))}
}
