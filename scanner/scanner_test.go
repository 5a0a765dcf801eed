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

package scanner

import (
	"testing"

	"github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/token"
)

type elt struct {
	kind     token.Kind
	spelling string
}

func scanAll(t *testing.T, src string) ([]elt, errors.Error) {
	t.Helper()
	var got []elt
	var fatal errors.Error
	s := Init([]byte(src), func(e errors.Error) { fatal = e })
	for {
		tok := s.Next()
		got = append(got, elt{tok.Kind, tok.Spelling})
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			break
		}
	}
	return got, fatal
}

func checkElts(t *testing.T, got []elt, want []elt) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: got=%v want=%v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSeparators(t *testing.T) {
	got, fatal := scanAll(t, "(){}[];,")
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.LPAREN, "("}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.RBRACE, "}"},
		{token.LBRACKET, "["}, {token.RBRACKET, "]"},
		{token.SEMICOLON, ";"}, {token.COMMA, ","},
		{token.EOF, "$"},
	})
}

func TestOperatorsMaximalMunch(t *testing.T) {
	got, fatal := scanAll(t, "+ - * / ! != = == < <= > >= && ||")
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.PLUS, "+"}, {token.MINUS, "-"}, {token.MUL, "*"}, {token.DIV, "/"},
		{token.NOT, "!"}, {token.NOTEQ, "!="},
		{token.ASSIGN, "="}, {token.EQ, "=="},
		{token.LT, "<"}, {token.LTEQ, "<="},
		{token.GT, ">"}, {token.GTEQ, ">="},
		{token.ANDAND, "&&"}, {token.OROR, "||"},
		{token.EOF, "$"},
	})
}

func TestNumbers(t *testing.T) {
	got, fatal := scanAll(t, "123 3.14 1. 2e10 3.5e-3")
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.INTLITERAL, "123"},
		{token.FLOATLITERAL, "3.14"},
		{token.FLOATLITERAL, "1."},
		{token.FLOATLITERAL, "2e10"},
		{token.FLOATLITERAL, "3.5e-3"},
		{token.EOF, "$"},
	})
}

func TestStrings(t *testing.T) {
	got, fatal := scanAll(t, `"hello" "a\tb" "quote\""`)
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.STRINGLITERAL, "hello"},
		{token.STRINGLITERAL, `a\tb`},
		{token.STRINGLITERAL, `quote\"`},
		{token.EOF, "$"},
	})
}

func TestIdentifiersAndKeywords(t *testing.T) {
	got, fatal := scanAll(t, "int foo123 _bar true false boolean")
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.INT, "int"},
		{token.ID, "foo123"},
		{token.ID, "_bar"},
		{token.BOOLEANLITERAL, "true"},
		{token.BOOLEANLITERAL, "false"},
		{token.BOOLEAN, "boolean"},
		{token.EOF, "$"},
	})
}

func TestCommentsAreTrivia(t *testing.T) {
	got, fatal := scanAll(t, "1 // trailing line comment\n/* block\ncomment */ 2")
	if fatal != nil {
		t.Fatalf("unexpected error: %v", fatal)
	}
	checkElts(t, got, []elt{
		{token.INTLITERAL, "1"},
		{token.INTLITERAL, "2"},
		{token.EOF, "$"},
	})
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, fatal := scanAll(t, "/* oops")
	if fatal == nil {
		t.Fatal("expected a fatal error, got none")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, fatal := scanAll(t, `"abc`)
	if fatal == nil {
		t.Fatal("expected a fatal error, got none")
	}
}

func TestStringWithNewlineIsFatal(t *testing.T) {
	_, fatal := scanAll(t, "\"abc\ndef\"")
	if fatal == nil {
		t.Fatal("expected a fatal error, got none")
	}
}

func TestInvalidEscapeIsFatal(t *testing.T) {
	_, fatal := scanAll(t, `"a\qb"`)
	if fatal == nil {
		t.Fatal("expected a fatal error, got none")
	}
}

func TestTabExpandsColumnToNextMultipleOfEight(t *testing.T) {
	s := Init([]byte("\tx"), nil)
	tok := s.Next()
	if tok.Pos.ColStart != 9 {
		t.Errorf("after one leading tab, ColStart = %d, want 9", tok.Pos.ColStart)
	}
}

func TestEOFIsSticky(t *testing.T) {
	s := Init([]byte(""), nil)
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: Kind = %s, want EOF", i, tok.Kind)
		}
	}
}
