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

package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"int", INT},
		{"float", FLOAT},
		{"boolean", BOOLEAN},
		{"void", VOID},
		{"if", IF},
		{"else", ELSE},
		{"for", FOR},
		{"while", WHILE},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"return", RETURN},
		{"true", BOOLEANLITERAL},
		{"false", BOOLEANLITERAL},
		{"x", ID},
		{"string", ID}, // no STRING keyword in the reserved-word table
		{"_foo", ID},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	for _, k := range []Kind{BOOLEAN, BREAK, CONTINUE, ELSE, FLOAT, FOR, IF, INT, RETURN, VOID, WHILE} {
		if !k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false, want true", k)
		}
	}
	for _, k := range []Kind{ID, INTLITERAL, PLUS, LBRACE, EOF, ERROR} {
		if k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true, want false", k)
		}
	}
}

func TestPositionSpan(t *testing.T) {
	a := Position{LineStart: 1, ColStart: 5, LineEnd: 1, ColEnd: 5}
	b := Position{LineStart: 2, ColStart: 1, LineEnd: 2, ColEnd: 3}
	got := Span(a, b)
	want := Position{LineStart: 1, ColStart: 5, LineEnd: 2, ColEnd: 3}
	if got != want {
		t.Errorf("Span(a, b) = %+v, want %+v", got, want)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: ID, Spelling: "foo", Pos: Position{LineStart: 1, LineEnd: 1, ColStart: 1, ColEnd: 3}}
	want := `Token { kind: ID, spelling: "foo", pos: (1, 1, 1, 3) }`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
