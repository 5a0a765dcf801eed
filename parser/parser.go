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

package parser

import (
	"github.com/hpoole/vc/ast"
	"github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/internal/diag"
	"github.com/hpoole/vc/scanner"
	"github.com/hpoole/vc/token"
)

// parser holds one token of lookahead over a Scanner. It is used linearly:
// every method assumes p.tok is the next unconsumed token on entry and
// leaves the same invariant true on return.
type parser struct {
	scan *scanner.Scanner
	err  errors.Handler
	run  *diag.Run
	tok  token.Token
}

func (p *parser) pos() token.Position { return p.tok.Pos }

func (p *parser) next() {
	p.tok = p.scan.Next()
	p.run.Debugf("parser sees %s", p.tok)
}

func (p *parser) errf(pos token.Position, format string, args ...interface{}) {
	p.err(errors.Newf(pos, format, args...))
}

// expect consumes the current token if it has kind, reporting a diagnostic
// naming the offending token's kind, spelling and position otherwise.
func (p *parser) expect(kind token.Kind) token.Token {
	tok := p.tok
	if tok.Kind != kind {
		p.errf(tok.Pos, "expected %s, found %s %q", kind, tok.Kind, tok.Spelling)
	}
	p.next()
	return tok
}

func isTypeStart(k token.Kind) bool {
	switch k {
	case token.VOID, token.BOOLEAN, token.INT, token.FLOAT:
		return true
	}
	return false
}

func startsExpr(k token.Kind) bool {
	switch k {
	case token.ID, token.INTLITERAL, token.FLOATLITERAL, token.BOOLEANLITERAL, token.STRINGLITERAL,
		token.LPAREN, token.PLUS, token.MINUS, token.NOT:
		return true
	}
	return false
}

// parseProgram is the grammar's start symbol: a sequence of top-level
// declarations until EOF.
func (p *parser) parseProgram() *ast.Program {
	start := p.pos()
	decls := &ast.DeclList{Position: start}
	for p.tok.Kind != token.EOF {
		decls.Items = append(decls.Items, p.parseTopLevelDecl()...)
	}
	decls.Position = token.Span(start, p.pos())
	return &ast.Program{Position: decls.Position, Decls: decls}
}

// parseTopLevelDecl parses one top-level declaration. A declaration always
// begins with a primitive type followed by an identifier; the token
// immediately after that pair disambiguates a function from a (possibly
// comma-chained) variable declaration.
func (p *parser) parseTopLevelDecl() []ast.Decl {
	start := p.pos()
	baseType := p.parseType()
	name := p.parseIdent()
	if p.tok.Kind == token.LPAREN {
		return []ast.Decl{p.parseFuncDecl(start, baseType, name)}
	}
	return p.parseVarDecls(start, baseType, name, true)
}

func (p *parser) parseType() ast.Type {
	pos := p.pos()
	switch p.tok.Kind {
	case token.VOID:
		p.next()
		return &ast.VoidType{Position: pos}
	case token.BOOLEAN:
		p.next()
		return &ast.BoolType{Position: pos}
	case token.INT:
		p.next()
		return &ast.IntType{Position: pos}
	case token.FLOAT:
		p.next()
		return &ast.FloatType{Position: pos}
	default:
		p.errf(pos, "expected a type, found %s %q", p.tok.Kind, p.tok.Spelling)
		return &ast.ErrorType{Position: pos}
	}
}

func (p *parser) parseIdent() *ast.Ident {
	tok := p.expect(token.ID)
	return &ast.Ident{Position: tok.Pos, Name: tok.Spelling}
}

// parseFuncDecl parses "( param-list ) compound-stmt" given an already
// consumed "type ID" prefix.
func (p *parser) parseFuncDecl(start token.Position, retType ast.Type, name *ast.Ident) ast.Decl {
	p.expect(token.LPAREN)
	params := p.parseParamList()
	body := p.parseCompoundStmt()
	return &ast.FuncDecl{
		Position: token.Span(start, body.Pos()),
		RetType:  retType,
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

// parseParamList parses a possibly-empty comma-separated parameter list.
// The closing ")" is consumed here, matching the terminator-owns-the-close
// convention the unparser preserves on the way back out (see ast/unparse.go).
func (p *parser) parseParamList() *ast.ParamList {
	start := p.pos()
	pl := &ast.ParamList{}
	if p.tok.Kind == token.RPAREN {
		p.next()
		pl.Position = token.Span(start, start)
		return pl
	}
	for {
		pl.Items = append(pl.Items, p.parseParamDecl())
		if p.tok.Kind != token.COMMA {
			break
		}
		p.next()
	}
	rp := p.expect(token.RPAREN)
	pl.Position = token.Span(start, rp.Pos)
	return pl
}

// parseParamDecl parses "type ID ( [ ] )?". A parameter's array suffix
// never carries a size: "int a[]" always yields an EmptyExpr size.
func (p *parser) parseParamDecl() *ast.ParamDecl {
	start := p.pos()
	t := p.parseType()
	name := p.parseIdent()
	if p.tok.Kind == token.LBRACKET {
		lb := p.pos()
		p.next()
		rb := p.expect(token.RBRACKET)
		t = &ast.ArrayType{
			Position: token.Span(lb, rb.Pos),
			Elem:     t,
			Size:     &ast.EmptyExpr{Position: rb.Pos},
		}
	}
	return &ast.ParamDecl{Position: token.Span(start, name.Pos()), ParamType: t, Name: name}
}

// parseVarDecls parses the comma-chained tail of a variable declaration,
// given an already consumed "type ID" prefix: each subsequent name shares
// the same base type token but parses its own array suffix and
// initialiser independently, and each name becomes its own declaration
// node (GlobalVarDecl or LocalVarDecl depending on isGlobal).
func (p *parser) parseVarDecls(start token.Position, baseType ast.Type, name *ast.Ident, isGlobal bool) []ast.Decl {
	var decls []ast.Decl
	declStart := start
	for {
		declType, init := p.parseDeclaratorTail(baseType)
		pos := token.Span(declStart, p.pos())
		if isGlobal {
			decls = append(decls, &ast.GlobalVarDecl{Position: pos, VarType: declType, Name: name, Init: init})
		} else {
			decls = append(decls, &ast.LocalVarDecl{Position: pos, VarType: declType, Name: name, Init: init})
		}
		if p.tok.Kind != token.COMMA {
			break
		}
		p.next()
		declStart = p.pos()
		name = p.parseIdent()
	}
	p.expect(token.SEMICOLON)
	return decls
}

// parseDeclaratorTail parses the optional "[ INTLITERAL? ]" array suffix
// and the optional "= initialiser" for one declarator, given the shared
// base type. The two are independent fields on the resulting type/Init
// pair — never conflated, unlike the array-size-doubles-as-initialiser
// shortcut a literal transliteration of the original grammar would invite.
func (p *parser) parseDeclaratorTail(baseType ast.Type) (ast.Type, ast.Expr) {
	t := baseType
	if p.tok.Kind == token.LBRACKET {
		lb := p.pos()
		p.next()
		var size ast.Expr
		if p.tok.Kind == token.INTLITERAL {
			lit := p.tok
			p.next()
			size = &ast.IntExpr{Position: lit.Pos, Lit: &ast.IntLiteral{Position: lit.Pos, Spelling: lit.Spelling}}
		} else {
			size = &ast.EmptyExpr{Position: p.pos()}
		}
		rb := p.expect(token.RBRACKET)
		t = &ast.ArrayType{Position: token.Span(lb, rb.Pos), Elem: baseType, Size: size}
	}
	if p.tok.Kind == token.ASSIGN {
		p.next()
		return t, p.parseInitialiser()
	}
	return t, &ast.EmptyExpr{Position: p.pos()}
}

// parseInitialiser parses either a single expression or a braced
// "{ expr (, expr)* }" list, the latter producing an ArrayInitExpr.
func (p *parser) parseInitialiser() ast.Expr {
	if p.tok.Kind != token.LBRACE {
		return p.parseExpr()
	}
	start := p.pos()
	p.next()
	listStart := p.pos()
	elems := &ast.ArrayExprList{Position: listStart}
	if p.tok.Kind != token.RBRACE {
		for {
			elems.Items = append(elems.Items, p.parseExpr())
			if p.tok.Kind != token.COMMA {
				break
			}
			p.next()
		}
	}
	elems.Position = token.Span(listStart, p.pos())
	rb := p.expect(token.RBRACE)
	return &ast.ArrayInitExpr{Position: token.Span(start, rb.Pos), Elems: elems}
}

// parseCompoundStmt parses "{ local-decl* stmt* }" unconditionally as a
// *ast.CompoundStmt, including when both lists are empty. It is used only
// for a FuncDecl's body, whose invariant pins the field's static type to
// *CompoundStmt; see parseBlockStmt for the statement-position variant
// that can instead yield an EmptyCompoundStmt.
func (p *parser) parseCompoundStmt() *ast.CompoundStmt {
	start := p.pos()
	p.expect(token.LBRACE)
	locals, stmts := p.parseCompoundBody()
	rb := p.expect(token.RBRACE)
	return &ast.CompoundStmt{
		Position: token.Span(start, rb.Pos),
		Locals:   &ast.DeclList{Items: locals},
		Stmts:    &ast.StmtList{Items: stmts},
	}
}

// parseCompoundBody parses the inside of a brace-delimited block: zero or
// more local variable declarations (recognised by a leading type token),
// followed by zero or more statements, up to (but not consuming) the
// closing brace.
func (p *parser) parseCompoundBody() ([]ast.Decl, []ast.Stmt) {
	var locals []ast.Decl
	for isTypeStart(p.tok.Kind) {
		start := p.pos()
		baseType := p.parseType()
		name := p.parseIdent()
		locals = append(locals, p.parseVarDecls(start, baseType, name, false)...)
	}
	var stmts []ast.Stmt
	for p.tok.Kind != token.RBRACE && p.tok.Kind != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	return locals, stmts
}

// parseBlockStmt parses a brace-delimited block in statement position
// (the body of an if/for/while/else, or a nested block). Unlike
// parseCompoundStmt, an immediately-closed "{}" yields the dedicated
// EmptyCompoundStmt placeholder rather than a CompoundStmt with two empty
// lists.
func (p *parser) parseBlockStmt() ast.Stmt {
	start := p.pos()
	p.next() // consume "{"
	if p.tok.Kind == token.RBRACE {
		rb := p.pos()
		p.next()
		return &ast.EmptyCompoundStmt{Position: token.Span(start, rb)}
	}
	locals, stmts := p.parseCompoundBody()
	rb := p.expect(token.RBRACE)
	return &ast.CompoundStmt{
		Position: token.Span(start, rb.Pos),
		Locals:   &ast.DeclList{Items: locals},
		Stmts:    &ast.StmtList{Items: stmts},
	}
}

// parseStmt dispatches on the current token to one of the statement forms.
func (p *parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.BREAK:
		pos := p.pos()
		p.next()
		p.expect(token.SEMICOLON)
		return &ast.BreakStmt{Position: pos}
	case token.CONTINUE:
		pos := p.pos()
		p.next()
		p.expect(token.SEMICOLON)
		return &ast.ContinueStmt{Position: pos}
	case token.RETURN:
		return p.parseReturnStmt()
	case token.SEMICOLON:
		pos := p.pos()
		p.next()
		return &ast.EmptyStmt{Position: pos}
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseIfStmt() ast.Stmt {
	start := p.pos()
	p.next() // "if"
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()

	var elseStmt ast.Stmt = &ast.EmptyStmt{Position: then.Pos()}
	end := then.Pos()
	if p.tok.Kind == token.ELSE {
		p.next()
		elseStmt = p.parseStmt()
		end = elseStmt.Pos()
	}
	return &ast.IfStmt{Position: token.Span(start, end), Cond: cond, Then: then, Else: elseStmt}
}

func (p *parser) parseForStmt() ast.Stmt {
	start := p.pos()
	p.next() // "for"
	p.expect(token.LPAREN)
	init := p.parseOptExpr(token.SEMICOLON)
	p.expect(token.SEMICOLON)
	cond := p.parseOptExpr(token.SEMICOLON)
	p.expect(token.SEMICOLON)
	post := p.parseOptExpr(token.RPAREN)
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.ForStmt{Position: token.Span(start, body.Pos()), Init: init, Cond: cond, Post: post, Body: body}
}

// parseOptExpr parses an expression unless the current token is stop, in
// which case the clause was omitted and an EmptyExpr is produced instead.
func (p *parser) parseOptExpr(stop token.Kind) ast.Expr {
	if p.tok.Kind == stop {
		return &ast.EmptyExpr{Position: p.pos()}
	}
	return p.parseExpr()
}

func (p *parser) parseWhileStmt() ast.Stmt {
	start := p.pos()
	p.next() // "while"
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{Position: token.Span(start, body.Pos()), Cond: cond, Body: body}
}

func (p *parser) parseReturnStmt() ast.Stmt {
	start := p.pos()
	p.next() // "return"
	var val ast.Expr = &ast.EmptyExpr{Position: p.pos()}
	if p.tok.Kind != token.SEMICOLON {
		val = p.parseExpr()
	}
	semi := p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Position: token.Span(start, semi.Pos), Value: val}
}

func (p *parser) parseExprStmt() ast.Stmt {
	start := p.pos()
	if !startsExpr(p.tok.Kind) {
		p.errf(start, "unexpected token %s %q", p.tok.Kind, p.tok.Spelling)
	}
	x := p.parseExpr()
	semi := p.expect(token.SEMICOLON)
	return &ast.ExprStmt{Position: token.Span(start, semi.Pos), X: x}
}

// --- Expressions: a ladder of left-folding binary levels over a prefix
// unary level over primary expressions. Every level but assign is left-
// associative; the grammar is written right-recursively but each level is
// folded iteratively into a left-leaning tree as it parses, rather than
// building a right-leaning tree and re-shaping it afterwards.

func (p *parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

func (p *parser) parseAssign() ast.Expr {
	start := p.pos()
	lhs := p.parseOr()
	if p.tok.Kind != token.ASSIGN {
		return lhs
	}
	p.next()
	rhs := p.parseAssign() // right-associative: fold on the way back up
	return &ast.AssignExpr{Position: token.Span(start, rhs.Pos()), LHS: lhs, RHS: rhs}
}

// parseBinaryLeft implements the left-folding rule shared by every
// left-associative precedence level: parse one operand at the next-higher
// level, then while the lookahead is an operator of this level, consume
// it, parse another operand, and fold it into a left-leaning BinaryExpr.
func (p *parser) parseBinaryLeft(next func() ast.Expr, kinds ...token.Kind) ast.Expr {
	start := p.pos()
	acc := next()
	for matchesAny(p.tok.Kind, kinds) {
		opTok := p.tok
		p.next()
		rhs := next()
		acc = &ast.BinaryExpr{
			Position: token.Span(start, rhs.Pos()),
			LHS:      acc,
			Op:       &ast.Operator{Position: opTok.Pos, Spelling: opTok.Spelling},
			RHS:      rhs,
		}
	}
	return acc
}

func matchesAny(k token.Kind, kinds []token.Kind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *parser) parseOr() ast.Expr {
	return p.parseBinaryLeft(p.parseAnd, token.OROR)
}

func (p *parser) parseAnd() ast.Expr {
	return p.parseBinaryLeft(p.parseEquality, token.ANDAND)
}

func (p *parser) parseEquality() ast.Expr {
	return p.parseBinaryLeft(p.parseRelational, token.EQ, token.NOTEQ)
}

func (p *parser) parseRelational() ast.Expr {
	return p.parseBinaryLeft(p.parseAdditive, token.LT, token.LTEQ, token.GT, token.GTEQ)
}

func (p *parser) parseAdditive() ast.Expr {
	return p.parseBinaryLeft(p.parseMultiplicative, token.PLUS, token.MINUS)
}

func (p *parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryLeft(p.parseUnary, token.MUL, token.DIV)
}

// parseUnary is the one right-recursive level: "+ - !" may stack, and the
// resulting tree nests outermost-operator-first, matching ordinary prefix
// semantics.
func (p *parser) parseUnary() ast.Expr {
	switch p.tok.Kind {
	case token.PLUS, token.MINUS, token.NOT:
		opTok := p.tok
		p.next()
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			Position: token.Span(opTok.Pos, operand.Pos()),
			Op:       &ast.Operator{Position: opTok.Pos, Spelling: opTok.Spelling},
			Operand:  operand,
		}
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() ast.Expr {
	start := p.pos()
	switch p.tok.Kind {
	case token.INTLITERAL:
		spelling := p.tok.Spelling
		p.next()
		return &ast.IntExpr{Position: start, Lit: &ast.IntLiteral{Position: start, Spelling: spelling}}
	case token.FLOATLITERAL:
		spelling := p.tok.Spelling
		p.next()
		return &ast.FloatExpr{Position: start, Lit: &ast.FloatLiteral{Position: start, Spelling: spelling}}
	case token.BOOLEANLITERAL:
		spelling := p.tok.Spelling
		p.next()
		return &ast.BoolExpr{Position: start, Lit: &ast.BooleanLiteral{Position: start, Spelling: spelling}}
	case token.STRINGLITERAL:
		spelling := p.tok.Spelling
		p.next()
		return &ast.StringExpr{Position: start, Lit: &ast.StringLiteral{Position: start, Spelling: spelling}}
	case token.ID:
		return p.parseIdentExpr()
	case token.LPAREN:
		p.next()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner
	default:
		p.errf(start, "expected an expression, found %s %q", p.tok.Kind, p.tok.Spelling)
		return &ast.EmptyExpr{Position: start}
	}
}

// parseIdentExpr disambiguates the three identifier-led primary forms by
// peeking one token past the identifier: "[" starts a subscript, "("
// starts a call, anything else is a bare variable reference.
func (p *parser) parseIdentExpr() ast.Expr {
	nameTok := p.tok
	p.next()
	name := &ast.Ident{Position: nameTok.Pos, Name: nameTok.Spelling}

	switch p.tok.Kind {
	case token.LBRACKET:
		p.next()
		index := p.parseExpr()
		rb := p.expect(token.RBRACKET)
		return &ast.ArrayExpr{Position: token.Span(nameTok.Pos, rb.Pos), Name: name, Index: index}
	case token.LPAREN:
		p.next()
		args := p.parseArgList()
		return &ast.CallExpr{Position: token.Span(nameTok.Pos, args.Pos()), Callee: name, Args: args}
	default:
		return &ast.VarExpr{Position: name.Position, Name: name}
	}
}

// parseArgList parses a possibly-empty comma-separated argument list,
// given an already consumed "(". The closing ")" is consumed here, same
// as parseParamList.
func (p *parser) parseArgList() *ast.ArgList {
	start := p.pos()
	al := &ast.ArgList{}
	if p.tok.Kind == token.RPAREN {
		p.next()
		al.Position = token.Span(start, start)
		return al
	}
	for {
		argStart := p.pos()
		v := p.parseExpr()
		al.Items = append(al.Items, &ast.Arg{Position: token.Span(argStart, v.Pos()), Value: v})
		if p.tok.Kind != token.COMMA {
			break
		}
		p.next()
	}
	rp := p.expect(token.RPAREN)
	al.Position = token.Span(start, rp.Pos)
	return al
}
