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

package ast

import "github.com/hpoole/vc/token"

// CompoundStmt is a brace-delimited block: zero or more local variable
// declarations, followed by zero or more statements.
type CompoundStmt struct {
	Position token.Position
	Locals   *DeclList
	Stmts    *StmtList
}

func (n *CompoundStmt) Pos() token.Position { return n.Position }
func (*CompoundStmt) stmtNode()             {}

// EmptyCompoundStmt is a placeholder "{}" block distinct from a
// CompoundStmt with empty lists — kept as its own variant because the
// parser produces it for a block in statement position (a control-flow
// body or a nested block) written as an empty pair of braces, with no
// intervening decl/stmt list nodes to walk. A function body is always a
// CompoundStmt, even when empty.
type EmptyCompoundStmt struct{ Position token.Position }

func (n *EmptyCompoundStmt) Pos() token.Position { return n.Position }
func (*EmptyCompoundStmt) stmtNode()             {}

// IfStmt is "if (Cond) Then" optionally followed by "else Else". Else is
// an *EmptyStmt when there is no else-branch; a chained "else if" is
// represented by Else itself being an *IfStmt.
type IfStmt struct {
	Position token.Position
	Cond     Expr
	Then     Stmt
	Else     Stmt
}

func (n *IfStmt) Pos() token.Position { return n.Position }
func (*IfStmt) stmtNode()             {}

// ForStmt is "for (Init; Cond; Post) Body". Any of Init, Cond, Post may
// be an *EmptyExpr when the corresponding clause was omitted.
type ForStmt struct {
	Position token.Position
	Init     Expr
	Cond     Expr
	Post     Expr
	Body     Stmt
}

func (n *ForStmt) Pos() token.Position { return n.Position }
func (*ForStmt) stmtNode()             {}

// WhileStmt is "while (Cond) Body".
type WhileStmt struct {
	Position token.Position
	Cond     Expr
	Body     Stmt
}

func (n *WhileStmt) Pos() token.Position { return n.Position }
func (*WhileStmt) stmtNode()             {}

type BreakStmt struct{ Position token.Position }

func (n *BreakStmt) Pos() token.Position { return n.Position }
func (*BreakStmt) stmtNode()             {}

type ContinueStmt struct{ Position token.Position }

func (n *ContinueStmt) Pos() token.Position { return n.Position }
func (*ContinueStmt) stmtNode()             {}

// ReturnStmt is "return Value;". Value is an *EmptyExpr for a bare
// "return;".
type ReturnStmt struct {
	Position token.Position
	Value    Expr
}

func (n *ReturnStmt) Pos() token.Position { return n.Position }
func (*ReturnStmt) stmtNode()             {}

// ExprStmt is an expression used as a statement: "X;".
type ExprStmt struct {
	Position token.Position
	X        Expr
}

func (n *ExprStmt) Pos() token.Position { return n.Position }
func (*ExprStmt) stmtNode()             {}

// EmptyStmt is a bare ";", and also the canonical "no else-branch"
// placeholder for IfStmt.Else.
type EmptyStmt struct{ Position token.Position }

func (n *EmptyStmt) Pos() token.Position { return n.Position }
func (*EmptyStmt) stmtNode()             {}
