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

// This file implements the list families of the AST node universe
// (DeclList, StmtList, ParamList, ArgList, ArrayExprList). Each wraps an
// ordered Go slice rather than a head/tail cons cell, with separator and
// terminator emission handled entirely by unparse.go; a slice is both
// the idiomatic Go representation and considerably less boilerplate
// than a linked cons structure, and an empty slice already distinguishes
// "zero items" from "field absent" without a separate Empty*List type.
package ast

import "github.com/hpoole/vc/token"

// DeclList is a sequence of declarations: Program's top level, or a
// CompoundStmt's leading local variable declarations.
type DeclList struct {
	Position token.Position
	Items    []Decl
}

func (n *DeclList) Pos() token.Position { return n.Position }
func (*DeclList) listNode()             {}

// StmtList is a CompoundStmt's sequence of statements.
type StmtList struct {
	Position token.Position
	Items    []Stmt
}

func (n *StmtList) Pos() token.Position { return n.Position }
func (*StmtList) listNode()             {}

// ParamList is a FuncDecl's comma-separated parameter list.
type ParamList struct {
	Position token.Position
	Items    []*ParamDecl
}

func (n *ParamList) Pos() token.Position { return n.Position }
func (*ParamList) listNode()             {}

// ArgList is a CallExpr's comma-separated argument list.
type ArgList struct {
	Position token.Position
	Items    []*Arg
}

func (n *ArgList) Pos() token.Position { return n.Position }
func (*ArgList) listNode()             {}

// ArrayExprList is an ArrayInitExpr's comma-separated element list.
type ArrayExprList struct {
	Position token.Position
	Items    []Expr
}

func (n *ArrayExprList) Pos() token.Position { return n.Position }
func (*ArrayExprList) listNode()             {}
