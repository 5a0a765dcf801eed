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

// IntExpr, FloatExpr, BoolExpr and StringExpr wrap the matching literal
// leaf as an expression.
type IntExpr struct {
	Position token.Position
	Lit      *IntLiteral
}

func (n *IntExpr) Pos() token.Position { return n.Position }
func (*IntExpr) exprNode()             {}

type FloatExpr struct {
	Position token.Position
	Lit      *FloatLiteral
}

func (n *FloatExpr) Pos() token.Position { return n.Position }
func (*FloatExpr) exprNode()             {}

type BoolExpr struct {
	Position token.Position
	Lit      *BooleanLiteral
}

func (n *BoolExpr) Pos() token.Position { return n.Position }
func (*BoolExpr) exprNode()             {}

type StringExpr struct {
	Position token.Position
	Lit      *StringLiteral
}

func (n *StringExpr) Pos() token.Position { return n.Position }
func (*StringExpr) exprNode()             {}

// VarExpr is a plain variable reference.
type VarExpr struct {
	Position token.Position
	Name     *Ident
}

func (n *VarExpr) Pos() token.Position { return n.Position }
func (*VarExpr) exprNode()             {}

// ArrayExpr is an array subscript: Name[Index].
type ArrayExpr struct {
	Position token.Position
	Name     *Ident
	Index    Expr
}

func (n *ArrayExpr) Pos() token.Position { return n.Position }
func (*ArrayExpr) exprNode()             {}

// AssignExpr is "LHS = RHS". It is the only right-associative binary
// operator in the language.
type AssignExpr struct {
	Position token.Position
	LHS      Expr
	RHS      Expr
}

func (n *AssignExpr) Pos() token.Position { return n.Position }
func (*AssignExpr) exprNode()             {}

// BinaryExpr is "LHS Op RHS" for every left-associative binary operator
// (||, &&, comparisons, additive, multiplicative).
type BinaryExpr struct {
	Position token.Position
	LHS      Expr
	Op       *Operator
	RHS      Expr
}

func (n *BinaryExpr) Pos() token.Position { return n.Position }
func (*BinaryExpr) exprNode()             {}

// UnaryExpr is a prefix operator applied to Operand: +x, -x, !x.
type UnaryExpr struct {
	Position token.Position
	Op       *Operator
	Operand  Expr
}

func (n *UnaryExpr) Pos() token.Position { return n.Position }
func (*UnaryExpr) exprNode()             {}

// CallExpr is a function call: Callee(Args).
type CallExpr struct {
	Position token.Position
	Callee   *Ident
	Args     *ArgList
}

func (n *CallExpr) Pos() token.Position { return n.Position }
func (*CallExpr) exprNode()             {}

// Arg is a single call argument, wrapping the expression passed.
type Arg struct {
	Position token.Position
	Value    Expr
}

func (n *Arg) Pos() token.Position { return n.Position }
func (*Arg) exprNode()             {}

// ArrayInitExpr is a braced initialiser list: "{ e1, e2, ... }".
type ArrayInitExpr struct {
	Position token.Position
	Elems    *ArrayExprList
}

func (n *ArrayInitExpr) Pos() token.Position { return n.Position }
func (*ArrayInitExpr) exprNode()             {}

// EmptyExpr marks the absence of an expression where the grammar allows
// one to be omitted: an unspecified array size, an omitted for-clause, a
// bare "return;", an uninitialised declarator.
type EmptyExpr struct{ Position token.Position }

func (n *EmptyExpr) Pos() token.Position { return n.Position }
func (*EmptyExpr) exprNode()             {}
