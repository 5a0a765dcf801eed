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

// Ident names a variable, function, or field. Decl is a non-owning
// back-reference to the node that declares it, reserved for a later
// semantic pass; the parser never populates it, so it is always nil in
// the output of Parse.
type Ident struct {
	Position token.Position
	Name     string
	Decl     Node
}

func (n *Ident) Pos() token.Position { return n.Position }
func (*Ident) exprNode()             {}

// Operator is a leaf wrapping the spelling of a unary or binary operator
// token, kept distinct from the expression nodes that embed it so that
// BinaryExpr and UnaryExpr can share one printable representation of
// "which operator" independent of "which kind of expression".
type Operator struct {
	Position token.Position
	Spelling string
}

func (n *Operator) Pos() token.Position { return n.Position }

// IntLiteral, FloatLiteral, BooleanLiteral and StringLiteral are the raw
// literal leaves wrapped by IntExpr, FloatExpr, BoolExpr and StringExpr
// respectively. Spelling is exactly what the scanner produced: for
// StringLiteral this is the literal body with surrounding quotes
// stripped and escape sequences preserved verbatim.
type IntLiteral struct {
	Position token.Position
	Spelling string
}

func (n *IntLiteral) Pos() token.Position { return n.Position }

type FloatLiteral struct {
	Position token.Position
	Spelling string
}

func (n *FloatLiteral) Pos() token.Position { return n.Position }

type BooleanLiteral struct {
	Position token.Position
	Spelling string
}

func (n *BooleanLiteral) Pos() token.Position { return n.Position }

type StringLiteral struct {
	Position token.Position
	Spelling string
}

func (n *StringLiteral) Pos() token.Position { return n.Position }
