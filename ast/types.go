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

// VoidType, BoolType, IntType, FloatType and StringType are the
// primitive types. StringType is constructible (a StringExpr's notional
// type) but the parser never produces it from a declaration's type
// position: VC's reserved-word table has no "string" keyword (see
// token.Kind), so parseType can never land on it. It exists for
// completeness of the type sum and for ArrayType element-type checks a
// later semantic pass might add.
type VoidType struct{ Position token.Position }

func (n *VoidType) Pos() token.Position { return n.Position }
func (*VoidType) typeNode()             {}

type BoolType struct{ Position token.Position }

func (n *BoolType) Pos() token.Position { return n.Position }
func (*BoolType) typeNode()             {}

type IntType struct{ Position token.Position }

func (n *IntType) Pos() token.Position { return n.Position }
func (*IntType) typeNode()             {}

type FloatType struct{ Position token.Position }

func (n *FloatType) Pos() token.Position { return n.Position }
func (*FloatType) typeNode()             {}

type StringType struct{ Position token.Position }

func (n *StringType) Pos() token.Position { return n.Position }
func (*StringType) typeNode()             {}

// ArrayType wraps a non-array element type with an optional size
// expression. Size is an *EmptyExpr when the declarator left the size
// unspecified (e.g. a parameter's "int a[]").
type ArrayType struct {
	Position token.Position
	Elem     Type
	Size     Expr
}

func (n *ArrayType) Pos() token.Position { return n.Position }
func (*ArrayType) typeNode()             {}

// ErrorType is reserved for a later semantic phase; the parser never
// produces it.
type ErrorType struct{ Position token.Position }

func (n *ErrorType) Pos() token.Position { return n.Position }
func (*ErrorType) typeNode()             {}
