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

// FuncDecl is a function definition. Its body is always exactly one
// CompoundStmt, never nil.
type FuncDecl struct {
	Position token.Position
	RetType  Type
	Name     *Ident
	Params   *ParamList
	Body     *CompoundStmt
}

func (n *FuncDecl) Pos() token.Position { return n.Position }
func (*FuncDecl) declNode()             {}

// GlobalVarDecl is a variable declared at the top level. Init is an
// *EmptyExpr when the declarator carried no initialiser.
type GlobalVarDecl struct {
	Position token.Position
	VarType  Type
	Name     *Ident
	Init     Expr
}

func (n *GlobalVarDecl) Pos() token.Position { return n.Position }
func (*GlobalVarDecl) declNode()             {}

// LocalVarDecl is a variable declared inside a CompoundStmt, before any
// statements.
type LocalVarDecl struct {
	Position token.Position
	VarType  Type
	Name     *Ident
	Init     Expr
}

func (n *LocalVarDecl) Pos() token.Position { return n.Position }
func (*LocalVarDecl) declNode()             {}

// ParamDecl is one parameter of a FuncDecl.
type ParamDecl struct {
	Position  token.Position
	ParamType Type
	Name      *Ident
}

func (n *ParamDecl) Pos() token.Position { return n.Position }
func (*ParamDecl) declNode()             {}
