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

// CheckSemantics walks the declarations, statements and expressions of
// program; it does not descend into types, identifiers, literals or
// function parameters. It is a stub: no type checking, symbol resolution,
// or constant folding happens here — those are out of scope for this
// front end. The
// traversal exists so the third visitor capability the source exposes
// (semantic-checking, alongside printing and unparsing) has a concrete,
// exercised home as a pure dispatch function rather than dead code.
func CheckSemantics(program *Program) {
	for _, d := range program.Decls.Items {
		checkDecl(d)
	}
}

func checkDecl(d Decl) {
	switch n := d.(type) {
	case *FuncDecl:
		checkStmt(n.Body)
	case *GlobalVarDecl:
		checkExpr(n.Init)
	case *LocalVarDecl:
		checkExpr(n.Init)
	case *ParamDecl:
		// no children to visit beyond type and name, neither of which
		// carries semantic content yet.
	}
}

func checkStmt(s Stmt) {
	switch n := s.(type) {
	case *CompoundStmt:
		for _, d := range n.Locals.Items {
			checkDecl(d)
		}
		for _, st := range n.Stmts.Items {
			checkStmt(st)
		}
	case *IfStmt:
		checkExpr(n.Cond)
		checkStmt(n.Then)
		checkStmt(n.Else)
	case *ForStmt:
		checkExpr(n.Init)
		checkExpr(n.Cond)
		checkExpr(n.Post)
		checkStmt(n.Body)
	case *WhileStmt:
		checkExpr(n.Cond)
		checkStmt(n.Body)
	case *ReturnStmt:
		checkExpr(n.Value)
	case *ExprStmt:
		checkExpr(n.X)
	}
}

func checkExpr(e Expr) {
	switch n := e.(type) {
	case *ArrayExpr:
		checkExpr(n.Index)
	case *AssignExpr:
		checkExpr(n.LHS)
		checkExpr(n.RHS)
	case *BinaryExpr:
		checkExpr(n.LHS)
		checkExpr(n.RHS)
	case *UnaryExpr:
		checkExpr(n.Operand)
	case *CallExpr:
		for _, a := range n.Args.Items {
			checkExpr(a.Value)
		}
	case *ArrayInitExpr:
		for _, el := range n.Elems.Items {
			checkExpr(el)
		}
	}
}
