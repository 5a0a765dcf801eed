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

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/hpoole/vc/token"
)

// Print writes an indented tree dump of program to w: each node labelled
// with its simple type name, indented by depth*tabWidth spaces. This is
// the debug dump behind the "parse" CLI subcommand.
func Print(w io.Writer, program *Program, tabWidth int) {
	p := &printer{w: w, tw: tabWidth}
	p.node(program, 0)
	for _, d := range program.Decls.Items {
		p.node(d, 1)
	}
}

type printer struct {
	w  io.Writer
	tw int
}

func typeName(n Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func (p *printer) line(depth int, n Node) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", depth*p.tw), typeName(n))
}

func (p *printer) node(n Node, depth int) {
	switch v := n.(type) {
	case *Program:
		p.line(depth, n)

	case *FuncDecl:
		p.line(depth, n)
		p.node(v.RetType, depth+1)
		p.node(v.Name, depth+1)
		for _, pd := range v.Params.Items {
			p.node(pd, depth+1)
		}
		p.node(v.Body, depth+1)

	case *GlobalVarDecl:
		p.line(depth, n)
		p.node(v.VarType, depth+1)
		p.node(v.Name, depth+1)
		p.node(v.Init, depth+1)

	case *LocalVarDecl:
		p.line(depth, n)
		p.node(v.VarType, depth+1)
		p.node(v.Name, depth+1)
		p.node(v.Init, depth+1)

	case *ParamDecl:
		p.line(depth, n)
		p.node(v.ParamType, depth+1)
		p.node(v.Name, depth+1)

	case *ArrayType:
		p.line(depth, n)
		p.node(v.Elem, depth+1)
		p.node(v.Size, depth+1)

	case *VoidType, *BoolType, *IntType, *FloatType, *StringType, *ErrorType:
		p.line(depth, n)

	case *CompoundStmt:
		p.line(depth, n)
		for _, d := range v.Locals.Items {
			p.node(d, depth+1)
		}
		for _, s := range v.Stmts.Items {
			p.node(s, depth+1)
		}

	case *EmptyCompoundStmt, *BreakStmt, *ContinueStmt, *EmptyStmt:
		p.line(depth, n)

	case *IfStmt:
		p.line(depth, n)
		p.node(v.Cond, depth+1)
		p.node(v.Then, depth+1)
		p.node(v.Else, depth+1)

	case *ForStmt:
		p.line(depth, n)
		p.node(v.Init, depth+1)
		p.node(v.Cond, depth+1)
		p.node(v.Post, depth+1)
		p.node(v.Body, depth+1)

	case *WhileStmt:
		p.line(depth, n)
		p.node(v.Cond, depth+1)
		p.node(v.Body, depth+1)

	case *ReturnStmt:
		p.line(depth, n)
		p.node(v.Value, depth+1)

	case *ExprStmt:
		p.line(depth, n)
		p.node(v.X, depth+1)

	case *IntExpr:
		p.line(depth, n)
		p.node(v.Lit, depth+1)
	case *FloatExpr:
		p.line(depth, n)
		p.node(v.Lit, depth+1)
	case *BoolExpr:
		p.line(depth, n)
		p.node(v.Lit, depth+1)
	case *StringExpr:
		p.line(depth, n)
		p.node(v.Lit, depth+1)

	case *VarExpr:
		p.line(depth, n)
		p.node(v.Name, depth+1)

	case *ArrayExpr:
		p.line(depth, n)
		p.node(v.Name, depth+1)
		p.node(v.Index, depth+1)

	case *AssignExpr:
		p.line(depth, n)
		p.node(v.LHS, depth+1)
		p.node(v.RHS, depth+1)

	case *BinaryExpr:
		p.line(depth, n)
		p.node(v.LHS, depth+1)
		p.node(v.Op, depth+1)
		p.node(v.RHS, depth+1)

	case *UnaryExpr:
		p.line(depth, n)
		p.node(v.Op, depth+1)
		p.node(v.Operand, depth+1)

	case *CallExpr:
		p.line(depth, n)
		p.node(v.Callee, depth+1)
		for _, a := range v.Args.Items {
			p.node(a, depth+1)
		}

	case *Arg:
		p.line(depth, n)
		p.node(v.Value, depth+1)

	case *ArrayInitExpr:
		p.line(depth, n)
		for _, e := range v.Elems.Items {
			p.node(e, depth+1)
		}

	case *EmptyExpr:
		p.line(depth, n)

	case *Ident, *Operator, *IntLiteral, *FloatLiteral, *BooleanLiteral, *StringLiteral:
		p.line(depth, n)

	default:
		panic(fmt.Sprintf("ast: print: unhandled node %T at %s", n, positionOf(n)))
	}
}

func positionOf(n Node) token.Position {
	return n.Pos()
}
