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
	"strings"

	"github.com/hpoole/vc/token"
)

// Unparse re-emits source text for program using the default tab width.
// Re-scanning and re-parsing the result yields a structurally equivalent
// AST (ignoring source positions).
func Unparse(program *Program) string {
	return UnparseIndent(program, token.TabWidth)
}

// UnparseIndent is Unparse with an overridable indentation width, used by
// the CLI's --indent-width flag and by tests that want to exercise the
// indentation logic at widths other than the production default.
func UnparseIndent(program *Program, tabWidth int) string {
	u := &unparser{tw: tabWidth}
	for _, d := range program.Decls.Items {
		u.decl(d, 0)
	}
	return u.sb.String()
}

type unparser struct {
	sb strings.Builder
	tw int
}

func (u *unparser) indent(depth int) string {
	return strings.Repeat(" ", depth*u.tw)
}

func (u *unparser) decl(d Decl, depth int) {
	switch n := d.(type) {
	case *FuncDecl:
		if n.Position.LineStart == 1 && n.Position.ColStart == 1 {
			u.sb.WriteString("\n" + u.indent(depth))
		} else {
			u.sb.WriteString(u.indent(depth))
		}
		u.typ(n.RetType)
		u.sb.WriteString(" ")
		u.sb.WriteString(n.Name.Name)
		u.sb.WriteString("(")
		u.paramList(n.Params, depth)
		u.stmt(n.Body, depth)

	case *GlobalVarDecl:
		u.sb.WriteString(u.indent(depth))
		u.varDecl(n.VarType, n.Name, n.Init, depth)

	case *LocalVarDecl:
		u.sb.WriteString("\n" + u.indent(depth))
		u.varDecl(n.VarType, n.Name, n.Init, depth)

	case *ParamDecl:
		u.typ(n.ParamType)
		u.sb.WriteString(" ")
		u.sb.WriteString(n.Name.Name)
		if at, ok := n.ParamType.(*ArrayType); ok {
			u.sb.WriteString("[")
			if _, empty := at.Size.(*EmptyExpr); !empty {
				u.expr(at.Size, depth)
			}
			u.sb.WriteString("]")
		}

	default:
		panic(fmt.Sprintf("ast: unparse: unhandled decl %T", d))
	}
}

// varDecl emits the shared "type name[ size? ] = init ;" body used by
// both GlobalVarDecl and LocalVarDecl. The array-size expression and the
// initialiser are two independent, never-conflated fields.
func (u *unparser) varDecl(t Type, name *Ident, init Expr, depth int) {
	u.typ(t)
	u.sb.WriteString(" ")
	u.sb.WriteString(name.Name)
	if at, ok := t.(*ArrayType); ok {
		u.sb.WriteString("[")
		if _, empty := at.Size.(*EmptyExpr); !empty {
			u.expr(at.Size, depth)
		}
		u.sb.WriteString("]")
	}
	if _, empty := init.(*EmptyExpr); !empty {
		u.sb.WriteString(" = ")
		u.expr(init, depth)
	}
	u.sb.WriteString(";")
}

func (u *unparser) typ(t Type) {
	switch t.(type) {
	case *VoidType:
		u.sb.WriteString("void")
	case *BoolType:
		u.sb.WriteString("boolean")
	case *IntType:
		u.sb.WriteString("int")
	case *FloatType:
		u.sb.WriteString("float")
	case *StringType:
		u.sb.WriteString("string")
	case *ArrayType:
		u.typ(t.(*ArrayType).Elem)
	case *ErrorType:
		u.sb.WriteString("<error>")
	default:
		panic(fmt.Sprintf("ast: unparse: unhandled type %T", t))
	}
}

// paramList emits "p1, p2)" ... the closing ")" belongs to the list
// itself (the empty-terminator convention of the original cons-cell
// grammar, preserved here as a plain trailing write since the slice
// representation has no terminator node of its own to own it).
func (u *unparser) paramList(pl *ParamList, depth int) {
	for i, p := range pl.Items {
		u.decl(p, depth)
		if i < len(pl.Items)-1 {
			u.sb.WriteString(", ")
		}
	}
	u.sb.WriteString(")")
}

func (u *unparser) argList(al *ArgList, depth int) {
	for i, a := range al.Items {
		u.expr(a.Value, depth)
		if i < len(al.Items)-1 {
			u.sb.WriteString(", ")
		}
	}
	u.sb.WriteString(")")
}

// arrayExprList emits "e1, e2" with no terminator — the closing "}"
// belongs to the owning ArrayInitExpr.
func (u *unparser) arrayExprList(el *ArrayExprList, depth int) {
	for i, e := range el.Items {
		u.expr(e, depth)
		if i < len(el.Items)-1 {
			u.sb.WriteString(", ")
		}
	}
}

// stmt emits a statement assuming the caller has already produced
// everything before it: all non-compound statements self-prefix with a
// newline and indent to depth, and compound statements self-prefix with
// nothing (they open their brace wherever the caller's cursor already
// is — immediately after "if (cond) ", "while (cond) ", etc).
func (u *unparser) stmt(s Stmt, depth int) {
	switch n := s.(type) {
	case *CompoundStmt:
		u.sb.WriteString("{")
		for _, d := range n.Locals.Items {
			u.decl(d, depth+1)
		}
		for _, st := range n.Stmts.Items {
			u.stmt(st, depth+1)
		}
		u.sb.WriteString("\n" + u.indent(depth) + "}")

	case *EmptyCompoundStmt:
		u.sb.WriteString("{\n" + u.indent(depth) + "}")

	case *IfStmt:
		u.ifStmt(n, depth, true)

	case *ForStmt:
		u.sb.WriteString("\n" + u.indent(depth) + "for (")
		u.expr(n.Init, depth)
		u.sb.WriteString("; ")
		u.expr(n.Cond, depth)
		u.sb.WriteString("; ")
		u.expr(n.Post, depth)
		u.sb.WriteString(") ")
		u.body(n.Body, depth)

	case *WhileStmt:
		u.sb.WriteString("\n" + u.indent(depth) + "while (")
		u.expr(n.Cond, depth)
		u.sb.WriteString(") ")
		u.body(n.Body, depth)

	case *BreakStmt:
		u.sb.WriteString("\n" + u.indent(depth) + "break;")

	case *ContinueStmt:
		u.sb.WriteString("\n" + u.indent(depth) + "continue;")

	case *ReturnStmt:
		u.sb.WriteString("\n" + u.indent(depth) + "return")
		if _, empty := n.Value.(*EmptyExpr); !empty {
			u.sb.WriteString(" ")
			u.expr(n.Value, depth)
		}
		u.sb.WriteString(";")

	case *ExprStmt:
		u.sb.WriteString("\n" + u.indent(depth))
		u.expr(n.X, depth)
		u.sb.WriteString(";")

	case *EmptyStmt:
		u.sb.WriteString("\n" + u.indent(depth) + ";")

	default:
		panic(fmt.Sprintf("ast: unparse: unhandled stmt %T", s))
	}
}

// body emits a control-flow body, increasing depth by one unless the
// body is already a compound statement (which manages its own nesting).
func (u *unparser) body(s Stmt, depth int) {
	switch s.(type) {
	case *CompoundStmt, *EmptyCompoundStmt:
		u.stmt(s, depth)
	default:
		u.stmt(s, depth+1)
	}
}

// ifStmt is split out from stmt so the else-if chaining case can call it
// with leading=false and keep "else if" on one line.
func (u *unparser) ifStmt(n *IfStmt, depth int, leading bool) {
	if leading {
		u.sb.WriteString("\n" + u.indent(depth))
	}
	u.sb.WriteString("if (")
	u.expr(n.Cond, depth)
	u.sb.WriteString(") ")
	u.body(n.Then, depth)

	switch e := n.Else.(type) {
	case *EmptyStmt:
		// no else branch
	case *IfStmt:
		u.sb.WriteString(" else ")
		u.ifStmt(e, depth, false)
	default:
		u.sb.WriteString("\n" + u.indent(depth) + "else ")
		u.body(n.Else, depth)
	}
}

func (u *unparser) expr(e Expr, depth int) {
	switch n := e.(type) {
	case *IntExpr:
		u.sb.WriteString(n.Lit.Spelling)
	case *FloatExpr:
		u.sb.WriteString(n.Lit.Spelling)
	case *BoolExpr:
		u.sb.WriteString(n.Lit.Spelling)
	case *StringExpr:
		// The scanner strips the surrounding quotes into Spelling; they
		// must be restored for the result to re-scan as a string literal.
		u.sb.WriteString("\"" + n.Lit.Spelling + "\"")
	case *VarExpr:
		u.sb.WriteString(n.Name.Name)
	case *ArrayExpr:
		u.sb.WriteString(n.Name.Name)
		u.sb.WriteString("[")
		u.expr(n.Index, depth)
		u.sb.WriteString("]")
	case *AssignExpr:
		u.sb.WriteString("(")
		u.expr(n.LHS, depth)
		u.sb.WriteString(" = ")
		u.expr(n.RHS, depth)
		u.sb.WriteString(")")
	case *BinaryExpr:
		u.sb.WriteString("(")
		u.expr(n.LHS, depth)
		u.sb.WriteString(" " + n.Op.Spelling + " ")
		u.expr(n.RHS, depth)
		u.sb.WriteString(")")
	case *UnaryExpr:
		u.sb.WriteString(n.Op.Spelling)
		u.expr(n.Operand, depth)
	case *CallExpr:
		u.sb.WriteString(n.Callee.Name)
		u.sb.WriteString("(")
		u.argList(n.Args, depth)
	case *ArrayInitExpr:
		u.sb.WriteString("{")
		u.arrayExprList(n.Elems, depth)
		u.sb.WriteString("}")
	case *EmptyExpr:
		// nothing
	default:
		panic(fmt.Sprintf("ast: unparse: unhandled expr %T", e))
	}
}
