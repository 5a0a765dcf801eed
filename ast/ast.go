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

// Package ast declares the types used to represent VC syntax trees.
//
// The tree is a closed sum type: every concrete node implements Node, and
// additionally one of Expr, Stmt, Decl or Type through an empty marker
// method. There is no visitor interface and no double dispatch — the
// three traversals this package offers (Unparse, Print, CheckSemantics)
// are each a single function per file that type-switches over ast.Node.
// A class hierarchy of visitors would buy nothing here: the node set is
// closed and known in full at compile time.
package ast

import "github.com/hpoole/vc/token"

// A Node represents any node in the abstract syntax tree. Every node
// carries the source span it was parsed from.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every declaration node (including Program's
// top-level entries).
type Decl interface {
	Node
	declNode()
}

// Type is implemented by every type node.
type Type interface {
	Node
	typeNode()
}

// List is implemented by every list node. Each list family is a single
// slice-backed type; there are no separate empty-terminator variants.
type List interface {
	Node
	listNode()
}
