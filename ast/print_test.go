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

package ast_test

import (
	"strings"
	"testing"

	"github.com/hpoole/vc/ast"
)

func TestPrintLabelsEveryNodeByTypeName(t *testing.T) {
	prog := mustParse(t, "int fib(int n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }")

	var buf strings.Builder
	ast.Print(&buf, prog, 8)
	out := buf.String()

	for _, want := range []string{
		"Program", "FuncDecl", "IntType", "ParamDecl", "CompoundStmt",
		"IfStmt", "BinaryExpr", "ReturnStmt", "CallExpr",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintIndentsByDepthTimesTabWidth(t *testing.T) {
	prog := mustParse(t, "void f() { return; }")

	var buf strings.Builder
	ast.Print(&buf, prog, 4)
	out := buf.String()

	// ReturnStmt is nested three levels below Program at tab width 4:
	// Program -> FuncDecl -> CompoundStmt -> ReturnStmt.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "ReturnStmt") {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			if indent%4 != 0 {
				t.Errorf("ReturnStmt indent %d is not a multiple of tab width 4: %q", indent, line)
			}
			return
		}
	}
	t.Fatal("ReturnStmt line not found in Print output")
}
