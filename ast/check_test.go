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
	"testing"

	"github.com/hpoole/vc/ast"
)

// TestCheckSemanticsVisitsEveryNode guards against a panic on any
// concrete node type CheckSemantics' dispatch switches see; it does not
// assert any diagnostic output since no type checking is implemented.
func TestCheckSemanticsVisitsEveryNode(t *testing.T) {
	prog := mustParse(t, `
		int fib(int n) {
			int a[3] = {1, 2, 3};
			if (n < 2) return n;
			for (n = n; n < 2; n = n + 1) {}
			while (n) n = n - 1;
			return fib(n - 1) + fib(n - 2);
		}
	`)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("CheckSemantics panicked: %v", r)
		}
	}()
	ast.CheckSemantics(prog)
}
