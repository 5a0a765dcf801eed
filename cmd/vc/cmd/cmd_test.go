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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// fixture returns the path to one of this package's small testdata/fixtures
// files, used by the in-process RunE tests here (the testscript golden
// tests in script_test.go embed their own input files instead).
func fixture(name string) string {
	return "testdata/fixtures/" + name
}

// runVC builds a fresh root command for args and executes it in-process,
// the same way cue-lang-cue's cmd_test.go drives RunE directly instead of
// spawning a subprocess.
func runVC(t *testing.T, args ...string) (c *Command, stdout, stderr string) {
	t.Helper()
	c = New(args)
	var outBuf, errBuf bytes.Buffer
	c.root.SetOut(&outBuf)
	c.root.SetErr(&errBuf)
	if err := c.root.Execute(); err != nil && err != ErrPrintedError {
		t.Fatalf("Execute() returned an unexpected error: %v", err)
	}
	return c, outBuf.String(), errBuf.String()
}

func TestScanCommandPrintsTokensAndSucceeds(t *testing.T) {
	_, stdout, stderr := runVC(t, "scan", fixture("decl.vc"))
	for _, want := range []string{"kind: int", "ID", "kind: ;", "EOF"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("scan stdout missing %q:\n%s", want, stdout)
		}
	}
	if stderr != "" {
		t.Errorf("scan stderr = %q, want empty", stderr)
	}
}

func TestScanCommandReportsLexicalError(t *testing.T) {
	c, _, stderr := runVC(t, "scan", fixture("bad_string.vc"))
	if !c.hasErr {
		t.Error("hasErr = false, want true for a lexical error")
	}
	if stderr == "" {
		t.Error("stderr is empty, want a diagnostic")
	}
}

func TestParseCommandPrintsTree(t *testing.T) {
	_, stdout, stderr := runVC(t, "parse", fixture("fib.vc"))
	for _, want := range []string{"Program", "FuncDecl", "IfStmt", "BinaryExpr", "CallExpr"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("parse stdout missing %q:\n%s", want, stdout)
		}
	}
	if stderr != "" {
		t.Errorf("parse stderr = %q, want empty", stderr)
	}
}

func TestParseCommandReportsSyntaxError(t *testing.T) {
	c, stdout, stderr := runVC(t, "parse", fixture("bad_syntax.vc"))
	if !c.hasErr {
		t.Error("hasErr = false, want true for a syntax error")
	}
	if stdout != "" {
		t.Errorf("parse stdout = %q, want empty on failure", stdout)
	}
	if stderr == "" {
		t.Error("stderr is empty, want a diagnostic")
	}
}

func TestParseCommandReportsMissingFile(t *testing.T) {
	c, _, stderr := runVC(t, "parse", fixture("does_not_exist.vc"))
	if !c.hasErr {
		t.Error("hasErr = false, want true for a missing file")
	}
	if !strings.Contains(stderr, "cannot read") {
		t.Errorf("stderr = %q, want it to mention the read failure", stderr)
	}
}

func TestUnparseCommandByteExact(t *testing.T) {
	_, stdout, stderr := runVC(t, "unparse", fixture("decl.vc"))
	if stdout != "int i;" {
		t.Errorf("unparse stdout = %q, want %q", stdout, "int i;")
	}
	if stderr != "" {
		t.Errorf("unparse stderr = %q, want empty", stderr)
	}
}

func TestUnparseCommandHonoursIndentWidthFlag(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{8, "\nvoid f(){\n        return;\n}"},
		{4, "\nvoid f(){\n    return;\n}"},
	}
	decl := "void f() { return; }"
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "f.vc")
		if err := os.WriteFile(path, []byte(decl), 0o644); err != nil {
			t.Fatal(err)
		}
		_, stdout, _ := runVC(t, "unparse", "--indent-width", strconv.Itoa(tt.width), path)
		if stdout != tt.want {
			t.Errorf("width %d: unparse stdout = %q, want %q", tt.width, stdout, tt.want)
		}
	}
}
