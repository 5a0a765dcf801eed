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

// Package parser implements a hand-written recursive-descent parser for
// VC source text, producing an *ast.Program.
package parser

import (
	"github.com/hpoole/vc/ast"
	"github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/internal/diag"
	"github.com/hpoole/vc/scanner"
)

// abort unwinds the recursive-descent call stack back to Parse once the
// first diagnostic has been reported. The parser does not attempt recovery
// or resynchronisation: the grammar has no sync points worth retrying, so
// the only sane response to a syntax error is to stop.
type abort struct{}

// Parse scans and parses src, reporting diagnostics through onErr. It
// returns nil if scanning or parsing failed; onErr is called exactly once,
// for the first error encountered (lexical or syntactic), matching the
// fail-fast error model: no partial AST is ever returned for a malformed
// program.
func Parse(src []byte, onErr errors.Handler) (prog *ast.Program) {
	failed := false
	handle := func(e errors.Error) {
		if !failed {
			failed = true
			if onErr != nil {
				onErr(e)
			}
		}
		panic(abort{})
	}

	p := &parser{
		scan: scanner.Init(src, handle),
		err:  handle,
		run:  diag.NewRun(),
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abort); ok {
				prog = nil
				return
			}
			panic(r)
		}
	}()

	p.next()
	prog = p.parseProgram()
	return prog
}
