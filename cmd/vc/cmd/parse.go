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
	"os"

	"github.com/spf13/cobra"

	"github.com/hpoole/vc/ast"
	vcerrors "github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/parser"
)

func newParseCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse INPUT",
		Short: "parse the file and print the AST as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			return runParse(cmd, args[0])
		}),
	}
	return cmd
}

// parseFile reads and parses path, reporting a diagnostic and returning
// (nil, err) on any I/O, lexical or syntactic failure. Shared by the
// parse and unparse subcommands.
func parseFile(cmd *Command, path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, reportAndAbort(cmd, vcerrors.Wrapf(err, "cannot read %s", path))
	}

	var fatal vcerrors.Error
	prog := parser.Parse(src, func(e vcerrors.Error) { fatal = e })
	if fatal != nil {
		return nil, reportAndAbort(cmd, fatal)
	}
	return prog, nil
}

func runParse(cmd *Command, path string) error {
	prog, err := parseFile(cmd, path)
	if err != nil {
		return err
	}
	ast.Print(cmd.OutOrStdout(), prog, flagIndentWidth.Int(cmd))
	return nil
}
