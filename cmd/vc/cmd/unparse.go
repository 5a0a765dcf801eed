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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hpoole/vc/ast"
)

func newUnparseCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unparse INPUT",
		Short: "parse the file and print its unparsed textual form",
		Args:  cobra.ExactArgs(1),
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			return runUnparse(cmd, args[0])
		}),
	}
	return cmd
}

func runUnparse(cmd *Command, path string) error {
	prog, err := parseFile(cmd, path)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), ast.UnparseIndent(prog, flagIndentWidth.Int(cmd)))
	return nil
}
