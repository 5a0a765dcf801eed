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

// Package cmd implements the vc command-line driver: the scan, parse and
// unparse subcommands, and the plumbing cobra needs to run them.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hpoole/vc/internal/diag"
)

type runFunction func(cmd *Command, args []string) error

// mkRunE adapts a runFunction to cobra's RunE signature, running the
// one-time setup every subcommand needs before its body executes: wiring
// c.Command to the cobra invocation and turning on tracing if -v was
// passed.
func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		if flagVerbose.Bool(c) {
			diag.Enable()
		}
		return f(c, args)
	}
}

// New creates the top-level command.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:   "vc",
		Short: "vc scans, parses and unparses VC source files",

		// We print errors ourselves via Command.Stderr, and never want
		// cobra's own usage dump layered on top of a diagnostic.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: root, root: root}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(newScanCmd(c))
	root.AddCommand(newParseCmd(c))
	root.AddCommand(newUnparseCmd(c))

	root.SetArgs(args)
	return c
}

// Main runs the vc tool and returns the code to pass to os.Exit.
func Main() int {
	c := New(os.Args[1:])
	if err := c.root.Execute(); err != nil {
		if err != ErrPrintedError {
			os.Stderr.WriteString(err.Error() + "\n")
		}
		return 1
	}
	if c.hasErr {
		return 1
	}
	return 0
}
