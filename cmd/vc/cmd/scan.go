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
	"os"

	"github.com/spf13/cobra"

	vcerrors "github.com/hpoole/vc/errors"
	"github.com/hpoole/vc/scanner"
	"github.com/hpoole/vc/token"
)

func newScanCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan INPUT",
		Short: "print each token's debug form, one per line, halting on EOF or ERROR",
		Args:  cobra.ExactArgs(1),
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			return runScan(cmd, args[0])
		}),
	}
	return cmd
}

func runScan(cmd *Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return reportAndAbort(cmd, vcerrors.Wrapf(err, "cannot read %s", path))
	}

	var fatal vcerrors.Error
	s := scanner.Init(src, func(e vcerrors.Error) { fatal = e })

	out := cmd.OutOrStdout()
	for {
		tok := s.Next()
		fmt.Fprintln(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			break
		}
	}
	if fatal != nil {
		return reportAndAbort(cmd, fatal)
	}
	return nil
}
