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
	"io"

	"github.com/spf13/cobra"

	vcerrors "github.com/hpoole/vc/errors"
)

// Command wraps a cobra.Command, adding the hasErr bookkeeping that records
// whether a subcommand wrote a diagnostic through Stderr, so that Main
// exits nonzero even if the subcommand itself returned a nil error.
type Command struct {
	*cobra.Command

	root *cobra.Command

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = len(b) > 0
	return c.Command.ErrOrStderr().Write(b)
}

// Stderr returns a writer for diagnostics: writing to it marks the command
// as having failed, which Main turns into a nonzero exit code.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// ErrPrintedError indicates a diagnostic has already been written to
// stderr, so Main should not print the returned error a second time.
var ErrPrintedError = vcerrors.Wrapf(nil, "terminating because of errors")

// reportAndAbort writes err to cmd's stderr in the front end's one-line
// diagnostic form and returns ErrPrintedError, the sentinel RunE functions
// return so cobra stays silent and Main exits nonzero.
func reportAndAbort(cmd *Command, err vcerrors.Error) error {
	vcerrors.Print(cmd.Stderr(), err)
	return ErrPrintedError
}
