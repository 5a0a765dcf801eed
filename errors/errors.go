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

// Package errors defines the diagnostic error type shared by the scanner,
// parser and CLI. The front end has exactly one error shape — a message
// tied to a source position — rather than a typed exception hierarchy;
// I/O, lexical, and syntactic failures differ only in the message text
// and whether the position is valid.
package errors

import (
	"fmt"
	"io"

	"github.com/hpoole/vc/token"
)

// Error is a diagnostic produced by the front end. It is deliberately
// small next to cue/errors.Error, which this is modelled on: no
// InputPositions or Path, since VC has neither a value graph nor
// multiple contributing expressions per error, just one position and one
// message.
type Error interface {
	error
	Position() token.Position
	Msg() (format string, args []interface{})
}

// posError is the sole concrete implementation of Error. It keeps the
// format string and its arguments apart rather than pre-rendering a
// message, so Msg can hand them back unformatted the way cue/errors'
// own Message type does.
type posError struct {
	pos    token.Position
	format string
	args   []interface{}
}

// Error implements the error interface.
func (e *posError) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.pos, msg)
	}
	return msg
}

// Position returns the location the diagnostic refers to, or the zero
// Position (token.NoPos) for errors with no meaningful location, such as
// a missing input file.
func (e *posError) Position() token.Position {
	return e.pos
}

// Msg returns the unformatted message and its arguments, for callers
// that want to inspect or re-render a diagnostic without re-parsing
// Error()'s combined string.
func (e *posError) Msg() (format string, args []interface{}) {
	return e.format, e.args
}

// Newf creates an Error at pos with a formatted message.
func Newf(pos token.Position, format string, args ...interface{}) Error {
	return &posError{pos: pos, format: format, args: args}
}

// Wrapf creates a position-less Error (I/O failures, missing files) that
// wraps an underlying cause.
func Wrapf(cause error, format string, args ...interface{}) Error {
	if cause != nil {
		format = format + ": %v"
		args = append(args, cause)
	}
	return &posError{pos: token.NoPos, format: format, args: args}
}

// Handler is called for every diagnostic the scanner or parser produces.
// It never returns a value: a Handler that wants to abort does so itself
// (parser.Parse wraps the caller's handler in one that unwinds the parse
// after the first diagnostic, matching the front end's fail-fast,
// no-recovery error model; the CLI's handlers only record the diagnostic
// and print it once scanning or parsing has stopped).
type Handler func(err Error)

// Print writes err to w in the one-line form used across the scan/parse/
// unparse subcommands.
func Print(w io.Writer, err Error) {
	fmt.Fprintln(w, err.Error())
}
