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

// Package diag provides opt-in structured tracing for the scanner and
// parser, grounded on the original Rust implementation's pervasive use of
// the log crate's debug!/error! macros in its scanner and parser
// handlers. It writes only to stderr and only when enabled, so it never
// interferes with the scan/parse/unparse subcommands' stdout output.
package diag

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is the package-level tracer. It is disabled (level = PanicLevel,
// effectively silent) until Enable is called.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Enable turns on debug-level tracing, used by the CLI's -v/--verbose flag.
func Enable() {
	Logger.SetLevel(logrus.DebugLevel)
}

// Run identifies one CLI invocation (one scan/parse/unparse call) so that
// trace lines from a single run are attributable if output is ever
// interleaved, e.g. by a future batch-processing mode.
type Run struct {
	id  uuid.UUID
	log *logrus.Entry
}

// NewRun starts a traced run tagged with a fresh identifier.
func NewRun() *Run {
	id := uuid.New()
	return &Run{id: id, log: Logger.WithField("run", id.String())}
}

// Debugf traces a low-level scanning/parsing decision.
func (r *Run) Debugf(format string, args ...interface{}) {
	r.log.Debugf(format, args...)
}
