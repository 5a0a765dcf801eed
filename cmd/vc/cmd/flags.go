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

	"github.com/spf13/pflag"
)

// flagName names a persistent or per-command flag. Flag names are global
// constants so a command can reference one without risking a typo against
// the string literal registered on its FlagSet.
type flagName string

const (
	flagVerbose     flagName = "verbose"
	flagIndentWidth flagName = "indent-width"
)

// addGlobalFlags registers the flags every subcommand inherits.
func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false,
		"trace scanning and parsing decisions to stderr")
	f.Int(string(flagIndentWidth), 8,
		"override the indentation width of the parse and unparse output (scanner column accounting always uses a tab width of 8)")
}

// ensureAdded detects a command referencing a flag it never registered —
// flag names are global constants, so this is an easy mistake to make
// silently.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}
