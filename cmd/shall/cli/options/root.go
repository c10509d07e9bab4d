// Copyright 2025 The Shall Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package options defines the command-line options and flags for the shall
// CLI: global diagnostics options and the hash invocation flags.
package options

import (
	"github.com/spf13/cobra"

	"github.com/nytalvi/shall/pkg/logging"
)

// EnvPrefix is the prefix used for environment variables that configure the CLI.
const EnvPrefix = "SHALL"

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

// RootOptions defines global flags available on the root command.
type RootOptions struct {
	// Verbose enables advisory progress notices on stderr. It never
	// changes the digest rows themselves.
	Verbose bool
	// LogFormat sets the diagnostic output format (text, json).
	LogFormat string
}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds the global flags to the cobra command.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&o.Verbose, "verbose", false,
		"enable verbose output")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the diagnostic output format (text, json)")
}

// NewLogger creates a logger based on the root options. Verbose maps to
// debug level; diagnostics go to stderr so they never mix with the report.
func (o *RootOptions) NewLogger() logging.Logger {
	level := logging.LevelInfo
	if o.Verbose {
		level = logging.LevelDebug
	}
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  level,
		Format: logging.ParseLogFormat(o.LogFormat),
	})
}
