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

package options

import (
	"github.com/spf13/cobra"

	"github.com/nytalvi/shall/pkg/config"
)

// FlagAdder is implemented by any flag group that can register itself on a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// HashOptions defines the flags selecting what to hash and with which
// algorithms.
type HashOptions struct {
	// SHA1, SHA256, SHA512, MD5 select individual algorithms. With none
	// set, every algorithm runs (except in directory mode).
	SHA1   bool
	SHA256 bool
	SHA512 bool
	MD5    bool

	// FilePath selects file mode (--file).
	FilePath string
	// DirectoryPath selects directory mode (--directory).
	DirectoryPath string
	// UseStdin selects stdin mode (--stdin).
	UseStdin bool
}

var _ FlagAdder = (*HashOptions)(nil)

// AddFlags adds the hash invocation flags to the cobra command.
func (o *HashOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.SHA1, "sha1", false, "Calculate SHA1 hash.")
	cmd.Flags().BoolVar(&o.SHA256, "sha256", false, "Calculate SHA256 hash.")
	cmd.Flags().BoolVar(&o.SHA512, "sha512", false, "Calculate SHA512 hash.")
	cmd.Flags().BoolVar(&o.MD5, "md5", false, "Calculate MD5 hash.")

	cmd.Flags().StringVar(&o.FilePath, "file", "", "Input file to hash.")
	_ = cmd.MarkFlagFilename("file")
	cmd.Flags().StringVar(&o.DirectoryPath, "directory", "", "Hash every file in a directory (non-recursive). Requires exactly one hash type.")
	_ = cmd.MarkFlagDirname("directory")
	cmd.Flags().BoolVar(&o.UseStdin, "stdin", false, "Read input from stdin.")

	cmd.MarkFlagsMutuallyExclusive("file", "directory", "stdin")
}

// AlgorithmFlags converts the boolean algorithm flags into the config set.
func (o *HashOptions) AlgorithmFlags() config.AlgorithmFlags {
	return config.AlgorithmFlags{
		SHA1:   o.SHA1,
		SHA256: o.SHA256,
		SHA512: o.SHA512,
		MD5:    o.MD5,
	}
}

// ToRunConfig builds the immutable run configuration from the resolved
// flags and positional arguments.
//
// Input selection is mutually exclusive with the precedence directory >
// file > stdin > literal; cobra enforces that at most one of the flag-based
// modes is present. A missing input (no flag-based mode and no positional
// string) is a validation failure.
func (o *HashOptions) ToRunConfig(args []string, verbose bool) (config.RunConfig, error) {
	var source config.InputSource
	switch {
	case o.DirectoryPath != "":
		source = config.DirectorySource(o.DirectoryPath)
	case o.FilePath != "":
		source = config.FileSource(o.FilePath)
	case o.UseStdin:
		source = config.StdinSource()
	case len(args) == 1:
		source = config.LiteralSource(args[0])
	default:
		return config.RunConfig{}, config.NewValidationError(
			"a string to hash is required unless --file, --stdin or --directory is given")
	}

	return config.NewRunConfig(source, o.AlgorithmFlags(), verbose), nil
}
