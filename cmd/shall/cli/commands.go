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

// Package cli builds the shall command tree.
package cli

import (
	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/nytalvi/shall/cmd/shall/cli/options"
	"github.com/nytalvi/shall/pkg/engine"
	"github.com/nytalvi/shall/pkg/report"
)

// New constructs the root command.
func New() *cobra.Command {
	var (
		ro = &options.RootOptions{}
		ho = &options.HashOptions{}
	)

	cmd := &cobra.Command{
		Use:   "shall [flags] [STRING]",
		Short: "Calculate various hashes of a string or file.",
		Long: `Calculate various hashes of a string or file.

    With no algorithm flag, every supported hash (SHA1, SHA256, SHA512, MD5)
    is calculated and printed as one row per algorithm. Any combination of
    --sha1, --sha256, --sha512 and --md5 restricts the output to those
    algorithms.

    The input is a positional string by default. Alternatively, --file hashes
    the contents of a file, --stdin hashes everything read from standard
    input, and --directory hashes every file directly inside a directory
    (non-recursive). Directory mode requires exactly one hash type.`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := ho.ToRunConfig(args, ro.Verbose)
			if err != nil {
				return err
			}

			eng := engine.New(report.New(), ro.NewLogger())
			return eng.Run(cfg)
		},
	}

	ro.AddFlags(cmd)
	ho.AddFlags(cmd)

	// Add sub-commands.
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
