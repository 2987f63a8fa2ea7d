// Copyright 2026 UltimateRPA Tools
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

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/opts"
	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/log"
)

// NewAccountCmd creates a new account command
func NewAccountCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account [PREFIX/]NUMBER",
		Short: "Verify a domestic bank account number",
		Long: `Account checks the mod 11 weights of a Czech bank account number.
The prefix part is optional and may be given either as a separate
argument or joined with a slash, e.g. 19-2000145399 style numbers are
written as 000019/2235210247.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "account")

			var prefix, number string
			switch {
			case len(args) == 2:
				prefix, number = args[0], args[1]
			case strings.Contains(args[0], "/"):
				prefix, number, _ = strings.Cut(args[0], "/")
			default:
				number = args[0]
			}

			return report(opts.Out, check.Evaluate(ctx, check.Check{Kind: check.KindBankAccount, Value: number, Aux: prefix}))
		},
	}

	return cmd
}
