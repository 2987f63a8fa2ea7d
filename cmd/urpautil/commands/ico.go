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
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/opts"
	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/companyid"
	"github.com/ultimaterpa/urpautils/pkg/log"
)

// NewIcoCmd creates a new ico command
func NewIcoCmd(opts *opts.RootOpts) *cobra.Command {
	var justify bool
	var fill string

	cmd := &cobra.Command{
		Use:   "ico ID",
		Short: "Verify a Czech company identification number (IČO)",
		Long: `Ico checks the weighted checksum of a company identification number.
Numbers shorter than eight digits are padded with zeros before the check.
With --justify it prints the eight digit form padded with the --fill digit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "ico")

			if justify {
				if len(fill) != 1 {
					return errors.Errorf("fill must be a single digit, got %q", fill)
				}
				justified, err := companyid.Justify(args[0], fill[0])
				if err != nil {
					return errors.Errorf("justifying company id: %w", err)
				}
				fmt.Fprintln(opts.Out, justified)
			}

			return report(opts.Out, check.Evaluate(ctx, check.Check{Kind: check.KindCompanyID, Value: args[0]}))
		},
	}

	cmd.Flags().BoolVar(&justify, "justify", false, "print the id padded to eight digits")
	cmd.Flags().StringVar(&fill, "fill", "0", "digit used for padding with --justify")

	return cmd
}
