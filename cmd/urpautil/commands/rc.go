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
	"github.com/ultimaterpa/urpautils/pkg/birthnumber"
	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/log"
)

// NewRcCmd creates a new rc command
func NewRcCmd(opts *opts.RootOpts) *cobra.Command {
	var birthDate bool

	cmd := &cobra.Command{
		Use:   "rc NUMBER",
		Short: "Verify a Czech birth number (rodné číslo)",
		Long: `Rc checks the format, embedded birth date and checksum of a Czech
birth number. The number may contain a slash before the last four digits.
With --birth-date it also prints the date of birth encoded in the number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "rc")

			if birthDate {
				date, err := birthnumber.BirthDate(args[0])
				if err != nil {
					return errors.Errorf("reading birth date: %w", err)
				}
				fmt.Fprintln(opts.Out, date.Format("2006-01-02"))
			}

			return report(opts.Out, check.Evaluate(ctx, check.Check{Kind: check.KindBirthNumber, Value: args[0]}))
		},
	}

	cmd.Flags().BoolVar(&birthDate, "birth-date", false, "print the encoded date of birth")

	return cmd
}
