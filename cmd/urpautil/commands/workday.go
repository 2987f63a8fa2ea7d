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
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/opts"
	"github.com/ultimaterpa/urpautils/pkg/log"
	"github.com/ultimaterpa/urpautils/pkg/workday"
)

// NewWorkdayCmd creates a new workday command
func NewWorkdayCmd(opts *opts.RootOpts) *cobra.Command {
	var date string
	var country string

	cmd := &cobra.Command{
		Use:   "workday",
		Short: "Print the previous business day",
		Long: `Workday walks back from the reference date, skipping weekends and the
public holidays of the configured country, and prints the first business
day it finds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "workday")

			ref := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return errors.Errorf("parsing reference date: %w", err)
				}
				ref = parsed
			}

			if country == "" {
				country = opts.Config.Country
			}

			previous, err := workday.Previous(ctx, ref, country, opts.Lookup)
			if err != nil {
				return errors.Errorf("finding previous business day: %w", err)
			}

			fmt.Fprintln(opts.Out, previous.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&country, "country", "", "holiday country code (default from config)")

	return cmd
}
