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
	"github.com/ultimaterpa/urpautils/pkg/log"
	"github.com/ultimaterpa/urpautils/pkg/timewindow"
)

// NewWindowCmd creates a new window command
func NewWindowCmd(opts *opts.RootOpts) *cobra.Command {
	var start string
	var end string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Check whether the current time is inside the run window",
		Long: `Window reports whether the wall clock is between the start and end
times. A window whose end is before its start wraps past midnight.
Prints "inside" or "outside"; when outside the process exits nonzero so
robot scripts can gate on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "window")

			if start == "" {
				start = opts.Config.Window.Start
			}
			if end == "" {
				end = opts.Config.Window.End
			}

			inside, err := timewindow.Within(ctx, start, end)
			if err != nil {
				return errors.Errorf("checking run window: %w", err)
			}

			if !inside {
				fmt.Fprintln(opts.Out, "outside")
				return ErrCheckFailed
			}
			fmt.Fprintln(opts.Out, "inside")
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "window start, HH:MM:SS (default from config)")
	cmd.Flags().StringVar(&end, "end", "", "window end, HH:MM:SS (default from config)")

	return cmd
}
