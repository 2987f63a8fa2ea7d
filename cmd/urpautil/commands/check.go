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
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/opts"
	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/log"
	"github.com/ultimaterpa/urpautils/pkg/status"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a batch of checks read from stdin",
		Long: `Check reads one check per line from stdin in the form

	KIND VALUE [AUX]

where KIND is rc, ico or account and AUX is the account prefix. Blank
lines and lines starting with # are skipped. Results are printed in
input order; the exit code is nonzero when any value is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), "check")

			checks, err := readChecks(cmd.InOrStdin())
			if err != nil {
				return err
			}

			results := opts.Runner.Run(ctx, checks)

			reporter := status.NewReporter(ctx, opts.Out)
			if err := reporter.Report(results); err != nil {
				return errors.Errorf("reporting results: %w", err)
			}
			if summary {
				if err := status.RenderSummary(opts.Out, status.Summarize(results)); err != nil {
					return errors.Errorf("rendering summary: %w", err)
				}
			}

			for _, result := range results {
				if result.Err != nil {
					return result.Err
				}
			}
			for _, result := range results {
				if !result.Valid {
					return ErrCheckFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "render the tally as a table")

	return cmd
}

// readChecks parses the stdin batch format
func readChecks(r io.Reader) ([]check.Check, error) {
	var checks []check.Check

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: expected KIND VALUE [AUX], got %q", line, text)
		}

		c := check.Check{Kind: check.Kind(fields[0]), Value: fields[1]}
		if len(fields) == 3 {
			// The aux column is the prefix, the value the account proper.
			c.Aux = fields[1]
			c.Value = fields[2]
		}
		checks = append(checks, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading checks: %w", err)
	}

	return checks, nil
}
