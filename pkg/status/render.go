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

package status

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/pkg/check"
)

// 📢 Reporter prints check results for a human and mirrors them to the
// context logger for debugging
type Reporter struct {
	out       io.Writer
	formatter Formatter
	log       zerolog.Logger
}

// 🎯 NewReporter creates a new reporter writing to out
func NewReporter(ctx context.Context, out io.Writer) *Reporter {
	return &Reporter{
		out:       out,
		formatter: NewDefaultFormatter(),
		log:       *zerolog.Ctx(ctx),
	}
}

// 📝 Report prints one line per result followed by the tally
func (r *Reporter) Report(results []check.Result) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(r.out, r.formatter.FormatResult(result)); err != nil {
			return errors.Errorf("writing result line: %w", err)
		}
		event := r.log.Debug().
			Str("kind", string(result.Check.Kind)).
			Str("value", result.Check.Value).
			Str("outcome", Classify(result).String())
		if result.Err != nil {
			event = event.Err(result.Err)
		}
		event.Msg("check reported")
	}
	if _, err := fmt.Fprintln(r.out, r.formatter.FormatSummary(Summarize(results))); err != nil {
		return errors.Errorf("writing summary line: %w", err)
	}
	return nil
}

// 📊 RenderSummary renders the tally as a table
func RenderSummary(out io.Writer, summary Summary) error {
	data := pterm.TableData{
		{"Total", "Valid", "Invalid", "Errors"},
		{
			strconv.Itoa(summary.Total),
			strconv.Itoa(summary.Valid),
			strconv.Itoa(summary.Invalid),
			strconv.Itoa(summary.Errors),
		},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render(); err != nil {
		return errors.Errorf("rendering summary table: %w", err)
	}
	return nil
}
