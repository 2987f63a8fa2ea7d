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
	"fmt"

	"github.com/fatih/color"

	"github.com/ultimaterpa/urpautils/pkg/check"
)

// 🎨 Display configuration
const (
	kindWidth  = 8  // width for the check kind
	valueWidth = 20 // width for the checked value
)

// Formatter defines how check results should be formatted
type Formatter interface {
	// FormatResult formats a single check result line
	FormatResult(result check.Result) string

	// FormatSummary formats the closing tally line
	FormatSummary(summary Summary) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatResult formats a single check result line with a colored prefix
func (f *DefaultFormatter) FormatResult(result check.Result) string {
	var prefix string
	switch Classify(result) {
	case OutcomeValid:
		prefix = color.GreenString("✓")
	case OutcomeInvalid:
		prefix = color.RedString("✗")
	default:
		prefix = color.YellowString("!")
	}

	value := result.Check.Value
	if result.Check.Aux != "" {
		value = result.Check.Aux + "/" + value
	}

	line := fmt.Sprintf("%s %-*s %-*s %s",
		prefix,
		kindWidth, result.Check.Kind,
		valueWidth, value,
		Classify(result),
	)
	if result.Err != nil {
		line += " (" + result.Err.Error() + ")"
	}
	return line
}

// FormatSummary formats the closing tally line
func (f *DefaultFormatter) FormatSummary(summary Summary) string {
	return fmt.Sprintf("%d checked: %s, %s, %s",
		summary.Total,
		color.GreenString("%d valid", summary.Valid),
		color.RedString("%d invalid", summary.Invalid),
		color.YellowString("%d errors", summary.Errors),
	)
}
