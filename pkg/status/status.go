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
	"github.com/ultimaterpa/urpautils/pkg/check"
)

// 📊 Outcome classifies a single check result for display
type Outcome int

const (
	OutcomeValid Outcome = iota
	OutcomeInvalid
	OutcomeError
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 🔍 Classify maps a check result to its display outcome
func Classify(result check.Result) Outcome {
	switch {
	case result.Err != nil:
		return OutcomeError
	case result.Valid:
		return OutcomeValid
	default:
		return OutcomeInvalid
	}
}

// 📈 Summary tallies a batch of check results
type Summary struct {
	Total   int
	Valid   int
	Invalid int
	Errors  int
}

// 🧮 Summarize counts the outcomes of a batch
func Summarize(results []check.Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch Classify(result) {
		case OutcomeValid:
			summary.Valid++
		case OutcomeInvalid:
			summary.Invalid++
		case OutcomeError:
			summary.Errors++
		}
	}
	return summary
}
