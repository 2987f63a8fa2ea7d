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

// Package commands holds the urpautil subcommands.
package commands

import (
	"fmt"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/status"
)

// ErrCheckFailed marks runs where at least one checked value was invalid.
// The process exits nonzero without logging it as a crash.
var ErrCheckFailed = errors.New("check failed")

// report prints results and converts invalid outcomes into ErrCheckFailed
func report(out io.Writer, results ...check.Result) error {
	formatter := status.NewDefaultFormatter()
	for _, result := range results {
		if result.Err != nil {
			return result.Err
		}
		fmt.Fprintln(out, formatter.FormatResult(result))
	}
	for _, result := range results {
		if !result.Valid {
			return ErrCheckFailed
		}
	}
	return nil
}
