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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/commands"
	"github.com/ultimaterpa/urpautils/pkg/log"
)

func main() {
	ctx, logger := log.NewContext(context.Background(), os.Stderr, zerolog.InfoLevel)

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		// Failed checks are an expected outcome, not a crash.
		if errors.Is(err, commands.ErrCheckFailed) {
			os.Exit(1)
		}
		logger.Error().Err(err).Msg("command failed")
		os.Exit(2)
	}
}
