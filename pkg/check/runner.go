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

package check

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// defaultLimit caps concurrent checks in async mode.
const defaultLimit = 8

// 🏃 Runner executes batches of checks
type Runner struct {
	async bool
	limit int
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{async: async, limit: defaultLimit}
}

// 🏃 Run evaluates every check and returns results in input order
func (r *Runner) Run(ctx context.Context, checks []Check) []Result {
	logger := zerolog.Ctx(ctx).With().
		Str("batch_id", uuid.NewString()).
		Int("checks", len(checks)).
		Bool("async", r.async).
		Logger()
	ctx = logger.WithContext(ctx)

	if r.async {
		return r.runAsync(ctx, checks)
	}
	return r.runSync(ctx, checks)
}

// 🔄 runSync evaluates checks one after another
func (r *Runner) runSync(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))
	for i, c := range checks {
		results[i] = Evaluate(ctx, c)
	}
	return results
}

// ⚡ runAsync evaluates checks concurrently with a bounded group
func (r *Runner) runAsync(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			results[i] = Evaluate(ctx, c)
			return nil
		})
	}

	// Workers never return errors, results carry them instead.
	_ = g.Wait()
	return results
}
