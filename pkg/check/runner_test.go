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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var batchChecks = []Check{
	{Kind: KindBirthNumber, Value: "7906047424"},
	{Kind: KindBirthNumber, Value: "645414/2234"},
	{Kind: KindCompanyID, Value: "00885045"},
	{Kind: KindCompanyID, Value: "123456789"},
	{Kind: KindBankAccount, Value: "0700103393", Aux: "006007"},
	{Kind: Kind("vat"), Value: "CZ00885045"},
}

func assertBatchResults(t *testing.T, results []Result) {
	t.Helper()

	require.Len(t, results, len(batchChecks), "every check should produce a result")
	for i, result := range results {
		assert.Equal(t, batchChecks[i], result.Check, "results should keep input order")
	}

	assert.True(t, results[0].Valid, "valid birth number should pass")
	assert.False(t, results[1].Valid, "invalid birth number should fail")
	assert.True(t, results[2].Valid, "valid company id should pass")
	assert.False(t, results[3].Valid, "nine digit company id should fail")
	assert.True(t, results[4].Valid, "valid bank account should pass")
	assert.ErrorIs(t, results[5].Err, ErrUnknownKind, "unknown kind should surface in the result")
}

func TestRunner_Sync(t *testing.T) {
	runner := NewRunner(false)
	results := runner.Run(context.Background(), batchChecks)
	assertBatchResults(t, results)
}

func TestRunner_Async(t *testing.T) {
	runner := NewRunner(true)
	results := runner.Run(context.Background(), batchChecks)
	assertBatchResults(t, results)
}

func TestRunner_EmptyBatch(t *testing.T) {
	runner := NewRunner(true)
	results := runner.Run(context.Background(), nil)
	assert.Empty(t, results, "empty batch should produce no results")
}
