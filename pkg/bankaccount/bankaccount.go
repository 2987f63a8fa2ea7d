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

// Package bankaccount validates Czech bank account numbers. Both the
// prefix (up to 6 digits) and the account number (up to 10 digits) carry
// their own mod 11 checksum over fixed per position weights.
package bankaccount

import (
	"gitlab.com/tozd/go/errors"
)

// weights is the account number weight table, most significant digit
// first. The prefix uses the last six entries.
var weights = [10]int{6, 3, 7, 9, 10, 5, 8, 4, 2, 1}

// ErrInvalidInput marks input that is not a digit string of the expected
// maximum length.
var ErrInvalidInput = errors.New("invalid account number input")

// Verify reports whether the prefix and account number pair passes both
// mod 11 checksums. Inputs shorter than their weight table are checked
// against the leading weights only, mirroring the historical behavior of
// this check; callers wanting strict lengths should zero pad the inputs
// to 6 and 10 digits first.
func Verify(prefix, account string) (bool, error) {
	prefixValid, err := remainderZero(prefix, weights[4:])
	if err != nil {
		return false, errors.Errorf("prefix: %w", err)
	}
	accountValid, err := remainderZero(account, weights[:])
	if err != nil {
		return false, errors.Errorf("account number: %w", err)
	}
	return prefixValid && accountValid, nil
}

func remainderZero(number string, weights []int) (bool, error) {
	if len(number) > len(weights) {
		return false, errors.Errorf("%w: at most %d digits, got %d", ErrInvalidInput, len(weights), len(number))
	}
	sum := 0
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false, errors.Errorf("%w: must be numeric", ErrInvalidInput)
		}
		sum += int(number[i]-'0') * weights[i]
	}
	return sum%11 == 0, nil
}
