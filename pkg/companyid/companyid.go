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

// Package companyid validates Czech company registration numbers (IČO).
// A registration number is up to 8 digits; the canonical form is exactly
// 8 digits, left padded with zeros, where the 8th digit is a mod 11
// checksum over the first seven.
package companyid

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidInput marks caller contract violations: non numeric input,
	// wrong length, bad fill character.
	ErrInvalidInput = errors.New("invalid company id input")

	// ErrChecksum marks a well formed number whose check digit does not
	// match.
	ErrChecksum = errors.New("company id checksum mismatch")
)

// Justify left pads a 4 to 8 digit registration number to exactly 8
// characters with the given fill digit, e.g. Justify("1234", '0') ==
// "00001234". The fill character must be a digit; checksum validation
// always uses zero fill regardless of what Justify was called with.
func Justify(id string, fill byte) (string, error) {
	if fill < '0' || fill > '9' {
		return "", errors.Errorf("%w: fill character must be a single digit, got %q", ErrInvalidInput, string(fill))
	}
	if !isDigits(id) {
		return "", errors.Errorf("%w: id must be numeric", ErrInvalidInput)
	}
	if len(id) < 4 || len(id) > 8 {
		return "", errors.Errorf("%w: id must be 4 to 8 digits, got %d", ErrInvalidInput, len(id))
	}
	return strings.Repeat(string(fill), 8-len(id)) + id, nil
}

// Validate checks the registration number checksum. It returns nil for a
// valid number, an ErrChecksum wrap for a well formed number with a wrong
// check digit, and an ErrInvalidInput wrap for input that is not a digit
// string of at most 8 characters.
func Validate(id string) error {
	if !isDigits(id) {
		return errors.Errorf("%w: id must be numeric", ErrInvalidInput)
	}
	if len(id) > 8 {
		return errors.Errorf("%w: id must be at most 8 digits, got %d", ErrInvalidInput, len(id))
	}
	padded := strings.Repeat("0", 8-len(id)) + id

	sum := 0
	for i := 0; i < 7; i++ {
		sum += int(padded[i]-'0') * (8 - i)
	}

	var expected int
	switch remainder := sum % 11; remainder {
	case 0:
		expected = 1
	case 1:
		expected = 0
	default:
		expected = 11 - remainder
	}

	if int(padded[7]-'0') != expected {
		return errors.Errorf("%w: expected check digit %d", ErrChecksum, expected)
	}
	return nil
}

// Verify reports whether the registration number is valid. Malformed input
// counts as invalid; use Validate to tell the two apart.
func Verify(id string) bool {
	return Validate(id) == nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
