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

// Package birthnumber parses and validates Czech personal identification
// numbers (rodné číslo). A birth number encodes the birth date in its first
// six digits; ten digit numbers additionally carry a mod 11 check digit.
package birthnumber

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidFormat marks input that does not decode to a birth date at all,
// as opposed to a well formed number failing its checksum.
var ErrInvalidFormat = errors.New("invalid birth number format")

// Check digits issued before 1985 could be 0 where the mod 11 remainder
// was 10.
var legacyChecksumCutoff = time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC)

// BirthDate returns the birth date encoded in a 9 or 10 digit birth number.
// The separator form "xxxxxx/xxxx" is not accepted here; Verify strips the
// separator before delegating to this function. Errors wrap
// ErrInvalidFormat.
func BirthDate(number string) (time.Time, error) {
	if len(number) != 9 && len(number) != 10 {
		return time.Time{}, errors.Errorf("%w: length must be 9 or 10, got %d", ErrInvalidFormat, len(number))
	}
	if !isDigits(number) {
		return time.Time{}, errors.Errorf("%w: number must be numeric", ErrInvalidFormat)
	}

	year := 1900 + digitsToInt(number[0:2])
	// Females have 50 added to the month value, another 20 is added when
	// the daily serial overflows (possible since 2004).
	month := digitsToInt(number[2:4]) % 50 % 20
	day := digitsToInt(number[4:6])

	if len(number) == 9 {
		if year >= 1980 {
			year -= 100
		}
		// Nine digit numbers stopped being issued on January 1st 1954.
		if year > 1953 {
			return time.Time{}, errors.Errorf("%w: no 9 digit birth numbers after 1953", ErrInvalidFormat)
		}
	} else if year < 1954 {
		year += 100
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, errors.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidFormat, year, month, day)
	}
	return date, nil
}

// Verify reports whether the birth number is valid. Both the plain form
// "xxxxxxxxxx" and the separator form "xxxxxx/xxxx" are accepted. Nine digit
// numbers carry no check digit, so a successful birth date parse alone
// decides; ten digit numbers must also match their mod 11 checksum.
// Diagnostics for rejected numbers go to the context logger at debug level.
func Verify(ctx context.Context, number string) bool {
	if strings.Contains(number, "/") {
		// The separator is only valid once, with exactly four digits after it.
		if strings.Count(number, "/") != 1 || len(number)-strings.Index(number, "/") != 5 {
			return false
		}
		number = strings.Replace(number, "/", "", 1)
	}
	if len(number) != 9 && len(number) != 10 {
		return false
	}

	birthDate, err := BirthDate(number)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("number", number).Err(err).Msg("birth number rejected: no valid birth date")
		return false
	}

	if len(number) == 10 {
		check := digitsToInt(number[:9]) % 11
		if birthDate.Before(legacyChecksumCutoff) {
			check %= 10
		}
		if int(number[9]-'0') != check {
			zerolog.Ctx(ctx).Debug().Str("number", number).Int("expected", check).Msg("birth number rejected: checksum mismatch")
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// digitsToInt converts an already validated digit string.
func digitsToInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
