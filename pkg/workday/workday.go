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

// Package workday computes business days: weekdays that are not public
// holidays in a given country.
package workday

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/pkg/holiday"
)

// DefaultCountry is the calendar used when the caller passes an empty
// country code.
const DefaultCountry = "CZ"

// maxLookback bounds the backward walk. A whole year without a single
// business day means the holiday data is broken, not that the answer is
// further back.
const maxLookback = 365

// ErrExhausted marks a walk that found no business day within maxLookback
// days.
var ErrExhausted = errors.New("no previous business day found")

// Previous returns the latest business day strictly before ref, skipping
// Saturdays, Sundays and the public holidays of the given country. An
// empty country means DefaultCountry; a nil lookup means the built in
// holiday.ForCountry. The result is the calendar day at midnight UTC.
func Previous(ctx context.Context, ref time.Time, country string, lookup holiday.Lookup) (time.Time, error) {
	if country == "" {
		country = DefaultCountry
	}
	if lookup == nil {
		lookup = holiday.ForCountry
	}
	cal, err := lookup(country)
	if err != nil {
		return time.Time{}, errors.Errorf("resolving holidays for %q: %w", country, err)
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	for offset := 1; offset <= maxLookback; offset++ {
		candidate := day.AddDate(0, 0, -offset)
		if weekday := candidate.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		if cal.IsHoliday(candidate) {
			continue
		}
		zerolog.Ctx(ctx).Debug().
			Str("reference", day.Format("2006-01-02")).
			Str("previous", candidate.Format("2006-01-02")).
			Str("country", country).
			Msg("previous business day resolved")
		return candidate, nil
	}
	return time.Time{}, errors.Errorf("%w: searched %d days back from %s", ErrExhausted, maxLookback, day.Format("2006-01-02"))
}
