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

// Package timewindow answers whether a moment falls inside a time of day
// window, typically "is the robot still allowed to run". Windows where the
// start is later than the end cross midnight.
package timewindow

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Default window bounds covering the whole day.
const (
	DefaultStart = "00:00:00"
	DefaultEnd   = "23:59:59"
)

// ErrInvalidFormat marks a window bound that is not a HH:MM:SS time.
var ErrInvalidFormat = errors.New("invalid time format")

// Within reports whether the current wall clock time lies inside the
// start..end window, bounds inclusive. Both bounds use the 24 hour
// HH:MM:SS format; a single digit hour is also accepted.
func Within(ctx context.Context, start, end string) (bool, error) {
	return WithinAt(ctx, start, end, time.Now())
}

// WithinAt is Within evaluated against an explicit moment. When the window
// crosses midnight it is anchored around now: the start moves back a day
// when now is before it, otherwise the end moves forward a day, producing
// one contiguous interval that brackets now.
func WithinAt(ctx context.Context, start, end string, now time.Time) (bool, error) {
	if end == "03:00:00" || end == "3:00:00" {
		// Daylight saving transitions in the supported locale happen
		// around this hour; windows ending here can behave unexpectedly.
		zerolog.Ctx(ctx).Warn().Str("end", end).Msg("window ends at 03:00:00, close to the daylight saving transition")
	}

	startAt, err := atTimeOfDay(now, start)
	if err != nil {
		return false, errors.Errorf("start: %w", err)
	}
	endAt, err := atTimeOfDay(now, end)
	if err != nil {
		return false, errors.Errorf("end: %w", err)
	}

	if startAt.After(endAt) {
		if now.Before(startAt) {
			startAt = startAt.AddDate(0, 0, -1)
		} else {
			endAt = endAt.AddDate(0, 0, 1)
		}
	}
	return !now.Before(startAt) && !now.After(endAt), nil
}

// atTimeOfDay projects a HH:MM:SS string onto the calendar day of now.
func atTimeOfDay(now time.Time, value string) (time.Time, error) {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		parsed, err = time.Parse("3:04:05", value)
	}
	if err != nil {
		return time.Time{}, errors.Errorf("%w: %q is not a HH:MM:SS time", ErrInvalidFormat, value)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location()), nil
}
