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

// Package holiday provides public holiday calendars for the countries the
// robots run in. Holidays are computed from rules, not from fixtures, so
// any year works. Calendars are immutable and safe for concurrent use.
package holiday

import (
	"sort"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// ErrUnknownCountry marks a country code with no built in calendar.
var ErrUnknownCountry = errors.New("unknown country code")

// Calendar answers holiday membership for one country.
type Calendar interface {
	// IsHoliday reports whether the calendar day of t is a public holiday.
	IsHoliday(t time.Time) bool
	// Holidays lists all holidays of the given year, sorted, at midnight UTC.
	Holidays(year int) []time.Time
	// Country returns the ISO 3166-1 alpha-2 code of the calendar.
	Country() string
}

// Lookup resolves a country code to its holiday calendar. Previous-workday
// computation takes a Lookup so tests and callers with external holiday
// data can substitute their own.
type Lookup func(country string) (Calendar, error)

// ForCountry returns the built in calendar for the given country code
// (case insensitive). Supported codes: CZ, SK, US.
func ForCountry(code string) (Calendar, error) {
	switch strings.ToUpper(code) {
	case "CZ":
		return &ruleCalendar{country: "CZ", rules: czechHolidays}, nil
	case "SK":
		return &ruleCalendar{country: "SK", rules: slovakHolidays}, nil
	case "US":
		return &ruleCalendar{country: "US", rules: usHolidays}, nil
	default:
		return nil, errors.Errorf("%w: %q", ErrUnknownCountry, code)
	}
}

// date is an internal comparable key so holiday membership never depends
// on the clock fields or location of the input time.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) addDays(n int) date {
	return dateOf(d.time().AddDate(0, 0, n))
}

func (d date) weekday() time.Weekday {
	return d.time().Weekday()
}

// ruleCalendar computes the holiday set of a year on demand. The sets are
// tiny, so there is no caching; recomputing keeps the type trivially
// reentrant.
type ruleCalendar struct {
	country string
	rules   func(year int) []date
}

func (c *ruleCalendar) IsHoliday(t time.Time) bool {
	day := dateOf(t)
	for _, h := range c.rules(day.year) {
		if h == day {
			return true
		}
	}
	return false
}

func (c *ruleCalendar) Holidays(year int) []time.Time {
	days := c.rules(year)
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, d.time())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (c *ruleCalendar) Country() string {
	return c.country
}

// WithExtra overlays additional fixed holiday dates, e.g. company wide
// shutdown days from configuration, on top of a base calendar.
func WithExtra(base Calendar, extra ...time.Time) Calendar {
	days := make(map[date]struct{}, len(extra))
	for _, t := range extra {
		days[dateOf(t)] = struct{}{}
	}
	return &overlayCalendar{base: base, extra: days}
}

type overlayCalendar struct {
	base  Calendar
	extra map[date]struct{}
}

func (c *overlayCalendar) IsHoliday(t time.Time) bool {
	if _, ok := c.extra[dateOf(t)]; ok {
		return true
	}
	return c.base.IsHoliday(t)
}

func (c *overlayCalendar) Holidays(year int) []time.Time {
	out := c.base.Holidays(year)
	for d := range c.extra {
		if d.year != year {
			continue
		}
		if !c.base.IsHoliday(d.time()) {
			out = append(out, d.time())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (c *overlayCalendar) Country() string {
	return c.base.Country()
}
