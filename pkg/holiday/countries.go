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

package holiday

import "time"

// czechHolidays lists the Czech public holidays of a year.
func czechHolidays(year int) []date {
	easter := easterSunday(year)
	days := []date{
		{year, time.January, 1},
		easter.addDays(1), // Easter Monday
		{year, time.May, 1},
		{year, time.May, 8},
		{year, time.July, 5},
		{year, time.July, 6},
		{year, time.September, 28},
		{year, time.October, 28},
		{year, time.November, 17},
		{year, time.December, 24},
		{year, time.December, 25},
		{year, time.December, 26},
	}
	// Good Friday became a public holiday in 2016.
	if year >= 2016 {
		days = append(days, easter.addDays(-2))
	}
	return days
}

// slovakHolidays lists the Slovak public holidays of a year.
func slovakHolidays(year int) []date {
	easter := easterSunday(year)
	days := []date{
		{year, time.January, 1},
		{year, time.January, 6},
		easter.addDays(-2), // Good Friday
		easter.addDays(1),  // Easter Monday
		{year, time.May, 1},
		{year, time.May, 8},
		{year, time.July, 5},
		{year, time.August, 29},
		{year, time.September, 15},
		{year, time.November, 1},
		{year, time.November, 17},
		{year, time.December, 24},
		{year, time.December, 25},
		{year, time.December, 26},
	}
	// Constitution Day stopped being a day off in 2024.
	if year <= 2023 {
		days = append(days, date{year, time.September, 1})
	}
	return days
}

// usHolidays lists the US federal holidays of a year, including the
// observed substitutes for holidays falling on a weekend (Saturday is
// observed the Friday before, Sunday the Monday after).
func usHolidays(year int) []date {
	days := []date{
		nthWeekday(year, time.January, time.Monday, 3),    // Martin Luther King Jr. Day
		nthWeekday(year, time.February, time.Monday, 3),   // Washington's Birthday
		lastWeekday(year, time.May, time.Monday),          // Memorial Day
		nthWeekday(year, time.September, time.Monday, 1),  // Labor Day
		nthWeekday(year, time.October, time.Monday, 2),    // Columbus Day
		nthWeekday(year, time.November, time.Thursday, 4), // Thanksgiving
	}
	days = appendObserved(days, date{year, time.January, 1})   // New Year's Day
	days = appendObserved(days, date{year, time.July, 4})      // Independence Day
	days = appendObserved(days, date{year, time.November, 11}) // Veterans Day
	days = appendObserved(days, date{year, time.December, 25}) // Christmas Day
	if year >= 2021 {
		days = appendObserved(days, date{year, time.June, 19}) // Juneteenth
	}
	// New Year's Day of the following year observed on December 31.
	if (date{year + 1, time.January, 1}).weekday() == time.Saturday {
		days = append(days, date{year, time.December, 31})
	}
	return days
}

// appendObserved appends the holiday and, when it falls on a weekend, its
// observed substitute.
func appendObserved(days []date, d date) []date {
	days = append(days, d)
	switch d.weekday() {
	case time.Saturday:
		days = append(days, d.addDays(-1))
	case time.Sunday:
		days = append(days, d.addDays(1))
	}
	return days
}

// nthWeekday returns the nth given weekday of the month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) date {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return dateOf(first.AddDate(0, 0, offset+(n-1)*7))
}

// lastWeekday returns the last given weekday of the month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) date {
	last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return dateOf(last.AddDate(0, 0, -offset))
}
