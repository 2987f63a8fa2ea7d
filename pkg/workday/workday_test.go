package workday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultimaterpa/urpautils/pkg/holiday"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPrevious(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     time.Time
		country string
		want    time.Time
	}{
		{"plain_weekday", day(2021, time.September, 2), "CZ", day(2021, time.September, 1)},
		{"empty_country_defaults_to_cz", day(2021, time.September, 1), "", day(2021, time.August, 31)},
		{"monday_skips_weekend", day(2021, time.August, 30), "CZ", day(2021, time.August, 27)},
		{"czech_statehood_day", day(2021, time.September, 29), "CZ", day(2021, time.September, 27)},
		{"christmas_and_weekend", day(2021, time.December, 27), "CZ", day(2021, time.December, 23)},
		{"new_year_across_years", day(2021, time.January, 4), "CZ", day(2020, time.December, 31)},
		{"us_plain_weekday", day(2021, time.September, 2), "US", day(2021, time.September, 1)},
		{"us_independence_day", day(2018, time.July, 5), "US", day(2018, time.July, 3)},
		{"slovak_constitution_day", day(2021, time.September, 2), "SK", day(2021, time.August, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Previous(ctx, tt.ref, tt.country, nil)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s",
				got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		})
	}
}

func TestPrevious_UnknownCountry(t *testing.T) {
	_, err := Previous(context.Background(), day(2021, time.September, 2), "XX", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, holiday.ErrUnknownCountry)
}

func TestPrevious_CustomLookup(t *testing.T) {
	ctx := context.Background()

	// Treat September 1st as a company shutdown day on top of the Czech
	// calendar.
	lookup := func(country string) (holiday.Calendar, error) {
		cal, err := holiday.ForCountry(country)
		if err != nil {
			return nil, err
		}
		return holiday.WithExtra(cal, day(2021, time.September, 1)), nil
	}

	got, err := Previous(ctx, day(2021, time.September, 2), "CZ", lookup)
	require.NoError(t, err)
	assert.True(t, got.Equal(day(2021, time.August, 31)))
}

// everyDayHoliday forces the exhaustion path.
type everyDayHoliday struct{}

func (everyDayHoliday) IsHoliday(time.Time) bool { return true }
func (everyDayHoliday) Holidays(int) []time.Time { return nil }
func (everyDayHoliday) Country() string          { return "XX" }

func TestPrevious_Exhausted(t *testing.T) {
	lookup := func(string) (holiday.Calendar, error) { return everyDayHoliday{}, nil }

	_, err := Previous(context.Background(), day(2021, time.September, 2), "XX", lookup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPrevious_IgnoresClockFields(t *testing.T) {
	ref := time.Date(2021, time.September, 2, 17, 45, 12, 0, time.FixedZone("CET", 3600))
	got, err := Previous(context.Background(), ref, "CZ", nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(day(2021, time.September, 1)))
}
