package birthnumber

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthDate(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   time.Time
	}{
		{
			name:   "ten_digit_number",
			number: "9205200832",
			want:   time.Date(1992, time.May, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "nine_digit_number_shifted_back_a_century",
			number: "901111111",
			want:   time.Date(1890, time.November, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "female_month_offset",
			number: "9255200831",
			want:   time.Date(1992, time.May, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "overflow_month_offset_after_2003",
			number: "0472109990",
			want:   time.Date(2004, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "two_digit_year_below_54_means_2000s",
			number: "0401010008",
			want:   time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BirthDate(tt.number)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestBirthDate_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{"too_short", "123"},
		{"too_long", "123456789123"},
		{"not_numeric", "abc"},
		{"twelve_digits", "501111111111"},
		{"letters_of_right_length", "abcabcabc"},
		{"month_thirteen", "9213200833"},
		{"day_overflow", "9202300834"},
		{"nine_digits_after_1953", "561111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BirthDate(tt.number)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid_numbers", func(t *testing.T) {
		for _, number := range []string{"7906047424", "790604/7424", "6354142234", "635414/2234"} {
			assert.True(t, Verify(ctx, number), "number %q should verify", number)
		}
	})

	t.Run("invalid_numbers", func(t *testing.T) {
		for _, number := range []string{
			"7806047424",  // checksum mismatch
			"abc",         // not a number
			"63541425234", // too long
			"645414/2234", // checksum mismatch after stripping the separator
			"63541/42234", // separator too early
			"635414/2/234",
			"abcabcabc",
		} {
			assert.False(t, Verify(ctx, number), "number %q should not verify", number)
		}
	})

	t.Run("nine_digit_numbers_have_no_checksum", func(t *testing.T) {
		// Any parseable 9 digit number verifies; the last digit is part of
		// the serial, not a check digit.
		assert.True(t, Verify(ctx, "901111111"))
	})
}

// TestVerify_ChecksumCoversWholeNumber pins the checksum rule: the expected
// check digit is the first nine digits mod 11, reduced mod 10 for birth
// dates before 1985.
func TestVerify_ChecksumCoversWholeNumber(t *testing.T) {
	ctx := context.Background()

	base := "790604742"
	valid := byte('0' + byte(digitsToInt(base)%11))
	for digit := byte('0'); digit <= '9'; digit++ {
		number := base + string(digit)
		if digit == valid {
			assert.True(t, Verify(ctx, number), "number %q should verify", number)
		} else {
			assert.False(t, Verify(ctx, number), "number %q should not verify", number)
		}
	}
}

func TestVerify_LegacyChecksumBefore1985(t *testing.T) {
	ctx := context.Background()

	// 550101100 mod 11 == 10; before 1985 the remainder 10 was written as
	// check digit 0.
	base := "550101100"
	require.Equal(t, 10, digitsToInt(base)%11)
	assert.True(t, Verify(ctx, base+"0"))
	assert.False(t, Verify(ctx, base+"1"))

	// After 1984 the remainder is not reduced, so a number whose first nine
	// digits leave remainder 10 has no valid check digit at all.
	post := "860101109"
	require.Equal(t, 10, digitsToInt(post)%11)
	for digit := byte('0'); digit <= '9'; digit++ {
		assert.False(t, Verify(ctx, post+string(digit)))
	}
}
