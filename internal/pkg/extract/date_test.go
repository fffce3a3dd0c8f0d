package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	layouts := []string{
		"2006-01-02",
		"02/01/2006",
		"02-01-2006",
		"02.01.2006",
		"2006/01/02",
		"January 2, 2006",
		"2 January 2006",
		"2 Jan 2006",
		"Jan 2, 2006",
	}
	dates := []time.Time{
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 12, 0, 0, 0, 0, time.UTC),
	}

	for _, layout := range layouts {
		for _, d := range dates {
			raw := d.Format(layout)
			t.Run(raw, func(t *testing.T) {
				got, ok := ParseDate(raw)
				require.True(t, ok)
				assert.True(t, d.Equal(got), "got %s", got)
			})
		}
	}
}

func TestParseDateVariants(t *testing.T) {
	want := time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-06-25T14:30:00Z",
		"2024-06-25T14:30:00+02:00",
		"2024-06-25 14:30:00",
		"2024-06-25T14:30:00.123456",
		"06/25/2024",
		"June 25th, 2024",
		"25 juin 2024",
		"25 de junio de 2024",
		"1719273600",
	} {
		got, ok := ParseDate(raw)
		require.True(t, ok, raw)
		assert.True(t, want.Equal(got), "%s -> %s", raw, got)
	}
}

func TestParseDateSingleDigitDayFirst(t *testing.T) {
	cases := map[string]time.Time{
		"5/6/2024":       time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		"5-6-2024":       time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		"5.6.2024":       time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		"30/1/2023":      time.Date(2023, time.January, 30, 0, 0, 0, 0, time.UTC),
		"1/12/2024":      time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		"5/6/2024 10:30": time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		"6/25/2024":      time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC),
	}

	for raw, want := range cases {
		got, ok := ParseDate(raw)
		require.True(t, ok, raw)
		assert.True(t, want.Equal(got), "%s -> %s", raw, got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{"", "n/a", "soon", "32/13/2024", "TBD"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, raw)
	}
}

func TestDateFromText(t *testing.T) {
	got, ok := DateFromText("Bids must be submitted by 15 March 2024 at 10:00 local time.")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = DateFromText("Closing date: 2024-07-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = DateFromText("no dates here at all")
	assert.False(t, ok)
}
