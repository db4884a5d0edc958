//go:build unit

package schedule_test

import (
	"testing"

	"parkspot/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"9:00am", 540},
		{"09:00", 540},
		{"9:00 AM", 540},
		{"5:00 PM", 1020},
		{"5:00pm", 1020},
		{"17:00", 1020},
		{"12:00am", 0},
		{"12:30 AM", 30},
		{"12:00pm", 720},
		{"12:01 PM", 721},
		{"00:00", 0},
		{"23:59", 1439},
		{"1:05pm", 785},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := schedule.ParseClock(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseClockRejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"9am",
		"25:00",
		"24:00",
		"13:00pm",
		"0:30am",
		"9:60",
		"9:5pm",
		"noonish",
		"9:00xm",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := schedule.ParseClock(in)
			require.ErrorIs(t, err, schedule.ErrInvalidTimeFormat)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{540, "9:00 AM"},
		{900, "3:00 PM"},
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{720, "12:00 PM"},
		{1020, "5:00 PM"},
		{1439, "11:59 PM"},
		{785, "1:05 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, schedule.FormatMinutes(tc.in))
	}
}

// 12h and 24h inputs normalize to the same canonical display form.
func TestClockRoundTrip(t *testing.T) {
	for _, in := range []string{"9:00am", "09:00", "5:00 PM", "17:00"} {
		mins, err := schedule.ParseClock(in)
		require.NoError(t, err)

		again, err := schedule.ParseClock(schedule.FormatMinutes(mins))
		require.NoError(t, err)
		assert.Equal(t, mins, again, "display form must parse back to %d", mins)
	}
}
