//go:build unit

package schedule_test

import (
	"math/rand"
	"testing"

	"parkspot/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) schedule.Window {
	return schedule.Window{StartTime: start, EndTime: end}
}

func span(start, end string) schedule.BookedSpan {
	return schedule.BookedSpan{StartTime: start, EndTime: end}
}

func TestFreeSlots(t *testing.T) {
	cases := []struct {
		name    string
		windows []schedule.Window
		booked  []schedule.BookedSpan
		want    []schedule.Interval
	}{
		{
			name:    "no bookings returns whole window",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			want:    []schedule.Interval{{Start: 540, End: 1020}},
		},
		{
			name:    "single mid-day booking splits the window",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked:  []schedule.BookedSpan{span("12:00pm", "2:00pm")},
			want:    []schedule.Interval{{Start: 540, End: 720}, {Start: 840, End: 1020}},
		},
		{
			name:    "gaps between several bookings",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked: []schedule.BookedSpan{
				span("9:00am", "10:00am"),
				span("11:00am", "12:00pm"),
				span("2:00pm", "5:00pm"),
			},
			want: []schedule.Interval{{Start: 600, End: 660}, {Start: 720, End: 840}},
		},
		{
			name:    "every minute booked yields nothing",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked:  []schedule.BookedSpan{span("9:00am", "5:00pm")},
			want:    nil,
		},
		{
			name:    "booking reaching past both edges clamps to window",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked:  []schedule.BookedSpan{span("8:00am", "10:00am"), span("4:00pm", "6:00pm")},
			want:    []schedule.Interval{{Start: 600, End: 960}},
		},
		{
			name:    "booking entirely outside the window is ignored",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked:  []schedule.BookedSpan{span("6:00am", "7:00am"), span("8:00pm", "9:00pm")},
			want:    []schedule.Interval{{Start: 540, End: 1020}},
		},
		{
			name: "split operating hours processed independently",
			windows: []schedule.Window{
				window("9:00am", "12:00pm"),
				window("2:00pm", "5:00pm"),
			},
			booked: []schedule.BookedSpan{span("10:00am", "3:00pm")},
			want:   []schedule.Interval{{Start: 540, End: 600}, {Start: 900, End: 1020}},
		},
		{
			name:    "overlapping bookings only shrink the output",
			windows: []schedule.Window{window("9:00am", "5:00pm")},
			booked: []schedule.BookedSpan{
				span("10:00am", "1:00pm"),
				span("11:00am", "12:00pm"),
				span("12:30pm", "2:00pm"),
			},
			want: []schedule.Interval{{Start: 540, End: 600}, {Start: 840, End: 1020}},
		},
		{
			name:    "malformed window is skipped without hiding others",
			windows: []schedule.Window{window("late", "later"), window("9:00am", "10:00am")},
			want:    []schedule.Interval{{Start: 540, End: 600}},
		},
		{
			name:    "malformed booking is skipped without hiding free time",
			windows: []schedule.Window{window("9:00am", "11:00am")},
			booked:  []schedule.BookedSpan{span("whenever", "10:00am"), span("9:00am", "whenever")},
			want:    []schedule.Interval{{Start: 540, End: 660}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.FreeSlots(tc.windows, tc.booked)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("free slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The sweep sorts demand internally, so shuffled and even mutually
// overlapping bookings must always produce the same disjoint, ordered
// slot list.
func TestFreeSlotsOrderInsensitive(t *testing.T) {
	windows := []schedule.Window{window("9:00am", "5:00pm")}
	booked := []schedule.BookedSpan{
		span("10:00am", "11:00am"),
		span("10:30am", "11:30am"),
		span("1:00pm", "2:00pm"),
		span("3:00pm", "4:00pm"),
	}

	want := schedule.FreeSlots(windows, booked)

	rng := rand.New(rand.NewSource(11))
	for range 20 {
		shuffled := make([]schedule.BookedSpan, len(booked))
		copy(shuffled, booked)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := schedule.FreeSlots(windows, shuffled)
		require.Equal(t, want, got)

		for i, iv := range got {
			assert.Less(t, iv.Start, iv.End)
			if i > 0 {
				assert.LessOrEqual(t, got[i-1].End, iv.Start, "slots must stay disjoint and ordered")
			}
		}
	}
}
