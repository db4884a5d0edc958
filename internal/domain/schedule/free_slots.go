package schedule

import (
	"log/slog"
	"sort"
)

// Window is one recurring operating-hours row as stored: clock strings,
// already scoped to a single weekday.
type Window struct {
	StartTime string
	EndTime   string
}

// BookedSpan is the demand side: one non-cancelled booking's clock
// strings for the date under computation.
type BookedSpan struct {
	StartTime string
	EndTime   string
}

// FreeSlots subtracts booked spans from each operating window and
// returns the remaining free intervals in minutes, concatenated in
// window order. Windows and spans with unparsable times are skipped
// individually so one malformed row cannot hide the rest of the day's
// free time; every skip is logged.
//
// Each window is swept once with a forward-only cursor over the spans in
// start order, so overlapping or duplicated spans can only shrink the
// output, never reorder it. A span reaching past a window edge is
// clamped to the window.
func FreeSlots(windows []Window, booked []BookedSpan) []Interval {
	type parsedSpan struct {
		BookedSpan
		start int
	}

	spans := make([]parsedSpan, 0, len(booked))
	for _, b := range booked {
		start, err := ParseClock(b.StartTime)
		if err != nil {
			slog.Warn("skipping booking with invalid start time",
				"start_time", b.StartTime, "error", err)
			continue
		}
		spans = append(spans, parsedSpan{BookedSpan: b, start: start})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var free []Interval
	for _, w := range windows {
		baseStart, err := ParseClock(w.StartTime)
		if err != nil {
			slog.Warn("skipping operating window with invalid start time",
				"start_time", w.StartTime, "error", err)
			continue
		}
		baseEnd, err := ParseClock(w.EndTime)
		if err != nil {
			slog.Warn("skipping operating window with invalid end time",
				"end_time", w.EndTime, "error", err)
			continue
		}

		cursor := baseStart
		for _, sp := range spans {
			bookEnd, err := ParseClock(sp.EndTime)
			if err != nil {
				slog.Warn("skipping booking with invalid end time",
					"end_time", sp.EndTime, "error", err)
				continue
			}

			// No intersection with the remaining part of this window.
			if bookEnd <= cursor || sp.start >= baseEnd {
				continue
			}

			effectiveStart := max(cursor, baseStart)
			effectiveBookStart := max(sp.start, baseStart)
			if effectiveStart < effectiveBookStart {
				free = append(free, Interval{effectiveStart, effectiveBookStart})
			}

			cursor = max(cursor, bookEnd)
			if cursor >= baseEnd {
				break
			}
		}

		if cursor < baseEnd {
			free = append(free, Interval{cursor, baseEnd})
		}
	}
	return free
}
