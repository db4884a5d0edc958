package queries

import (
	"context"
	"time"

	"parkspot/internal/domain/schedule"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ForDate(ctx context.Context, spotID uuid.UUID, date string) (*DayAvailabilityView, error)
}

// AvailabilitySpanRepo exposes the active booking spans needed for the
// free-slot subtraction.
type AvailabilitySpanRepo interface {
	FindActiveSpans(ctx context.Context, spotID uuid.UUID, date string) ([]BookedSpanView, error)
}

type availabilityQueriesImpl struct {
	spotRepo SpotViewRepo
	spanRepo AvailabilitySpanRepo
}

func NewAvailabilityQueries(spotRepo SpotViewRepo, spanRepo AvailabilitySpanRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{spotRepo: spotRepo, spanRepo: spanRepo}
}

// ForDate computes the bookable slots of a spot on a calendar date by
// subtracting that date's active bookings from the weekday's operating
// windows. Operating hours are echoed back as stored, while computed
// slots are rendered in canonical 12-hour form.
func (q *availabilityQueriesImpl) ForDate(ctx context.Context, spotID uuid.UUID, date string) (*DayAvailabilityView, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errs.ErrInvalidDate
	}
	weekday := day.Weekday().String()

	if _, err := q.spotRepo.FindByID(ctx, spotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSpotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	intervals, err := q.spotRepo.FindOperatingIntervals(ctx, spotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	var dayIntervals []OperatingIntervalView
	var windows []schedule.Window
	for _, iv := range intervals {
		if iv.Day != weekday {
			continue
		}
		dayIntervals = append(dayIntervals, iv)
		windows = append(windows, schedule.Window{StartTime: iv.StartTime, EndTime: iv.EndTime})
	}

	view := &DayAvailabilityView{
		SpotID:         spotID,
		Date:           date,
		Weekday:        weekday,
		OperatingHours: dayIntervals,
		AvailableSlots: []SlotView{},
	}
	if len(windows) == 0 {
		return view, nil
	}

	spans, err := q.spanRepo.FindActiveSpans(ctx, spotID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	booked := make([]schedule.BookedSpan, 0, len(spans))
	for _, s := range spans {
		booked = append(booked, schedule.BookedSpan{StartTime: s.StartTime, EndTime: s.EndTime})
	}

	for _, slot := range schedule.FreeSlots(windows, booked) {
		view.AvailableSlots = append(view.AvailableSlots, SlotView{
			StartTime: schedule.FormatMinutes(slot.Start),
			EndTime:   schedule.FormatMinutes(slot.End),
		})
	}
	return view, nil
}
