package commands

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/schedule"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, driverID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	spotRepo       SpotRepository
	bookingQueries queries.BookingQueries
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		spotRepo:       spotRepo,
		bookingQueries: bookingQueries,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	driverID uuid.UUID,
) (*queries.BookingView, error) {
	spotSnap, err := u.validateAndGetSpot(ctx, req.SpotID)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := booking.NewBooking(
		req.SpotID, driverID, req.Date, req.StartTime, req.EndTime, spotSnap.PricePerHour,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.checkOperatingWindows(ctx, bookingEntity); err != nil {
		return nil, err
	}
	if err := u.checkConflicts(ctx, bookingEntity); err != nil {
		return nil, err
	}

	bookingID, err := u.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the persisted view
	return u.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error {
	snap, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if snap.DriverID != userID {
		return errs.ErrNotBookingOwner
	}
	if snap.Status == string(booking.StatusCancelled) {
		return booking.ErrAlreadyCancelled
	}

	if err := u.bookingRepo.UpdateStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) validateAndGetSpot(ctx context.Context, spotID uuid.UUID) (*SpotSnapshot, error) {
	snap, err := u.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSpotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return nil, errs.ErrSpotInactive
	}
	return snap, nil
}

// checkOperatingWindows requires the whole requested span to sit inside a
// single operating window of the booking's weekday. A span bridging two
// touching windows is rejected rather than stitched together.
func (u *bookingUseCaseImpl) checkOperatingWindows(ctx context.Context, b *booking.Booking) error {
	windows, err := u.spotRepo.FindOperatingWindows(ctx, b.SpotID(), b.Weekday())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(windows) == 0 {
		return errs.ErrNotAvailableOnDay
	}

	for _, w := range windows {
		wStart, err := schedule.ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		wEnd, err := schedule.ParseClock(w.EndTime)
		if err != nil {
			continue
		}
		if wStart <= b.StartMin() && b.EndMin() <= wEnd {
			return nil
		}
	}
	return errs.ErrOutsideOperatingHours
}

func (u *bookingUseCaseImpl) checkConflicts(ctx context.Context, b *booking.Booking) error {
	spans, err := u.bookingRepo.FindActiveSpans(ctx, b.SpotID(), b.Date())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, s := range spans {
		sStart, err := schedule.ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		sEnd, err := schedule.ParseClock(s.EndTime)
		if err != nil {
			continue
		}
		if b.Overlaps(sStart, sEnd) {
			return errs.ErrSlotConflict
		}
	}
	return nil
}
