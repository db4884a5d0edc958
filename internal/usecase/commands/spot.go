package commands

import (
	"context"

	"parkspot/internal/domain/spot"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotCommands interface {
	CreateSpot(ctx context.Context, req reqdto.CreateSpotRequest, hostID uuid.UUID) (*queries.SpotView, error)
	SetOperatingHours(ctx context.Context, spotID uuid.UUID, hostID uuid.UUID, req reqdto.SetOperatingHoursRequest) error
	Deactivate(ctx context.Context, spotID uuid.UUID, hostID uuid.UUID) error
}

type spotUseCaseImpl struct {
	spotRepo    SpotRepository
	spotQueries queries.SpotQueries
}

func NewSpotUseCase(spotRepo SpotRepository, spotQueries queries.SpotQueries) SpotCommands {
	return &spotUseCaseImpl{
		spotRepo:    spotRepo,
		spotQueries: spotQueries,
	}
}

func (u *spotUseCaseImpl) CreateSpot(
	ctx context.Context,
	req reqdto.CreateSpotRequest,
	hostID uuid.UUID,
) (*queries.SpotView, error) {
	spotEntity, err := spot.NewSpot(
		hostID,
		req.Street, req.City, req.Province, req.PostalCode, req.Country,
		req.Lat, req.Lng, req.PricePerHour,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	spotID, err := u.spotRepo.Create(ctx, spotEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.spotQueries.GetByID(ctx, spotID)
}

// SetOperatingHours replaces the spot's weekly schedule wholesale.
// Bookings already made against the old schedule are left untouched.
func (u *spotUseCaseImpl) SetOperatingHours(
	ctx context.Context,
	spotID uuid.UUID,
	hostID uuid.UUID,
	req reqdto.SetOperatingHoursRequest,
) error {
	if err := u.requireOwnedSpot(ctx, spotID, hostID); err != nil {
		return err
	}

	intervals := make([]spot.OperatingInterval, 0, len(req.Intervals))
	for _, iv := range req.Intervals {
		interval, err := spot.NewOperatingInterval(iv.Day, iv.StartTime, iv.EndTime)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		intervals = append(intervals, interval)
	}

	if err := u.spotRepo.ReplaceOperatingIntervals(ctx, spotID, intervals); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *spotUseCaseImpl) Deactivate(ctx context.Context, spotID uuid.UUID, hostID uuid.UUID) error {
	if err := u.requireOwnedSpot(ctx, spotID, hostID); err != nil {
		return err
	}
	if err := u.spotRepo.SetActive(ctx, spotID, false); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *spotUseCaseImpl) requireOwnedSpot(ctx context.Context, spotID, hostID uuid.UUID) error {
	snap, err := u.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSpotNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.HostID != hostID {
		return errs.ErrNotSpotOwner
	}
	return nil
}
