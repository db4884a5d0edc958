package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingView, error)

	// GetByIDSystem skips the ownership check for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.DriverID != actor {
		return nil, errs.ErrNotBookingOwner
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingView, error) {
	views, err := q.repo.FindByUserID(ctx, userID, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
