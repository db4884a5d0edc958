package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

// SpotFilters narrows the public spot listing. Nil fields are ignored.
type SpotFilters struct {
	City     *string
	MaxPrice *float64
}

type SpotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	List(ctx context.Context, filters SpotFilters) ([]*SpotView, error)
	OperatingHours(ctx context.Context, spotID uuid.UUID) ([]OperatingIntervalView, error)
}

type SpotViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	FindActive(ctx context.Context, filters SpotFilters) ([]*SpotView, error)
	FindOperatingIntervals(ctx context.Context, spotID uuid.UUID) ([]OperatingIntervalView, error)
}

type spotQueriesImpl struct {
	repo SpotViewRepo
}

func NewSpotQueries(repo SpotViewRepo) SpotQueries {
	return &spotQueriesImpl{repo: repo}
}

func (q *spotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSpotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *spotQueriesImpl) List(ctx context.Context, filters SpotFilters) ([]*SpotView, error) {
	views, err := q.repo.FindActive(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *spotQueriesImpl) OperatingHours(ctx context.Context, spotID uuid.UUID) ([]OperatingIntervalView, error) {
	if _, err := q.GetByID(ctx, spotID); err != nil {
		return nil, err
	}
	intervals, err := q.repo.FindOperatingIntervals(ctx, spotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return intervals, nil
}
