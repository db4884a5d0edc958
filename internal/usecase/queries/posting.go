package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

type PostingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PostingView, error)
	ListOpenBySpot(ctx context.Context, spotID uuid.UUID, date string) ([]*PostingView, error)
}

type PostingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PostingView, error)
	FindOpenBySpotAndDate(ctx context.Context, spotID uuid.UUID, date string) ([]*PostingView, error)
}

type postingQueriesImpl struct {
	repo PostingViewRepo
}

func NewPostingQueries(repo PostingViewRepo) PostingQueries {
	return &postingQueriesImpl{repo: repo}
}

func (q *postingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PostingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPostingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *postingQueriesImpl) ListOpenBySpot(ctx context.Context, spotID uuid.UUID, date string) ([]*PostingView, error) {
	views, err := q.repo.FindOpenBySpotAndDate(ctx, spotID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
