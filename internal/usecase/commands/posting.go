package commands

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/domain/posting"
	"parkspot/internal/domain/schedule"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type PostingCommands interface {
	CreatePosting(ctx context.Context, req reqdto.CreatePostingRequest, hostID uuid.UUID) (*queries.PostingView, error)
	ReservePosting(ctx context.Context, req reqdto.ReservePostingRequest, postingID uuid.UUID, userID uuid.UUID) (*queries.PostingView, error)
}

type postingUseCaseImpl struct {
	postingRepo    PostingRepository
	spotRepo       SpotRepository
	postingQueries queries.PostingQueries
}

func NewPostingUseCase(
	postingRepo PostingRepository,
	spotRepo SpotRepository,
	postingQueries queries.PostingQueries,
) PostingCommands {
	return &postingUseCaseImpl{
		postingRepo:    postingRepo,
		spotRepo:       spotRepo,
		postingQueries: postingQueries,
	}
}

func (u *postingUseCaseImpl) CreatePosting(
	ctx context.Context,
	req reqdto.CreatePostingRequest,
	hostID uuid.UUID,
) (*queries.PostingView, error) {
	spotSnap, err := u.spotRepo.FindByID(ctx, req.SpotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSpotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if spotSnap.HostID != hostID {
		return nil, errs.ErrNotSpotOwner
	}

	startMin, endMin, err := parseSpan(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	postingEntity, err := posting.NewPosting(req.SpotID, req.Date, startMin, endMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	postingID, err := u.postingRepo.Create(ctx, postingEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.postingQueries.GetByID(ctx, postingID)
}

// ReservePosting consumes a posting with a single guarded update so two
// racing reservers cannot both win. The leftover minutes on either side
// of the requested span are re-inserted as fresh open postings. Those
// inserts are best effort: a failure loses the fragment but never undoes
// the reservation itself.
func (u *postingUseCaseImpl) ReservePosting(
	ctx context.Context,
	req reqdto.ReservePostingRequest,
	postingID uuid.UUID,
	userID uuid.UUID,
) (*queries.PostingView, error) {
	snap, err := u.postingRepo.FindByID(ctx, postingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPostingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.ReservedBy != nil {
		return nil, errs.ErrPostingReserved
	}

	startMin, endMin, err := parseSpan(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	postingEntity := posting.ReconstructPosting(
		snap.ID, snap.SpotID, snap.Date, snap.StartMin, snap.EndMin, snap.ReservedBy, time.Time{},
	)
	if !postingEntity.ContainsSpan(startMin, endMin) {
		return nil, errs.ErrInvalidSpan
	}

	ok, err := u.postingRepo.ConditionalReserve(ctx, postingID, userID, startMin, endMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !ok {
		return nil, errs.ErrPostingReserved
	}

	for _, frag := range postingEntity.Fragments(startMin, endMin) {
		if err := u.postingRepo.InsertFragment(ctx, snap.SpotID, snap.Date, frag[0], frag[1]); err != nil {
			slog.Warn("failed to insert leftover posting fragment",
				"posting_id", postingID,
				"start_min", frag[0],
				"end_min", frag[1],
				"error", err,
			)
		}
	}

	return u.postingQueries.GetByID(ctx, postingID)
}

func parseSpan(startTime, endTime string) (int, int, error) {
	startMin, err := schedule.ParseClock(startTime)
	if err != nil {
		return 0, 0, err
	}
	endMin, err := schedule.ParseClock(endTime)
	if err != nil {
		return 0, 0, err
	}
	return startMin, endMin, nil
}
