package repository

import (
	"context"

	"parkspot/internal/domain/posting"
	"parkspot/internal/domain/schedule"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostingRepository struct {
	pool *pgxpool.Pool
}

func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

func (r *PostingRepository) Create(ctx context.Context, p *posting.Posting) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO postings (id, spot_id, posting_date, start_min, end_min)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING id
	`, p.ID(), p.SpotID(), p.Date(), p.StartMin(), p.EndMin()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create posting", err)
	}
	return id, nil
}

func (r *PostingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.PostingSnapshot, error) {
	snap := &commands.PostingSnapshot{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, spot_id, posting_date::text, start_min, end_min, reserved_by
		FROM postings
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.SpotID, &snap.Date, &snap.StartMin, &snap.EndMin, &snap.ReservedBy)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find posting", err)
	}
	return snap, nil
}

// ConditionalReserve is the compare-and-set at the heart of reservation:
// the WHERE clause only matches an unreserved row, so of two racing
// reservers exactly one sees RowsAffected() == 1.
func (r *PostingRepository) ConditionalReserve(ctx context.Context, id uuid.UUID, userID uuid.UUID, startMin, endMin int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE postings
		SET reserved_by = $2, start_min = $3, end_min = $4
		WHERE id = $1 AND reserved_by IS NULL
	`, id, userID, startMin, endMin)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve posting", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostingRepository) InsertFragment(ctx context.Context, spotID uuid.UUID, date string, startMin, endMin int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO postings (id, spot_id, posting_date, start_min, end_min)
		VALUES ($1, $2, $3::date, $4, $5)
	`, uuid.New(), spotID, date, startMin, endMin)
	if err != nil {
		return infra.WrapRepoErr("failed to insert posting fragment", err)
	}
	return nil
}

// PostingViewRepository serves the read side of the posting aggregate.
type PostingViewRepository struct {
	pool *pgxpool.Pool
}

func NewPostingViewRepository(pool *pgxpool.Pool) *PostingViewRepository {
	return &PostingViewRepository{pool: pool}
}

func (r *PostingViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.PostingView, error) {
	var startMin, endMin int
	view := &queries.PostingView{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, spot_id, posting_date::text, start_min, end_min, reserved_by, created_at
		FROM postings
		WHERE id = $1
	`, id).Scan(&view.ID, &view.SpotID, &view.Date, &startMin, &endMin, &view.ReservedBy, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find posting", err)
	}
	view.StartTime = schedule.FormatMinutes(startMin)
	view.EndTime = schedule.FormatMinutes(endMin)
	return view, nil
}

func (r *PostingViewRepository) FindOpenBySpotAndDate(ctx context.Context, spotID uuid.UUID, date string) ([]*queries.PostingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, spot_id, posting_date::text, start_min, end_min, reserved_by, created_at
		FROM postings
		WHERE spot_id = $1 AND posting_date = $2::date AND reserved_by IS NULL
		ORDER BY start_min
	`, spotID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list postings", err)
	}
	defer rows.Close()

	var views []*queries.PostingView
	for rows.Next() {
		var startMin, endMin int
		view := &queries.PostingView{}
		if err := rows.Scan(&view.ID, &view.SpotID, &view.Date, &startMin, &endMin, &view.ReservedBy, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan posting", err)
		}
		view.StartTime = schedule.FormatMinutes(startMin)
		view.EndTime = schedule.FormatMinutes(endMin)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate postings", err)
	}
	return views, nil
}
