package repository

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookings
			(id, spot_id, driver_id, booking_date, start_time, end_time, total_price, status)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)
		RETURNING id
	`, b.ID(), b.SpotID(), b.DriverID(), b.Date(), b.StartTime(), b.EndTime(),
		b.TotalPrice(), string(b.Status())).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking slot already taken", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	snap := &commands.BookingSnapshot{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, spot_id, driver_id, booking_date::text, status
		FROM bookings
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.SpotID, &snap.DriverID, &snap.Date, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return snap, nil
}

func (r *BookingRepository) FindActiveSpans(ctx context.Context, spotID uuid.UUID, date string) ([]commands.BookedSpanSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE spot_id = $1 AND booking_date = $2::date AND status = ANY($3)
	`, spotID, date, activeStatuses())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked spans", err)
	}
	defer rows.Close()

	var spans []commands.BookedSpanSnapshot
	for rows.Next() {
		var s commands.BookedSpanSnapshot
		if err := rows.Scan(&s.StartTime, &s.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked span", err)
		}
		spans = append(spans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked spans", err)
	}
	return spans, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func activeStatuses() []string {
	statuses := make([]string, 0, len(booking.ActiveStatuses))
	for _, s := range booking.ActiveStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}

// BookingViewRepository serves the read side of the booking aggregate.
type BookingViewRepository struct {
	pool *pgxpool.Pool
}

func NewBookingViewRepository(pool *pgxpool.Pool) *BookingViewRepository {
	return &BookingViewRepository{pool: pool}
}

func (r *BookingViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, spot_id, driver_id, booking_date::text, start_time, end_time,
			total_price, status, created_at
		FROM bookings
		WHERE id = $1
	`, id).Scan(
		&view.ID, &view.SpotID, &view.DriverID, &view.Date,
		&view.StartTime, &view.EndTime, &view.TotalPrice, &view.Status, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingViewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, spot_id, driver_id, booking_date::text, start_time, end_time,
			total_price, status, created_at
		FROM bookings
		WHERE driver_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY booking_date DESC, start_time DESC
	`, userID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view := &queries.BookingView{}
		if err := rows.Scan(
			&view.ID, &view.SpotID, &view.DriverID, &view.Date,
			&view.StartTime, &view.EndTime, &view.TotalPrice, &view.Status, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

// FindActiveSpans feeds the availability subtraction with the raw clock
// strings of that date's slot-holding bookings.
func (r *BookingViewRepository) FindActiveSpans(ctx context.Context, spotID uuid.UUID, date string) ([]queries.BookedSpanView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE spot_id = $1 AND booking_date = $2::date AND status = ANY($3)
	`, spotID, date, activeStatuses())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked spans", err)
	}
	defer rows.Close()

	var spans []queries.BookedSpanView
	for rows.Next() {
		var s queries.BookedSpanView
		if err := rows.Scan(&s.StartTime, &s.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked span", err)
		}
		spans = append(spans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked spans", err)
	}
	return spans, nil
}
