package repository

import (
	"context"
	"log/slog"

	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpotRepository struct {
	pool *pgxpool.Pool
}

func NewSpotRepository(pool *pgxpool.Pool) *SpotRepository {
	return &SpotRepository{pool: pool}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO parking_spots
			(id, host_id, street, city, province, postal_code, country, lat, lng, price_per_hour, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, s.ID(), s.HostID(), s.Street(), s.City(), s.Province(), s.PostalCode(), s.Country(),
		s.Lat(), s.Lng(), s.PricePerHour(), s.IsActive()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create parking spot", err)
	}
	return id, nil
}

func (r *SpotRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.SpotSnapshot, error) {
	snap := &commands.SpotSnapshot{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, host_id, price_per_hour, is_active
		FROM parking_spots
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.HostID, &snap.PricePerHour, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking spot", err)
	}
	return snap, nil
}

func (r *SpotRepository) FindOperatingWindows(ctx context.Context, spotID uuid.UUID, day string) ([]commands.OperatingWindowSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day, start_time, end_time
		FROM operating_intervals
		WHERE spot_id = $1 AND day = $2
		ORDER BY start_time
	`, spotID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find operating windows", err)
	}
	defer rows.Close()

	var windows []commands.OperatingWindowSnapshot
	for rows.Next() {
		var w commands.OperatingWindowSnapshot
		if err := rows.Scan(&w.Day, &w.StartTime, &w.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan operating window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate operating windows", err)
	}
	return windows, nil
}

// ReplaceOperatingIntervals swaps the whole weekly schedule in one
// transaction so readers never observe a half-written schedule.
func (r *SpotRepository) ReplaceOperatingIntervals(ctx context.Context, spotID uuid.UUID, intervals []spot.OperatingInterval) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !pgconv.IsTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM operating_intervals WHERE spot_id = $1`, spotID); err != nil {
		return infra.WrapRepoErr("failed to clear operating intervals", err)
	}
	for _, iv := range intervals {
		_, err := tx.Exec(ctx, `
			INSERT INTO operating_intervals (id, spot_id, day, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New(), spotID, iv.Day, iv.StartTime, iv.EndTime)
		if err != nil {
			return infra.WrapRepoErr("failed to insert operating interval", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit operating intervals", err)
	}
	return nil
}

func (r *SpotRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE parking_spots SET is_active = $2 WHERE id = $1
	`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking spot state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

// SpotViewRepository serves the read side of the spot aggregate.
type SpotViewRepository struct {
	pool *pgxpool.Pool
}

func NewSpotViewRepository(pool *pgxpool.Pool) *SpotViewRepository {
	return &SpotViewRepository{pool: pool}
}

func (r *SpotViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	view := &queries.SpotView{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, host_id, street, city, province, postal_code, country,
			lat, lng, price_per_hour, is_active, created_at
		FROM parking_spots
		WHERE id = $1
	`, id).Scan(
		&view.ID, &view.HostID, &view.Street, &view.City, &view.Province,
		&view.PostalCode, &view.Country, &view.Lat, &view.Lng,
		&view.PricePerHour, &view.IsActive, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking spot", err)
	}
	return view, nil
}

func (r *SpotViewRepository) FindActive(ctx context.Context, filters queries.SpotFilters) ([]*queries.SpotView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, host_id, street, city, province, postal_code, country,
			lat, lng, price_per_hour, is_active, created_at
		FROM parking_spots
		WHERE is_active = TRUE
			AND ($1::text IS NULL OR city = $1)
			AND ($2::numeric IS NULL OR price_per_hour <= $2)
		ORDER BY created_at DESC
	`, filters.City, filters.MaxPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking spots", err)
	}
	defer rows.Close()

	var views []*queries.SpotView
	for rows.Next() {
		view := &queries.SpotView{}
		if err := rows.Scan(
			&view.ID, &view.HostID, &view.Street, &view.City, &view.Province,
			&view.PostalCode, &view.Country, &view.Lat, &view.Lng,
			&view.PricePerHour, &view.IsActive, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan parking spot", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate parking spots", err)
	}
	return views, nil
}

func (r *SpotViewRepository) FindOperatingIntervals(ctx context.Context, spotID uuid.UUID) ([]queries.OperatingIntervalView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day, start_time, end_time
		FROM operating_intervals
		WHERE spot_id = $1
		ORDER BY day, start_time
	`, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find operating intervals", err)
	}
	defer rows.Close()

	var intervals []queries.OperatingIntervalView
	for rows.Next() {
		var iv queries.OperatingIntervalView
		if err := rows.Scan(&iv.Day, &iv.StartTime, &iv.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan operating interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate operating intervals", err)
	}
	return intervals, nil
}
