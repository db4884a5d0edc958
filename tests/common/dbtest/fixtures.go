//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestSpot(t *testing.T, db DBLike, hostID uuid.UUID, city string, pricePerHour float64) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO parking_spots (id, host_id, street, city, province, postal_code, country, lat, lng, price_per_hour, is_active)
		VALUES ($1, $2, '100 King St W', $3, 'ON', 'M5X 1A9', 'Canada', 43.6487, -79.3817, $4, true)`,
		spotID, hostID, city, pricePerHour)
	require.NoError(t, err)

	return spotID
}

func CreateOperatingInterval(t *testing.T, db DBLike, spotID uuid.UUID, day, startTime, endTime string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO operating_intervals (id, spot_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), spotID, day, startTime, endTime)
	require.NoError(t, err)
}

func CreateTestPosting(t *testing.T, db DBLike, spotID uuid.UUID, date string, startMin, endMin int) uuid.UUID {
	t.Helper()

	postingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO postings (id, spot_id, posting_date, start_min, end_min)
		VALUES ($1, $2, $3::date, $4, $5)`,
		postingID, spotID, date, startMin, endMin)
	require.NoError(t, err)

	return postingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
