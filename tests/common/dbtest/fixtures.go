//go:build integration || e2e

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

// inserts the rate cards the tests book against
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rate_cards (space_type, active, hourly, daily, weekly, monthly, min_capacity, max_capacity, per_person)
		VALUES
		    ('meeting-room', TRUE, 20.00, 120.00, 100.00, 80.00, 1, 12, FALSE),
		    ('hot-desk',     TRUE,  5.00,  25.00,  20.00, 15.00, 1,  1, TRUE),
		    ('studio',       FALSE, 40.00, 250.00, NULL,  NULL,  1,  6, FALSE)
		ON CONFLICT (space_type) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rate_card_tiers (space_type, min_people, max_people, hourly_rate, daily_rate, extra_person_hourly, extra_person_daily)
		VALUES
		    ('meeting-room', 1, 4, 20.00, 120.00, NULL, NULL),
		    ('meeting-room', 5, 8, 35.00, 200.00, 4.00, 20.00)
		ON CONFLICT (space_type, min_people) DO NOTHING;
	`)
	return err
}

// ReservationRow is the minimal column set for a seeded reservation.
type ReservationRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SpaceType      string
	StartDate      string
	EndDate        string
	StartTime      *string
	EndTime        *string
	Status         string
	DepositAuthID  *string
	DepositStatus  string
	IsAdminBooking bool
	Version        int
	CreatedAt      time.Time
}

func InsertReservation(t *testing.T, db DBLike, r ReservationRow) uuid.UUID {
	t.Helper()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.SpaceType == "" {
		r.SpaceType = "meeting-room"
	}
	if r.Status == "" {
		r.Status = "pending"
	}
	if r.DepositStatus == "" {
		r.DepositStatus = "none"
	}
	if r.Version == 0 {
		r.Version = 1
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	depositAmount := "0"
	if r.DepositAuthID != nil {
		depositAmount = "50.00"
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (
		    id, user_id, space_type, start_date, end_date, start_time, end_time,
		    number_of_people, status, reservation_type, total_price,
		    deposit_authorization_id, deposit_amount, deposit_status,
		    is_admin_booking, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5::date, $6::time, $7::time,
		    2, $8, 'hourly', 40.00, $9, $10::numeric, $11, $12, $13, $14, $14)`,
		r.ID, r.UserID, r.SpaceType, r.StartDate, r.EndDate, r.StartTime, r.EndTime,
		r.Status, r.DepositAuthID, depositAmount, r.DepositStatus, r.IsAdminBooking, r.Version, r.CreatedAt)
	require.NoError(t, err)

	return r.ID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
