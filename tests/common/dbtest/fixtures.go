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

	"booking-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Clinic holds the ids of a seeded clinic: one client, one active service and
// the practitioners and rooms eligible for it.
type Clinic struct {
	ClientID      uuid.UUID
	ServiceID     uuid.UUID
	LocationID    uuid.UUID
	Practitioners []uuid.UUID
	Rooms         []uuid.UUID
}

// SeedClinic inserts two practitioners working Monday..Friday 09:00-17:00 and
// two rooms, all eligible for a 60 minute service priced 80.00.
func SeedClinic(t *testing.T, db DBLike) Clinic {
	t.Helper()

	c := Clinic{
		ClientID:   CreateTestClient(t, db, "Alex Morgan"),
		ServiceID:  CreateTestService(t, db, "Consultation", "80.00", 60, true),
		LocationID: uuid.New(),
	}
	for i, name := range []string{"Dr. Jamie Lee", "Dr. Sam Rivera"} {
		id := CreateTestResource(t, db, "practitioner", name, i+1)
		for day := time.Monday; day <= time.Friday; day++ {
			SetWeeklyHours(t, db, id, day, 9*60, 17*60)
		}
		c.Practitioners = append(c.Practitioners, id)
	}
	for i, name := range []string{"Treatment Room 1", "Treatment Room 2"} {
		c.Rooms = append(c.Rooms, CreateTestResource(t, db, "room", name, i+1))
	}
	MakeEligible(t, db, c.ServiceID, append(append([]uuid.UUID{}, c.Practitioners...), c.Rooms...)...)
	return c
}

func CreateTestClient(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO clients (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestService(t *testing.T, db DBLike, name, price string, minutes int, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, name, price, duration_minutes, is_active) VALUES ($1, $2, $3::numeric, $4, $5)",
		id, name, price, minutes, active)
	require.NoError(t, err)
	return id
}

func CreateTestResource(t *testing.T, db DBLike, kind, name string, order int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, kind, name, display_order) VALUES ($1, $2, $3, $4)",
		id, kind, name, order)
	require.NoError(t, err)
	return id
}

func SetWeeklyHours(t *testing.T, db DBLike, resourceID uuid.UUID, day time.Weekday, startMinute, endMinute int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO resource_weekly_hours (resource_id, day_of_week, start_minute, end_minute, is_available)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (resource_id, day_of_week) DO UPDATE
		SET start_minute = EXCLUDED.start_minute, end_minute = EXCLUDED.end_minute, is_available = true`,
		resourceID, int16(day), startMinute, endMinute)
	require.NoError(t, err)
}

// CloseOn marks the resource unavailable for the whole of date (YYYY-MM-DD).
func CloseOn(t *testing.T, db DBLike, resourceID uuid.UUID, date string) {
	t.Helper()

	onDate, err := pgconv.DateFromKey(date)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO resource_date_overrides (resource_id, on_date, is_available) VALUES ($1, $2, false)",
		resourceID, onDate)
	require.NoError(t, err)
}

func MakeEligible(t *testing.T, db DBLike, serviceID uuid.UUID, resourceIDs ...uuid.UUID) {
	t.Helper()

	for _, rid := range resourceIDs {
		_, err := db.Exec(context.Background(),
			"INSERT INTO service_resources (service_id, resource_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			serviceID, rid)
		require.NoError(t, err)
	}
}

func CountBookings(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE status = $1 AND deleted_at IS NULL", status).Scan(&n)
	require.NoError(t, err)
	return n
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
