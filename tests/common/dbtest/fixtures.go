//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// satisfied by both *pgxpool.Pool and pgx.Tx
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inserts a booking row directly, bypassing the availability check
func InsertBooking(t *testing.T, db DBLike, start, end, guestDetails string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, start_date, end_date, guest_details, created_at, updated_at)
		 VALUES ($1, $2::date, $3::date, $4, $5, $5)`,
		id, start, end, guestDetails, now)
	require.NoError(t, err)
	return id
}

func InsertBlock(t *testing.T, db DBLike, start, end, reason string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO blocks (id, start_date, end_date, reason, created_at)
		 VALUES ($1, $2::date, $3::date, $4, $5)`,
		id, start, end, reason, time.Now().UTC())
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// empties every table between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, blocks RESTART IDENTITY CASCADE")
	return err
}
