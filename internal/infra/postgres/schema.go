package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The exclusion constraint backs up the advisory lock: even a writer that
// bypasses the unit of work cannot store overlapping bookings.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS bookings (
	seq BIGSERIAL NOT NULL UNIQUE,
	id UUID PRIMARY KEY,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	guest_details TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT bookings_dates_ordered CHECK (start_date <= end_date),
	CONSTRAINT bookings_no_overlap EXCLUDE USING gist (daterange(start_date, end_date, '[]') WITH &&)
);

CREATE TABLE IF NOT EXISTS blocks (
	seq BIGSERIAL NOT NULL UNIQUE,
	id UUID PRIMARY KEY,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	reason TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT blocks_dates_ordered CHECK (start_date <= end_date)
);

CREATE INDEX IF NOT EXISTS idx_bookings_guest_details ON bookings(guest_details);
CREATE INDEX IF NOT EXISTS idx_blocks_dates ON blocks USING gist (daterange(start_date, end_date, '[]'));
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
