//go:build unit

package postgres

import (
	"io"
	"log/slog"
	"testing"

	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
		mark error
	}{
		{name: "no rows", err: pgx.ErrNoRows, kind: infra.KindNotFound, mark: errs.ErrNotFound},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, kind: infra.KindConflict, mark: errs.ErrConflict},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, kind: infra.KindDuplicateKey},
		{name: "anything else", err: errs.New("connection reset"), kind: infra.KindDBFailure, mark: errs.ErrDatabaseOperationFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapErr(logger, "op", tc.err)
			assert.True(t, infra.IsKind(err, tc.kind), "expected kind [%v] but got (%v)", tc.kind, err)
			if tc.mark != nil {
				assert.True(t, errs.Is(err, tc.mark))
			}
		})
	}
}
