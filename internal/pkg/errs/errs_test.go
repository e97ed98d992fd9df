//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"booking-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches its kind", func(t *testing.T) {
		errBookingMissing := errs.New("booking not found")
		marked := errs.Mark(errBookingMissing, errs.ErrNotFound)

		assert.True(t, errs.Is(marked, errs.ErrNotFound))
		assert.True(t, errs.Is(marked, errBookingMissing))
		assert.False(t, errs.Is(marked, errs.ErrConflict))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	})

	t.Run("wrapped marked error keeps its kind", func(t *testing.T) {
		marked := errs.Mark(errors.New("overlap"), errs.ErrConflict)
		wrapped := errs.Wrap(marked, "create booking")

		assert.True(t, errs.Is(wrapped, errs.ErrConflict))
		assert.Contains(t, wrapped.Error(), "create booking")
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "nothing to wrap"))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}
