//go:build unit

package block_test

import (
	"strings"
	"testing"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/pkg/errs"
	"booking-manager/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBlockBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "2024-02-01/2024-02-03", actual.Dates().String())
		assert.Equal(t, "Roof repair", actual.Reason())
	})

	cases := []struct {
		name   string
		reason string
		errIs  error
	}{
		{name: "trimmed reason", reason: "  Painting  "},
		{name: "maximum length", reason: strings.Repeat("r", block.MaxReasonLength)},
		{name: "empty reason", reason: "", errIs: block.ErrEmptyReason},
		{name: "blank reason", reason: "   ", errIs: block.ErrEmptyReason},
		{name: "reason too long", reason: strings.Repeat("r", block.MaxReasonLength+1), errIs: block.ErrReasonTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBlockBuilder().WithReason(c.reason).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(c.reason), actual.Reason())
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}

	t.Run("missing range", func(t *testing.T) {
		actual, err := block.NewBlock(uuid.Nil, daterange.DateRange{}, "reason", time.Now())
		require.Nil(t, actual)
		require.ErrorIs(t, err, block.ErrMissingRange)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})
}
