//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra/memory"
	"booking-manager/internal/pkg/clock"
	"booking-manager/internal/pkg/config"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/commands"
	"booking-manager/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	uow      *memory.UoW
	bookings commands.BookingCommands
	blocks   commands.BlockCommands
	queries  queries.BookingQueries
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uow = memory.NewUoW(logger)
	s.bookings = commands.NewBookingCommands(s.uow, s.clock, config.NewTestConfig(), logger)
	s.blocks = commands.NewBlockCommands(s.uow, s.clock, logger)
	s.queries = queries.NewBookingQueries(s.uow)
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func dates(t require.TestingT, start, end string) daterange.DateRange {
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return r
}

func (s *BookingCommandsTestSuite) create(start, end, guest string) *queries.BookingView {
	v, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), start, end), GuestDetails: guest})
	s.Require().NoError(err)
	return v
}

func (s *BookingCommandsTestSuite) listAll() []*queries.BookingView {
	all, err := s.queries.ListAll(s.ctx)
	s.Require().NoError(err)
	return all
}

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("round trip through ListAll", func() {
		created := s.create("2024-01-05", "2024-01-10", "Ana")

		all := s.listAll()
		s.Require().Len(all, 1)
		s.Equal(created.ID, all[0].ID)
		s.Equal("Ana", all[0].GuestDetails)
		s.Equal("2024-01-05", all[0].StartDate.Format(daterange.Layout))
		s.Equal("2024-01-10", all[0].EndDate.Format(daterange.Layout))
		s.Equal(s.clock.Now(), all[0].CreatedAt)
	})

	s.Run("overlapping create conflicts and mutates nothing", func() {
		_, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-01-07", "2024-01-12"), GuestDetails: "Bea"})
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, commands.ErrDatesUnavailable))
		s.Len(s.listAll(), 1)
	})

	s.Run("day after the booking is free", func() {
		s.create("2024-01-11", "2024-01-15", "Carl")
		s.Len(s.listAll(), 2)
	})

	s.Run("repeated creates get distinct ids", func() {
		a := s.create("2024-06-01", "2024-06-01", "Dee")
		_, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-06-01", "2024-06-01"), GuestDetails: "Dee"})
		s.True(errs.Is(err, errs.ErrConflict))
		b := s.create("2024-06-02", "2024-06-02", "Dee")
		s.NotEqual(a.ID, b.ID)
	})

	s.Run("block window rejects bookings", func() {
		_, err := s.blocks.Create(s.ctx, commands.CreateBlockInput{Range: dates(s.T(), "2024-07-01", "2024-07-05"), Reason: "Painting"})
		s.Require().NoError(err)

		_, err = s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-07-05", "2024-07-08"), GuestDetails: "Eve"})
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("invalid guest details", func() {
		_, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-09-01", "2024-09-02"), GuestDetails: " "})
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *BookingCommandsTestSuite) TestCancelThenCreate() {
	a := s.create("2024-01-05", "2024-01-10", "Ana")

	s.Require().NoError(s.bookings.Cancel(s.ctx, a.ID))

	b := s.create("2024-01-07", "2024-01-12", "Bea")
	all := s.listAll()
	s.Require().Len(all, 1)
	s.Equal(b.ID, all[0].ID)
}

func (s *BookingCommandsTestSuite) TestDelete() {
	a := s.create("2024-01-05", "2024-01-10", "Ana")

	s.Require().NoError(s.bookings.Delete(s.ctx, a.ID))
	s.Empty(s.listAll())

	err := s.bookings.Delete(s.ctx, a.ID)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *BookingCommandsTestSuite) TestReschedule() {
	s.Run("overlapping only itself succeeds under the same id", func() {
		a := s.create("2024-01-05", "2024-01-10", "Ana")
		s.clock.Add(time.Hour)

		moved, err := s.bookings.Reschedule(s.ctx, a.ID, dates(s.T(), "2024-01-07", "2024-01-12"))
		s.Require().NoError(err)
		s.Equal(a.ID, moved.ID)
		s.Equal(s.clock.Now(), moved.UpdatedAt)

		all := s.listAll()
		s.Require().Len(all, 1)
		s.Equal(a.ID, all[0].ID)
		s.Equal("2024-01-07", all[0].StartDate.Format(daterange.Layout))
		s.Equal("2024-01-12", all[0].EndDate.Format(daterange.Layout))
		s.Equal("Ana", all[0].GuestDetails)
	})

	s.Run("overlapping another booking conflicts", func() {
		other := s.create("2024-02-01", "2024-02-03", "Bea")

		_, err := s.bookings.Reschedule(s.ctx, other.ID, dates(s.T(), "2024-01-12", "2024-02-01"))
		s.True(errs.Is(err, errs.ErrConflict))

		got, err := s.queries.GetByID(s.ctx, other.ID)
		s.Require().NoError(err)
		s.Equal("2024-02-01", got.StartDate.Format(daterange.Layout))
	})
}

func (s *BookingCommandsTestSuite) TestMissingBooking() {
	existing := s.create("2024-01-05", "2024-01-10", "Ana")
	missing := uuid.New()

	err := s.bookings.Cancel(s.ctx, missing)
	s.True(errs.Is(err, errs.ErrNotFound))
	s.True(errs.Is(err, commands.ErrBookingNotFound))

	err = s.bookings.Delete(s.ctx, missing)
	s.True(errs.Is(err, errs.ErrNotFound))

	// not found is reported before the availability check
	_, err = s.bookings.Reschedule(s.ctx, missing, dates(s.T(), "2024-01-05", "2024-01-10"))
	s.True(errs.Is(err, errs.ErrNotFound))
	s.False(errs.Is(err, errs.ErrConflict))

	_, err = s.bookings.Update(s.ctx, missing, commands.UpdateBookingInput{Range: dates(s.T(), "2024-03-01", "2024-03-02"), GuestDetails: "x"})
	s.True(errs.Is(err, errs.ErrNotFound))

	all := s.listAll()
	s.Require().Len(all, 1)
	s.Equal(existing.ID, all[0].ID)
	s.Equal("2024-01-05", all[0].StartDate.Format(daterange.Layout))
}

func (s *BookingCommandsTestSuite) TestUpdate() {
	s.Run("strict policy rejects overlap with another booking", func() {
		a := s.create("2024-01-05", "2024-01-10", "Ana")
		b := s.create("2024-01-20", "2024-01-25", "Bea")

		_, err := s.bookings.Update(s.ctx, b.ID, commands.UpdateBookingInput{Range: dates(s.T(), "2024-01-09", "2024-01-21"), GuestDetails: "Bea"})
		s.True(errs.Is(err, errs.ErrConflict))

		updated, err := s.bookings.Update(s.ctx, a.ID, commands.UpdateBookingInput{Range: dates(s.T(), "2024-01-04", "2024-01-06"), GuestDetails: "Ana Maria"})
		s.Require().NoError(err)
		s.Equal("Ana Maria", updated.GuestDetails)
	})

	s.Run("overwrite policy skips the availability check", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg := config.NewTestConfig()
		cfg.Booking.UpdatePolicy = config.UpdatePolicyOverwrite
		overwrite := commands.NewBookingCommands(s.uow, s.clock, cfg, logger)

		b := s.create("2024-03-01", "2024-03-02", "Cid")
		_, err := overwrite.Update(s.ctx, b.ID, commands.UpdateBookingInput{Range: dates(s.T(), "2024-01-05", "2024-01-05"), GuestDetails: "Cid"})
		s.Require().NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestConcurrentCreates() {
	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-08-01", "2024-08-07"), GuestDetails: "racer"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errs.Is(err, errs.ErrConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(workers-1, conflicts)
	s.Len(s.listAll(), 1)
}

func (s *BookingCommandsTestSuite) TestInvariantHoldsAfterMixedOperations() {
	a := s.create("2024-01-01", "2024-01-03", "A")
	b := s.create("2024-01-05", "2024-01-07", "B")
	_, err := s.blocks.Create(s.ctx, commands.CreateBlockInput{Range: dates(s.T(), "2024-01-09", "2024-01-10"), Reason: "repair"})
	s.Require().NoError(err)

	_, _ = s.bookings.Reschedule(s.ctx, a.ID, dates(s.T(), "2024-01-03", "2024-01-05"))
	_, _ = s.bookings.Reschedule(s.ctx, b.ID, dates(s.T(), "2024-01-08", "2024-01-09"))
	_, _ = s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-01-04", "2024-01-04"), GuestDetails: "C"})
	_, _ = s.bookings.Create(s.ctx, commands.CreateBookingInput{Range: dates(s.T(), "2024-01-11", "2024-01-12"), GuestDetails: "D"})

	all := s.listAll()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			ri := dates(s.T(), all[i].StartDate.Format(daterange.Layout), all[i].EndDate.Format(daterange.Layout))
			rj := dates(s.T(), all[j].StartDate.Format(daterange.Layout), all[j].EndDate.Format(daterange.Layout))
			s.False(ri.Overlaps(rj), "%s overlaps %s", ri, rj)
		}
	}
	s.Len(all, 4)
}
