package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetdeck/fleetdeck/internal/store"
)

func newPlannerFixture(t *testing.T) (*store.Store, *Planner, time.Time) {
	t.Helper()
	base := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	s := store.New(nil, nil)
	s.AddBooking(booking("b-1", "v-1", base, base.Add(2*time.Hour)))          // 09:00-11:00
	s.AddBooking(booking("b-2", "v-1", base.Add(5*time.Hour), base.Add(7*time.Hour))) // 14:00-16:00

	return s, NewPlanner(s), base
}

func TestPlannerUpdate_RejectsConflictAndKeepsOriginal(t *testing.T) {
	s, planner, base := newPlannerFixture(t)

	// move b-2 onto 10:00-12:00, colliding with b-1
	moved := booking("b-2", "v-1", base.Add(time.Hour), base.Add(3*time.Hour))
	err := planner.Update(moved)
	require.ErrorIs(t, err, ErrConflict)

	// the stored booking must be untouched
	stored, ok := s.Booking("b-2")
	require.True(t, ok)
	require.True(t, stored.StartDate.Equal(base.Add(5*time.Hour)))
	require.True(t, stored.EndDate.Equal(base.Add(7*time.Hour)))
}

func TestPlannerUpdate_CommitsConflictFreeMove(t *testing.T) {
	s, planner, base := newPlannerFixture(t)

	// move b-2 to a free slot on another vehicle
	moved := booking("b-2", "v-2", base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, planner.Update(moved))

	stored, ok := s.Booking("b-2")
	require.True(t, ok)
	require.Equal(t, "v-2", stored.VehicleID)
	require.True(t, stored.StartDate.Equal(base.Add(time.Hour)))
}

func TestPlannerUpdate_RejectsInvalidInterval(t *testing.T) {
	_, planner, base := newPlannerFixture(t)

	inverted := booking("b-2", "v-1", base.Add(3*time.Hour), base.Add(time.Hour))
	require.ErrorIs(t, planner.Update(inverted), ErrInvalidInterval)

	zero := booking("b-2", "v-1", base, base)
	require.ErrorIs(t, planner.Update(zero), ErrInvalidInterval)
}

func TestPlannerUpdate_UnknownBooking(t *testing.T) {
	_, planner, base := newPlannerFixture(t)

	ghost := booking("b-404", "v-9", base.Add(20*time.Hour), base.Add(22*time.Hour))
	err := planner.Update(ghost)
	require.True(t, errors.Is(err, store.ErrBookingNotFound))
}

func TestPlannerCreate_ChecksConflicts(t *testing.T) {
	s, planner, base := newPlannerFixture(t)

	clash := booking("b-3", "v-1", base.Add(time.Hour), base.Add(3*time.Hour))
	require.ErrorIs(t, planner.Create(clash), ErrConflict)
	_, ok := s.Booking("b-3")
	require.False(t, ok)

	fine := booking("b-3", "v-1", base.Add(2*time.Hour), base.Add(4*time.Hour))
	require.NoError(t, planner.Create(fine))
	_, ok = s.Booking("b-3")
	require.True(t, ok)
}

func TestPlannerWouldConflict(t *testing.T) {
	_, planner, base := newPlannerFixture(t)

	require.True(t, planner.WouldConflict("v-1", base.Add(time.Hour), base.Add(3*time.Hour), "b-3"))
	require.False(t, planner.WouldConflict("v-1", base.Add(time.Hour), base.Add(3*time.Hour), "b-1"))
	require.False(t, planner.WouldConflict("v-2", base.Add(time.Hour), base.Add(3*time.Hour), "b-3"))
}
