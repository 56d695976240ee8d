package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/logger"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

var (
	// ErrConflict is returned when a proposed interval overlaps another
	// booking on the target vehicle
	ErrConflict = errors.New("booking conflicts with an existing booking")

	// ErrInvalidInterval is returned when a booking reaches the commit
	// boundary with start >= end. The gesture clamps make this
	// unreachable from the interaction surface, but the boundary
	// validates anyway.
	ErrInvalidInterval = errors.New("booking start must be before end")
)

// Planner is the only component allowed to mutate the store. Drag
// commits, resize commits, form saves and new bookings all pass
// through here, so the no-overlap property holds after every commit.
type Planner struct {
	store *store.Store
}

// NewPlanner creates a planner bound to the given store
func NewPlanner(s *store.Store) *Planner {
	return &Planner{store: s}
}

// Update validates the changed booking, checks it for conflicts
// against every other booking, and commits it. The stored value is
// untouched on any error.
func (p *Planner) Update(updated models.Booking) error {
	if err := p.check(updated, updated.ID); err != nil {
		return err
	}
	if err := p.store.UpdateBooking(updated); err != nil {
		return err
	}
	logger.Debug("booking updated", "id", updated.ID, "vehicle", updated.VehicleID)
	return nil
}

// Create validates and commits a brand-new booking
func (p *Planner) Create(b models.Booking) error {
	if err := p.check(b, b.ID); err != nil {
		return err
	}
	p.store.AddBooking(b)
	logger.Debug("booking created", "id", b.ID, "vehicle", b.VehicleID)
	return nil
}

// WouldConflict answers a conflict query against the current store
// snapshot without committing anything. The interaction layer uses it
// for gesture-end checks before asking for a commit.
func (p *Planner) WouldConflict(vehicleID string, start, end time.Time, excludeID string) bool {
	return HasConflict(p.store.Bookings(), vehicleID, start, end, excludeID)
}

func (p *Planner) check(b models.Booking, excludeID string) error {
	if !b.StartDate.Before(b.EndDate) {
		return fmt.Errorf("booking %q: %w", b.ID, ErrInvalidInterval)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if HasConflict(p.store.Bookings(), b.VehicleID, b.StartDate, b.EndDate, excludeID) {
		logger.Warn("booking conflict rejected", "id", b.ID, "vehicle", b.VehicleID,
			"start", b.StartDate, "end", b.EndDate)
		return fmt.Errorf("booking %q on vehicle %q: %w", b.ID, b.VehicleID, ErrConflict)
	}
	return nil
}
