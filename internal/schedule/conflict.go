// Package schedule decides whether booking mutations are allowed. It
// contains the conflict rule and the single commit path every mutation
// funnels through.
package schedule

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

// HasConflict reports whether the proposed interval overlaps any other
// booking on the given vehicle. Intervals are half-open, so two
// bookings may share an endpoint: [s1,e1) and [s2,e2) conflict iff
// s1 < e2 && s2 < e1. The booking identified by excludeID is skipped
// so a move or resize never conflicts with itself.
func HasConflict(bookings []models.Booking, vehicleID string, start, end time.Time, excludeID string) bool {
	for _, b := range bookings {
		if b.VehicleID != vehicleID || b.ID == excludeID {
			continue
		}
		if start.Before(b.EndDate) && b.StartDate.Before(end) {
			return true
		}
	}
	return false
}
