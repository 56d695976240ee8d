// Package store holds the authoritative in-memory vehicle and booking
// collections. The store is a dumb container: it performs no conflict
// checking of its own, that contract belongs to the schedule package.
// It is mutated only from the TUI event loop, so access is unsynchronized.
package store

import (
	"errors"
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/models"
)

// ErrBookingNotFound is returned by UpdateBooking when no booking with
// the given ID exists
var ErrBookingNotFound = errors.New("booking not found")

// Store owns the fleet data for one session
type Store struct {
	vehicles []models.Vehicle
	bookings []models.Booking
}

// New creates a store populated with the given initial data
func New(vehicles []models.Vehicle, bookings []models.Booking) *Store {
	return &Store{vehicles: vehicles, bookings: bookings}
}

// Vehicles returns the full vehicle list in insertion order
func (s *Store) Vehicles() []models.Vehicle {
	return s.vehicles
}

// Bookings returns the full booking list in insertion order
func (s *Store) Bookings() []models.Booking {
	return s.bookings
}

// Vehicle looks up a vehicle by ID
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// Booking looks up a booking by ID
func (s *Store) Booking(id string) (models.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// AddBooking appends a booking. Conflict checking is the caller's
// responsibility.
func (s *Store) AddBooking(b models.Booking) {
	s.bookings = append(s.bookings, b)
}

// UpdateBooking replaces the booking with a matching ID
func (s *Store) UpdateBooking(updated models.Booking) error {
	for i, b := range s.bookings {
		if b.ID == updated.ID {
			s.bookings[i] = updated
			return nil
		}
	}
	return fmt.Errorf("update booking %q: %w", updated.ID, ErrBookingNotFound)
}

// VisibleBookings returns the bookings belonging to any of the given
// vehicles, in insertion order
func (s *Store) VisibleBookings(vehicleIDs []string) []models.Booking {
	members := make(map[string]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		members[id] = struct{}{}
	}

	var visible []models.Booking
	for _, b := range s.bookings {
		if _, ok := members[b.VehicleID]; ok {
			visible = append(visible, b)
		}
	}
	return visible
}

// BookingsForVehicle returns the bookings on one vehicle in insertion order
func (s *Store) BookingsForVehicle(vehicleID string) []models.Booking {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.VehicleID == vehicleID {
			out = append(out, b)
		}
	}
	return out
}
