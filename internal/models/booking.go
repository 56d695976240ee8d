package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fleetdeck/fleetdeck/internal/constants"
)

// validate is the shared validator instance for all model checks
var validate = validator.New(validator.WithRequiredStructEnabled())

// Booking is one reserved interval on a single vehicle. StartDate and
// EndDate form a half-open interval [StartDate, EndDate).
type Booking struct {
	ID        string                  `json:"id" validate:"required"`
	VehicleID string                  `json:"vehicle_id" validate:"required"`
	Title     string                  `json:"title" validate:"required"`
	StartDate time.Time               `json:"start_date" validate:"required"`
	EndDate   time.Time               `json:"end_date" validate:"required,gtfield=StartDate"`
	Type      constants.BookingType   `json:"type" validate:"required,oneof=maintenance customer service"`
	Status    constants.BookingStatus `json:"status" validate:"required,oneof=confirmed pending completed"`
	Customer  string                  `json:"customer,omitempty"`
	Notes     string                  `json:"notes,omitempty"`
}

// Validate checks the booking invariants, most importantly
// StartDate < EndDate. It is run at every commit boundary.
func (b *Booking) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid booking %q: %w", b.ID, err)
	}
	return nil
}

// Duration returns the booked span
func (b *Booking) Duration() time.Duration {
	return b.EndDate.Sub(b.StartDate)
}

// TypeName returns the display name of the booking's type
func (b *Booking) TypeName() string {
	return constants.BookingTypeName[b.Type]
}

// Color returns the bar color for the booking's type
func (b *Booking) Color() string {
	return constants.BookingTypeColor[b.Type]
}

// StatusName returns the display name of the booking's status
func (b *Booking) StatusName() string {
	return constants.BookingStatusName[b.Status]
}

// StatusIndicator returns the edge rune for the booking's status
func (b *Booking) StatusIndicator() string {
	return constants.BookingStatusIndicator[b.Status]
}

// FormatInterval returns a human-readable "start – end" label
func (b *Booking) FormatInterval() string {
	return fmt.Sprintf("%s – %s",
		b.StartDate.Format(constants.DateTimeFormat),
		b.EndDate.Format(constants.DateTimeFormat))
}
