package models

import (
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/constants"
)

// Vehicle is one schedulable fleet unit. Vehicles are immutable once
// created; there is no editing flow.
type Vehicle struct {
	ID           string                `json:"id" validate:"required"`
	Name         string                `json:"name" validate:"required"`
	Type         constants.VehicleType `json:"type" validate:"required,oneof=sedan suv van truck luxury"`
	Capacity     int                   `json:"capacity" validate:"gt=0"`
	LicensePlate string                `json:"license_plate" validate:"required"`
	Location     string                `json:"location"`
}

// TypeName returns the display name of the vehicle's type
func (v *Vehicle) TypeName() string {
	return constants.VehicleTypeName[v.Type]
}

// Validate checks structural validity beyond the tag rules
func (v *Vehicle) Validate() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid vehicle %q: %w", v.ID, err)
	}
	return nil
}
