// Package stats aggregates fleet figures for the statistics panel, the
// utilization heatmap, and the printable report. Utilization uses the
// same fixed 30-day reference period as the view pipeline, computed
// here over the full booking set rather than the filtered one.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
)

// UpcomingWindowDays bounds the "upcoming bookings" count
const UpcomingWindowDays = 30

// HeatBand classifies a utilization percentage for the heatmap
type HeatBand string

const (
	HeatLow      HeatBand = "low"      // < 25%
	HeatModerate HeatBand = "moderate" // 25–49%
	HeatHigh     HeatBand = "high"     // 50–69%
	HeatCritical HeatBand = "critical" // >= 70%
)

// VehicleStats is one vehicle's aggregate row
type VehicleStats struct {
	Vehicle            models.Vehicle
	UtilizationPercent int
	TotalBookings      int
	UpcomingBookings   int
}

// Band returns the heat band for this vehicle's utilization
func (s VehicleStats) Band() HeatBand {
	return BandFor(s.UtilizationPercent)
}

// FleetStats is the dashboard-wide aggregate
type FleetStats struct {
	Vehicles        []VehicleStats // sorted by utilization, highest first
	TotalVehicles   int
	TotalBookings   int
	UpcomingCount   int
	StatusBreakdown map[constants.BookingStatus]int
}

// Report is the exportable summary produced by the stats subcommand
type Report struct {
	GeneratedAt     time.Time                     `json:"generated_at"`
	TotalVehicles   int                           `json:"total_vehicles"`
	TotalBookings   int                           `json:"total_bookings"`
	VehicleTypes    map[constants.VehicleType]int `json:"vehicle_types"`
	StatusBreakdown map[constants.BookingStatus]int `json:"status_breakdown"`
	Utilization     []VehicleStats                `json:"utilization"`
}

// BandFor classifies a utilization percentage
func BandFor(percent int) HeatBand {
	switch {
	case percent >= 70:
		return HeatCritical
	case percent >= 50:
		return HeatHigh
	case percent >= 25:
		return HeatModerate
	default:
		return HeatLow
	}
}

// Compute aggregates the full data set as of now
func Compute(vehicles []models.Vehicle, bookings []models.Booking, now time.Time) FleetStats {
	fs := FleetStats{
		TotalVehicles:   len(vehicles),
		TotalBookings:   len(bookings),
		StatusBreakdown: make(map[constants.BookingStatus]int),
	}

	horizon := now.AddDate(0, 0, UpcomingWindowDays)
	for _, b := range bookings {
		fs.StatusBreakdown[b.Status]++
		if b.StartDate.After(now) && !b.StartDate.After(horizon) {
			fs.UpcomingCount++
		}
	}

	for _, v := range vehicles {
		vs := VehicleStats{Vehicle: v}
		var hours float64
		for _, b := range bookings {
			if b.VehicleID != v.ID {
				continue
			}
			vs.TotalBookings++
			hours += timeline.DurationHours(b.StartDate, b.EndDate)
			if b.StartDate.After(now) && !b.StartDate.After(horizon) {
				vs.UpcomingBookings++
			}
		}
		vs.UtilizationPercent = int(math.Round(hours / constants.UtilizationReferenceHours * 100))
		fs.Vehicles = append(fs.Vehicles, vs)
	}

	sort.SliceStable(fs.Vehicles, func(i, j int) bool {
		return fs.Vehicles[i].UtilizationPercent > fs.Vehicles[j].UtilizationPercent
	})

	return fs
}

// BuildReport snapshots the fleet into an exportable report
func BuildReport(vehicles []models.Vehicle, bookings []models.Booking, now time.Time) Report {
	fs := Compute(vehicles, bookings, now)

	types := make(map[constants.VehicleType]int)
	for _, v := range vehicles {
		types[v.Type]++
	}

	return Report{
		GeneratedAt:     now,
		TotalVehicles:   fs.TotalVehicles,
		TotalBookings:   fs.TotalBookings,
		VehicleTypes:    types,
		StatusBreakdown: fs.StatusBreakdown,
		Utilization:     fs.Vehicles,
	}
}
