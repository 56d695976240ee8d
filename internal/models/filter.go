package models

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
)

// DateRange is an inclusive [Start, End] window of calendar time.
// View ranges are derived from a view mode and anchor date and are
// never stored.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, inclusive
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FilterCriteria narrows the derived view. Zero filtering uses the
// "all" wildcard per field; the date range is independent of the
// visible view range.
type FilterCriteria struct {
	VehicleType   string              `json:"vehicle_type"`
	BookingStatus string              `json:"booking_status"`
	BookingType   string              `json:"booking_type"`
	DateRange     DateRange           `json:"date_range"`
	SortBy        constants.SortOrder `json:"sort_by"`
}

// DefaultFilters returns the initial criteria: everything visible,
// date range spanning today through today+28d, highest utilization first.
func DefaultFilters(today time.Time) FilterCriteria {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return FilterCriteria{
		VehicleType:   constants.FilterAll,
		BookingStatus: constants.FilterAll,
		BookingType:   constants.FilterAll,
		DateRange: DateRange{
			Start: start,
			End:   start.AddDate(0, 0, constants.DefaultFilterRangeDays),
		},
		SortBy: constants.SortUtilizationDesc,
	}
}
