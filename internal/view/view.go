// Package view derives the visible vehicle and booking subset from the
// raw data plus filter criteria. Derive is pure and never mutates its
// inputs; ties keep insertion order.
package view

import (
	"math"
	"sort"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
)

// Result is the filtered, sorted view of the fleet
type Result struct {
	Vehicles []models.Vehicle
	Bookings []models.Booking

	// Utilization is the per-vehicle booked percentage over the fixed
	// 30-day reference period, computed from the surviving bookings
	Utilization map[string]int
}

// Derive applies the filter pipeline:
//  1. vehicles by type,
//  2. bookings to the surviving vehicles,
//  3. bookings by status,
//  4. bookings by type,
//  5. bookings fully contained in the criteria date range,
//
// then computes utilization over what survived and sorts the vehicles.
func Derive(vehicles []models.Vehicle, bookings []models.Booking, criteria models.FilterCriteria) Result {
	vs := make([]models.Vehicle, 0, len(vehicles))
	if criteria.VehicleType != constants.FilterAll {
		for _, v := range vehicles {
			if string(v.Type) == criteria.VehicleType {
				vs = append(vs, v)
			}
		}
	} else {
		vs = append(vs, vehicles...)
	}

	members := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		members[v.ID] = struct{}{}
	}

	bs := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := members[b.VehicleID]; !ok {
			continue
		}
		if criteria.BookingStatus != constants.FilterAll && string(b.Status) != criteria.BookingStatus {
			continue
		}
		if criteria.BookingType != constants.FilterAll && string(b.Type) != criteria.BookingType {
			continue
		}
		if b.StartDate.Before(criteria.DateRange.Start) || b.EndDate.After(criteria.DateRange.End) {
			continue
		}
		bs = append(bs, b)
	}

	utilization := make(map[string]int, len(vs))
	for _, v := range vs {
		var hours float64
		for _, b := range bs {
			if b.VehicleID == v.ID {
				hours += timeline.DurationHours(b.StartDate, b.EndDate)
			}
		}
		utilization[v.ID] = int(math.Round(hours / constants.UtilizationReferenceHours * 100))
	}

	switch criteria.SortBy {
	case constants.SortUtilizationDesc:
		sort.SliceStable(vs, func(i, j int) bool {
			return utilization[vs[i].ID] > utilization[vs[j].ID]
		})
	case constants.SortUtilizationAsc:
		sort.SliceStable(vs, func(i, j int) bool {
			return utilization[vs[i].ID] < utilization[vs[j].ID]
		})
	case constants.SortNameAsc:
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Name < vs[j].Name })
	case constants.SortNameDesc:
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Name > vs[j].Name })
	}

	return Result{Vehicles: vs, Bookings: bs, Utilization: utilization}
}
