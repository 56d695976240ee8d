package chart

import (
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

func chartFixture() Model {
	rng := models.DateRange{
		Start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC),
	}
	vehicles := []models.Vehicle{
		{ID: "v-1", Name: "Vehicle 1", Type: constants.VehicleSedan},
		{ID: "v-2", Name: "Vehicle 2", Type: constants.VehicleVan},
	}
	bookings := []models.Booking{
		{ID: "b-1", VehicleID: "v-1", Title: "Airport run",
			StartDate: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC),
			Type:      constants.BookingCustomer, Status: constants.StatusConfirmed},
	}

	// 70 timeline cells, 10 per day
	m := New(InfoColWidth+70, 20)
	m.SetData(vehicles, bookings, map[string]int{"v-1": 10, "v-2": 0}, rng,
		constants.ViewWeek, time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC))
	return m
}

func TestHitTest_Zones(t *testing.T) {
	m := chartFixture()

	// bar occupies timeline cells 10 through 29 on row 1 (v-1)
	cases := []struct {
		name string
		x    int
		want Zone
	}{
		{"start edge", InfoColWidth + 10, ZoneStartEdge},
		{"body", InfoColWidth + 15, ZoneBody},
		{"end edge", InfoColWidth + 29, ZoneEndEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := m.HitTest(tc.x, 1)
			if !ok {
				t.Fatal("expected a hit inside the timeline")
			}
			if hit.Booking == nil || hit.Booking.ID != "b-1" {
				t.Fatal("expected to hit b-1")
			}
			if hit.Zone != tc.want {
				t.Errorf("Zone = %d, want %d", hit.Zone, tc.want)
			}
			if hit.VehicleID != "v-1" {
				t.Errorf("VehicleID = %s, want v-1", hit.VehicleID)
			}
		})
	}
}

func TestHitTest_EmptyCellAndBounds(t *testing.T) {
	m := chartFixture()

	hit, ok := m.HitTest(InfoColWidth+40, 1)
	if !ok {
		t.Fatal("empty timeline cell should still resolve to a row")
	}
	if hit.Booking != nil {
		t.Error("no booking should be hit at an empty cell")
	}

	if _, ok := m.HitTest(InfoColWidth+10, 0); ok {
		t.Error("the header row should not hit-test")
	}
	if _, ok := m.HitTest(5, 1); ok {
		t.Error("the info column should not hit-test")
	}
	if _, ok := m.HitTest(InfoColWidth+10, 5); ok {
		t.Error("rows past the vehicle list should not hit-test")
	}
}

func TestSetData_PreservesSelectionByID(t *testing.T) {
	m := chartFixture()

	extra := models.Booking{ID: "b-2", VehicleID: "v-2", Title: "Service",
		StartDate: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 14, 17, 0, 0, 0, time.UTC),
		Type:      constants.BookingService, Status: constants.StatusPending}

	m.SelectByID("b-1")

	// reorder the slice; selection should follow the ID, not the index
	m.SetData(m.vehicles, []models.Booking{extra, m.bookings[0]}, m.utilization, m.rng, m.mode, m.today)

	sel, ok := m.Selected()
	if !ok {
		t.Fatal("selection lost after SetData")
	}
	if sel.ID != "b-1" {
		t.Errorf("selected = %s, want b-1", sel.ID)
	}
}

func TestLeftOf(t *testing.T) {
	m := chartFixture()

	b, _ := m.Selected()
	if got := m.LeftOf(b); got != 10 {
		t.Errorf("LeftOf = %v, want 10", got)
	}
}
