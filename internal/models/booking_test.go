package models

import (
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
)

func validBooking() Booking {
	start := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	return Booking{
		ID:        "b-1",
		VehicleID: "v-1",
		Title:     "Airport run",
		StartDate: start,
		EndDate:   start.Add(4 * time.Hour),
		Type:      constants.BookingCustomer,
		Status:    constants.StatusConfirmed,
		Customer:  "Customer 7",
	}
}

func TestBookingValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Booking)
		wantErr bool
	}{
		{"valid", func(b *Booking) {}, false},
		{"missing title", func(b *Booking) { b.Title = "" }, true},
		{"missing vehicle", func(b *Booking) { b.VehicleID = "" }, true},
		{"end before start", func(b *Booking) { b.EndDate = b.StartDate.Add(-time.Hour) }, true},
		{"end equals start", func(b *Booking) { b.EndDate = b.StartDate }, true},
		{"unknown type", func(b *Booking) { b.Type = "joyride" }, true},
		{"unknown status", func(b *Booking) { b.Status = "tentative" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(&b)
			err := b.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBookingAccessors(t *testing.T) {
	b := validBooking()

	if b.Duration() != 4*time.Hour {
		t.Errorf("Duration = %v, want 4h", b.Duration())
	}
	if b.TypeName() != "Customer Booking" {
		t.Errorf("TypeName = %q", b.TypeName())
	}
	if b.StatusIndicator() != "█" {
		t.Errorf("StatusIndicator = %q, want solid block for confirmed", b.StatusIndicator())
	}
	if b.Color() == "" {
		t.Error("every booking type must map to a color")
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC),
	}

	if !r.Contains(r.Start) || !r.Contains(r.End) {
		t.Error("range must contain its own bounds")
	}
	if r.Contains(r.Start.Add(-time.Second)) {
		t.Error("range must not contain instants before Start")
	}
	if r.Contains(r.End.Add(time.Second)) {
		t.Error("range must not contain instants after End")
	}
}

func TestDefaultFilters(t *testing.T) {
	today := time.Date(2024, 3, 14, 16, 45, 0, 0, time.UTC)
	f := DefaultFilters(today)

	if f.VehicleType != constants.FilterAll || f.BookingStatus != constants.FilterAll || f.BookingType != constants.FilterAll {
		t.Error("default filters must use the all wildcard")
	}
	if f.SortBy != constants.SortUtilizationDesc {
		t.Errorf("SortBy = %s, want utilization-desc", f.SortBy)
	}
	if f.DateRange.Start.Hour() != 0 {
		t.Error("range start should be midnight of today")
	}
	if got := f.DateRange.End.Sub(f.DateRange.Start); got != 28*24*time.Hour {
		t.Errorf("range span = %v, want 28 days", got)
	}
}
