package timeline

import (
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

func weekOf(t *testing.T) models.DateRange {
	t.Helper()
	// Thursday; the week view should snap to Monday the 11th
	anchor := time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)
	return RangeForView(anchor, constants.ViewWeek)
}

func TestRangeForView_WeekSnapsToMonday(t *testing.T) {
	r := weekOf(t)

	if got := r.Start.Format(constants.DateFormat); got != "2024-03-11" {
		t.Errorf("week start = %s, want 2024-03-11", got)
	}
	if got := r.End.Format(constants.DateFormat); got != "2024-03-17" {
		t.Errorf("week end = %s, want 2024-03-17", got)
	}
	if r.Start.Hour() != 0 {
		t.Errorf("week start should be midnight, got hour %d", r.Start.Hour())
	}
}

func TestRangeForView_SundayAnchorStaysInWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 9, 0, 0, 0, time.UTC)
	r := RangeForView(sunday, constants.ViewWeek)

	if got := r.Start.Format(constants.DateFormat); got != "2024-03-11" {
		t.Errorf("week start = %s, want 2024-03-11", got)
	}
}

func TestRangeForView_Month(t *testing.T) {
	anchor := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	r := RangeForView(anchor, constants.ViewMonth)

	if got := r.Start.Format(constants.DateFormat); got != "2024-02-01" {
		t.Errorf("month start = %s, want 2024-02-01", got)
	}
	// 2024 is a leap year
	if got := r.End.Format(constants.DateFormat); got != "2024-02-29" {
		t.Errorf("month end = %s, want 2024-02-29", got)
	}
	if DaysIn(r) != 29 {
		t.Errorf("DaysIn = %d, want 29", DaysIn(r))
	}
}

func TestHeaderLabels_WeekendsMarked(t *testing.T) {
	labels := HeaderLabels(weekOf(t), constants.ViewWeek)

	if len(labels) != 7 {
		t.Fatalf("got %d labels, want 7", len(labels))
	}
	for i, l := range labels {
		wantWeekend := i >= 5 // Saturday the 16th and Sunday the 17th
		if l.IsWeekend != wantWeekend {
			t.Errorf("label %d (%s): IsWeekend = %v, want %v", i, l.Label, l.IsWeekend, wantWeekend)
		}
	}
	if labels[0].Label != "Mon 11" {
		t.Errorf("first label = %q, want %q", labels[0].Label, "Mon 11")
	}
}

func TestLayout_PositionsWithinRange(t *testing.T) {
	r := weekOf(t)
	const totalWidth = 70.0 // 10 cells per day

	start := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)

	p := Layout(start, end, r, totalWidth)
	if !p.Visible {
		t.Fatal("booking inside the range should be visible")
	}
	if p.Left != 10 {
		t.Errorf("Left = %v, want 10", p.Left)
	}
	if p.Width != 20 {
		t.Errorf("Width = %v, want 20", p.Width)
	}
}

func TestLayout_OutsideRangeNotVisible(t *testing.T) {
	r := weekOf(t)

	before := Layout(
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		r, 70)
	if before.Visible {
		t.Error("booking ending before the range should not be visible")
	}

	after := Layout(
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC),
		r, 70)
	if after.Visible {
		t.Error("booking starting after the range should not be visible")
	}
}

func TestLayout_ClipsAtRangeEnd(t *testing.T) {
	r := weekOf(t)

	// Runs past the Sunday boundary; the bar must stop at the edge
	p := Layout(
		time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC),
		r, 70)
	if !p.Visible {
		t.Fatal("partially visible booking should be visible")
	}
	if p.Left != 50 {
		t.Errorf("Left = %v, want 50", p.Left)
	}
	if p.Left+p.Width != 70 {
		t.Errorf("Left+Width = %v, want exactly 70", p.Left+p.Width)
	}
}

func TestLayout_ClipsAtRangeStart(t *testing.T) {
	r := weekOf(t)

	p := Layout(
		time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC),
		r, 70)
	if !p.Visible {
		t.Fatal("partially visible booking should be visible")
	}
	if p.Left < 0 {
		t.Errorf("Left = %v, must not be negative", p.Left)
	}
	if p.Left+p.Width > 70 {
		t.Errorf("Left+Width = %v, must not exceed 70", p.Left+p.Width)
	}
}

func TestPixelToDate_KeepsFractionalDays(t *testing.T) {
	r := weekOf(t)

	// 1.5 day columns in: noon on Tuesday the 12th
	got := PixelToDate(15, r, 70)
	want := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("PixelToDate(15) = %v, want %v", got, want)
	}

	if got := PixelToDate(0, r, 70); !got.Equal(r.Start) {
		t.Errorf("PixelToDate(0) = %v, want range start %v", got, r.Start)
	}
}

func TestDurationHours_AbsoluteValue(t *testing.T) {
	a := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	b := a.Add(28 * time.Hour)

	if got := DurationHours(a, b); got != 28 {
		t.Errorf("DurationHours = %v, want 28", got)
	}
	if got := DurationHours(b, a); got != 28 {
		t.Errorf("DurationHours reversed = %v, want 28", got)
	}
}
