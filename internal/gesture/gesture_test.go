package gesture

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// week of 2024-03-11, 10 cells per day
var testRange = models.DateRange{
	Start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC),
}

const testWidth = 70.0

func testBooking() models.Booking {
	return models.Booking{
		ID:        "b-1",
		VehicleID: "v-1",
		Title:     "Booking 1",
		StartDate: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC), // 28h
		Type:      constants.BookingCustomer,
		Status:    constants.StatusConfirmed,
	}
}

func TestDrag_PreservesDuration(t *testing.T) {
	m := NewMachine()
	b := testBooking()
	now := time.Now()

	if err := m.StartDrag(b, now); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	// drop two day columns in: Wednesday the 13th, midnight
	p, err := m.EndDrag("v-2", 20, testRange, testWidth)
	if err != nil {
		t.Fatalf("EndDrag: %v", err)
	}

	wantStart := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", p.Start, wantStart)
	}
	if got := p.End.Sub(p.Start); got != 28*time.Hour {
		t.Errorf("duration = %v, want 28h", got)
	}
	if p.VehicleID != "v-2" {
		t.Errorf("VehicleID = %q, want v-2", p.VehicleID)
	}
	if m.State() != Idle {
		t.Error("machine should be idle after EndDrag")
	}
}

func TestDrag_FractionalDrop(t *testing.T) {
	m := NewMachine()
	if err := m.StartDrag(testBooking(), time.Now()); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	// 1.5 columns: noon on Tuesday
	p, err := m.EndDrag("v-1", 15, testRange, testWidth)
	if err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	want := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)
	if !p.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", p.Start, want)
	}
}

func TestStart_RejectedWhileActive(t *testing.T) {
	m := NewMachine()
	b := testBooking()
	now := time.Now()

	if err := m.StartDrag(b, now); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.StartDrag(b, now); !errors.Is(err, ErrGestureActive) {
		t.Errorf("second StartDrag = %v, want ErrGestureActive", err)
	}
	if err := m.StartResize(b, EdgeEnd, 0, now); !errors.Is(err, ErrGestureActive) {
		t.Errorf("StartResize during drag = %v, want ErrGestureActive", err)
	}
}

func TestEndDrag_MalformedWithoutStart(t *testing.T) {
	m := NewMachine()

	if _, err := m.EndDrag("v-1", 10, testRange, testWidth); !errors.Is(err, ErrMalformedGesture) {
		t.Errorf("EndDrag while idle = %v, want ErrMalformedGesture", err)
	}
}

func TestEndDrag_MalformedWithoutTarget(t *testing.T) {
	m := NewMachine()
	if err := m.StartDrag(testBooking(), time.Now()); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	if _, err := m.EndDrag("", 10, testRange, testWidth); !errors.Is(err, ErrMalformedGesture) {
		t.Errorf("EndDrag with empty target = %v, want ErrMalformedGesture", err)
	}
	if m.State() != Idle {
		t.Error("machine should reset to idle after a malformed end")
	}
}

func TestResize_MovesEndEdgeOnly(t *testing.T) {
	m := NewMachine()
	b := testBooking()

	if err := m.StartResize(b, EdgeEnd, 30, time.Now()); err != nil {
		t.Fatalf("StartResize: %v", err)
	}

	// one column to the right: end shifts a day, start stays put
	p, err := m.EndResize(40, testRange, testWidth)
	if err != nil {
		t.Fatalf("EndResize: %v", err)
	}
	if !p.Start.Equal(b.StartDate) {
		t.Errorf("Start = %v, want unchanged %v", p.Start, b.StartDate)
	}
	if want := b.EndDate.Add(24 * time.Hour); !p.End.Equal(want) {
		t.Errorf("End = %v, want %v", p.End, want)
	}
	if p.VehicleID != b.VehicleID {
		t.Error("resize must not change the vehicle")
	}
}

func TestResize_ClampsInvertedEnd(t *testing.T) {
	m := NewMachine()
	b := testBooking()

	if err := m.StartResize(b, EdgeEnd, 30, time.Now()); err != nil {
		t.Fatalf("StartResize: %v", err)
	}

	// drag the end edge four columns left, far past the start
	p, err := m.EndResize(-10, testRange, testWidth)
	if err != nil {
		t.Fatalf("EndResize: %v", err)
	}
	if want := b.StartDate.Add(time.Hour); !p.End.Equal(want) {
		t.Errorf("End = %v, want clamp to %v", p.End, want)
	}
	if !p.Start.Equal(b.StartDate) {
		t.Errorf("Start = %v, want unchanged", p.Start)
	}
}

func TestResize_ClampsInvertedStart(t *testing.T) {
	m := NewMachine()
	b := testBooking()

	if err := m.StartResize(b, EdgeStart, 10, time.Now()); err != nil {
		t.Fatalf("StartResize: %v", err)
	}

	// drag the start edge far past the end
	p, err := m.EndResize(60, testRange, testWidth)
	if err != nil {
		t.Fatalf("EndResize: %v", err)
	}
	if want := b.EndDate.Add(-time.Hour); !p.Start.Equal(want) {
		t.Errorf("Start = %v, want clamp to %v", p.Start, want)
	}
	if !p.End.Equal(b.EndDate) {
		t.Errorf("End = %v, want unchanged", p.End)
	}
}

func TestMove_UpdatesPreviewOnly(t *testing.T) {
	m := NewMachine()
	b := testBooking()

	if err := m.StartDrag(b, time.Now()); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	m.Move(10, testRange, testWidth, time.Now())
	start, end, ok := m.Preview()
	if !ok {
		t.Fatal("preview should be available during a drag")
	}
	if want := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("preview start = %v, want %v", start, want)
	}
	if end.Sub(start) != 28*time.Hour {
		t.Errorf("preview duration = %v, want 28h", end.Sub(start))
	}
	if m.State() != Dragging {
		t.Error("Move must not end the gesture")
	}
}

func TestAbort_ResetsWithoutProposal(t *testing.T) {
	m := NewMachine()
	if err := m.StartDrag(testBooking(), time.Now()); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	m.Abort()
	if m.State() != Idle {
		t.Error("machine should be idle after Abort")
	}
	if _, _, ok := m.Preview(); ok {
		t.Error("no preview should survive an abort")
	}
}

func TestWatchdog_ClearsStuckGesture(t *testing.T) {
	m := NewMachine()
	t0 := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	if err := m.StartDrag(testBooking(), t0); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}

	if m.CheckWatchdog(t0.Add(29 * time.Second)) {
		t.Error("watchdog must not fire before the timeout")
	}
	if m.State() != Dragging {
		t.Error("gesture should survive an early watchdog check")
	}

	if !m.CheckWatchdog(t0.Add(31 * time.Second)) {
		t.Error("watchdog should fire after the timeout")
	}
	if m.State() != Idle {
		t.Error("machine should be idle after the watchdog fires")
	}
}

func TestWatchdog_MoveKeepsGestureAlive(t *testing.T) {
	m := NewMachine()
	t0 := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	if err := m.StartDrag(testBooking(), t0); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	m.Move(10, testRange, testWidth, t0.Add(20*time.Second))

	if m.CheckWatchdog(t0.Add(40 * time.Second)) {
		t.Error("watchdog must count from the last event, not gesture start")
	}
}
