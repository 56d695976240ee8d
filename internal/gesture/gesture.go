// Package gesture tracks the single in-progress drag or resize. The
// machine is a pure value object: the TUI feeds it pointer positions
// and it answers with preview intervals and, at gesture end, a commit
// proposal. It never touches the store and never checks conflicts;
// that happens exactly once, when the proposal is handed to the
// planner.
package gesture

import (
	"errors"
	"fmt"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
)

// State is the machine's current phase
type State int

const (
	Idle State = iota
	Dragging
	ResizingStart
	ResizingEnd
)

// Edge selects which end of a booking a resize moves
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// WatchdogTimeout is how long the machine tolerates pointer silence
// during an active gesture before snapping back to Idle. Covers the
// case where the terminal never delivers a release event.
const WatchdogTimeout = 30 * time.Second

var (
	// ErrGestureActive is returned when a gesture start is attempted
	// while another gesture is in progress
	ErrGestureActive = errors.New("another gesture is already active")

	// ErrMalformedGesture is returned when gesture data is missing or
	// inconsistent; the machine resets to Idle and the caller should
	// log and move on
	ErrMalformedGesture = errors.New("malformed gesture data")
)

// Proposal is the mutation a completed gesture asks for. Drag
// proposals may change the vehicle; resize proposals never do.
type Proposal struct {
	BookingID string
	VehicleID string
	Start     time.Time
	End       time.Time
}

// Machine holds at most one active gesture
type Machine struct {
	state State

	bookingID         string
	originalVehicleID string
	originalStart     time.Time
	originalEnd       time.Time
	duration          time.Duration

	anchor   time.Time // the non-moving edge during a resize
	baseline float64   // pointer x at the last processed event
	deltaPx  float64   // accumulated pointer travel since gesture start

	previewStart time.Time
	previewEnd   time.Time

	lastEvent time.Time
}

// NewMachine returns an idle machine
func NewMachine() *Machine {
	return &Machine{state: Idle}
}

// State returns the current phase
func (m *Machine) State() State { return m.state }

// BookingID returns the booking the active gesture is manipulating,
// empty when idle
func (m *Machine) BookingID() string {
	if m.state == Idle {
		return ""
	}
	return m.bookingID
}

// Preview returns the tentative interval for rendering during an
// active gesture. Visual only; nothing is committed until gesture end.
func (m *Machine) Preview() (start, end time.Time, ok bool) {
	if m.state == Idle {
		return time.Time{}, time.Time{}, false
	}
	return m.previewStart, m.previewEnd, true
}

// StartDrag begins a drag-move of the given booking. Rejected while
// any gesture, including a resize, is active.
func (m *Machine) StartDrag(b models.Booking, now time.Time) error {
	if m.state != Idle {
		return ErrGestureActive
	}
	m.state = Dragging
	m.bookingID = b.ID
	m.originalVehicleID = b.VehicleID
	m.originalStart = b.StartDate
	m.originalEnd = b.EndDate
	m.duration = b.EndDate.Sub(b.StartDate)
	m.previewStart = b.StartDate
	m.previewEnd = b.EndDate
	m.lastEvent = now
	return nil
}

// StartResize begins an edge resize. The opposite edge is anchored and
// the pointer position becomes the movement baseline.
func (m *Machine) StartResize(b models.Booking, edge Edge, pointerX float64, now time.Time) error {
	if m.state != Idle {
		return ErrGestureActive
	}
	if edge == EdgeStart {
		m.state = ResizingStart
		m.anchor = b.EndDate
	} else {
		m.state = ResizingEnd
		m.anchor = b.StartDate
	}
	m.bookingID = b.ID
	m.originalVehicleID = b.VehicleID
	m.originalStart = b.StartDate
	m.originalEnd = b.EndDate
	m.duration = b.EndDate.Sub(b.StartDate)
	m.baseline = pointerX
	m.deltaPx = 0
	m.previewStart = b.StartDate
	m.previewEnd = b.EndDate
	m.lastEvent = now
	return nil
}

// Move processes intermediate pointer motion, updating the preview
// interval only. During a drag the pointer x is the bar's tentative
// left edge within the row; during a resize it accumulates the delta
// since the baseline.
func (m *Machine) Move(pointerX float64, r models.DateRange, totalWidth float64, now time.Time) {
	m.lastEvent = now
	switch m.state {
	case Dragging:
		start := timeline.PixelToDate(pointerX, r, totalWidth)
		m.previewStart = start
		m.previewEnd = start.Add(m.duration)
	case ResizingStart, ResizingEnd:
		m.deltaPx += pointerX - m.baseline
		m.baseline = pointerX
		m.previewStart, m.previewEnd = m.resizedInterval(r, totalWidth)
	}
}

// EndDrag completes a drag over the given vehicle row. The drop x
// offset is converted to a date and the original duration is
// preserved. The machine returns to Idle regardless of outcome.
func (m *Machine) EndDrag(targetVehicleID string, dropX float64, r models.DateRange, totalWidth float64) (Proposal, error) {
	defer m.reset()
	if m.state != Dragging {
		return Proposal{}, fmt.Errorf("end drag in state %d: %w", m.state, ErrMalformedGesture)
	}
	if m.bookingID == "" || targetVehicleID == "" {
		return Proposal{}, fmt.Errorf("drag payload incomplete: %w", ErrMalformedGesture)
	}

	start := timeline.PixelToDate(dropX, r, totalWidth)
	return Proposal{
		BookingID: m.bookingID,
		VehicleID: targetVehicleID,
		Start:     start,
		End:       start.Add(m.duration),
	}, nil
}

// EndResize completes an edge resize. The accumulated pixel delta is
// converted to days and applied to the moving edge only; an inverted
// interval is clamped to one hour on the anchored side. The machine
// returns to Idle regardless of outcome.
func (m *Machine) EndResize(pointerX float64, r models.DateRange, totalWidth float64) (Proposal, error) {
	defer m.reset()
	if m.state != ResizingStart && m.state != ResizingEnd {
		return Proposal{}, fmt.Errorf("end resize in state %d: %w", m.state, ErrMalformedGesture)
	}

	m.deltaPx += pointerX - m.baseline
	start, end := m.resizedInterval(r, totalWidth)
	return Proposal{
		BookingID: m.bookingID,
		VehicleID: m.originalVehicleID,
		Start:     start,
		End:       end,
	}, nil
}

// Abort abandons the active gesture with no mutation
func (m *Machine) Abort() {
	m.reset()
}

// CheckWatchdog forces the machine back to Idle when no pointer event
// has arrived within WatchdogTimeout. Returns true if a stuck gesture
// was cleared.
func (m *Machine) CheckWatchdog(now time.Time) bool {
	if m.state == Idle {
		return false
	}
	if now.Sub(m.lastEvent) < WatchdogTimeout {
		return false
	}
	m.reset()
	return true
}

func (m *Machine) resizedInterval(r models.DateRange, totalWidth float64) (time.Time, time.Time) {
	pxPerDay := timeline.DayWidth(r, totalWidth)
	dayDelta := m.deltaPx / pxPerDay
	shift := time.Duration(dayDelta * 24 * float64(time.Hour))

	start := m.originalStart
	end := m.originalEnd
	gap := constants.MinResizeGapHours * time.Hour

	if m.state == ResizingStart {
		start = m.originalStart.Add(shift)
		if !start.Before(end) {
			start = end.Add(-gap)
		}
	} else {
		end = m.originalEnd.Add(shift)
		if !end.After(start) {
			end = start.Add(gap)
		}
	}
	return start, end
}

func (m *Machine) reset() {
	*m = Machine{state: Idle}
}
