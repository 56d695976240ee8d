package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/gesture"
	"github.com/fleetdeck/fleetdeck/internal/logger"
	"github.com/fleetdeck/fleetdeck/internal/schedule"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
	"github.com/fleetdeck/fleetdeck/internal/tui/components/chart"
)

// chartOriginY is the screen row where the chart component starts:
// the tab bar and the range line sit above it
const chartOriginY = 2

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.chartModel.SetSize(msg.Width, contentHeight)
		m.statsModel.SetSize(msg.Width, contentHeight)
		m.heatmapModel.SetSize(msg.Width, contentHeight)
		m.filterModel.SetSize(msg.Width, contentHeight)
		return m, nil

	case tickMsg:
		if m.machine.CheckWatchdog(time.Time(msg)) {
			m.chartModel.ClearPreview()
			m.statusMsg = "Gesture timed out"
			logger.Warn("gesture watchdog fired, returning to idle")
		}
		m.refresh()
		return m, tick()

	case tea.MouseMsg:
		if m.state == constants.StateChart {
			return m.updateMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case constants.StateEditBooking, constants.StateAddBooking:
			return m.updateForm(msg)
		case constants.StateFilters:
			return m.updateFilters(msg)
		default:
			return m.updateMain(msg)
		}
	}

	return m, nil
}

// updateMain handles keys on the chart, stats and heatmap panels
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// an active gesture owns the keyboard
	if m.state == constants.StateChart && m.machine.State() != gesture.Idle {
		return m.updateGestureKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.state = nextPanel(m.state, 1)

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextPanel(m.state, -1)

	case key.Matches(msg, m.keys.Filters):
		m.previousState = m.state
		m.filterModel.SetCriteria(m.filters)
		m.state = constants.StateFilters

	case key.Matches(msg, m.keys.ViewMode):
		switch m.viewMode {
		case constants.ViewDay:
			m.viewMode = constants.ViewWeek
		case constants.ViewWeek:
			m.viewMode = constants.ViewMonth
		default:
			m.viewMode = constants.ViewDay
		}
		m.refresh()

	case key.Matches(msg, m.keys.PrevPeriod):
		m.currentDate = stepPeriod(m.currentDate, m.viewMode, -1)
		m.refresh()

	case key.Matches(msg, m.keys.NextPeriod):
		m.currentDate = stepPeriod(m.currentDate, m.viewMode, 1)
		m.refresh()

	case key.Matches(msg, m.keys.Today):
		m.currentDate = time.Now()
		m.refresh()
	}

	if m.state != constants.StateChart {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.chartModel.SelectNext()

	case key.Matches(msg, m.keys.Prev):
		m.chartModel.SelectPrev()

	case key.Matches(msg, m.keys.Edit):
		if b, ok := m.chartModel.Selected(); ok {
			m.editingID = b.ID
			m.bookingForm = formValuesFor(b)
			m.form = m.newBookingForm(m.bookingForm)
			m.state = constants.StateEditBooking
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.Add):
		m.editingID = ""
		m.bookingForm = m.emptyFormValues()
		m.form = m.newBookingForm(m.bookingForm)
		m.state = constants.StateAddBooking
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Grab):
		if b, ok := m.chartModel.Selected(); ok {
			if err := m.machine.StartDrag(b, time.Now()); err != nil {
				logger.Warn("drag rejected", "error", err)
				break
			}
			m.kbX = m.chartModel.LeftOf(b)
			m.kbVehicle = b.VehicleID
			m.statusMsg = "Moving " + b.Title
			m.syncPreview()
		}

	case key.Matches(msg, m.keys.ResizeStart):
		m.startKeyboardResize(gesture.EdgeStart)

	case key.Matches(msg, m.keys.ResizeEnd):
		m.startKeyboardResize(gesture.EdgeEnd)
	}

	return m, nil
}

func (m *Model) startKeyboardResize(edge gesture.Edge) {
	b, ok := m.chartModel.Selected()
	if !ok {
		return
	}
	left := m.chartModel.LeftOf(b)
	x := left
	if edge == gesture.EdgeEnd {
		x = left + 1
	}
	if err := m.machine.StartResize(b, edge, x, time.Now()); err != nil {
		logger.Warn("resize rejected", "error", err)
		return
	}
	m.kbX = x
	m.kbVehicle = b.VehicleID
	m.statusMsg = "Resizing " + b.Title
	m.syncPreview()
}

// updateGestureKeys drives an active keyboard gesture: arrows move the
// tentative bar one day column per press, enter commits, esc abandons.
func (m Model) updateGestureKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rng := m.chartModel.Range()
	w := m.chartModel.ChartWidth()
	step := timeline.DayWidth(rng, w)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.kbX -= step
		m.machine.Move(m.kbX, rng, w, time.Now())
		m.syncPreview()

	case key.Matches(msg, m.keys.Right):
		m.kbX += step
		m.machine.Move(m.kbX, rng, w, time.Now())
		m.syncPreview()

	case key.Matches(msg, m.keys.Up):
		if m.machine.State() == gesture.Dragging {
			m.kbVehicle = m.neighborVehicle(m.kbVehicle, -1)
			m.syncPreview()
		}

	case key.Matches(msg, m.keys.Down):
		if m.machine.State() == gesture.Dragging {
			m.kbVehicle = m.neighborVehicle(m.kbVehicle, 1)
			m.syncPreview()
		}

	case key.Matches(msg, m.keys.Commit):
		var (
			proposal gesture.Proposal
			err      error
		)
		if m.machine.State() == gesture.Dragging {
			proposal, err = m.machine.EndDrag(m.kbVehicle, m.kbX, rng, w)
		} else {
			proposal, err = m.machine.EndResize(m.kbX, rng, w)
		}
		m.finishGesture(proposal, err)

	case key.Matches(msg, m.keys.Cancel):
		m.machine.Abort()
		m.chartModel.ClearPreview()
		m.statusMsg = ""
	}

	return m, nil
}

// updateMouse translates pointer events into gesture transitions
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hit, ok := m.chartModel.HitTest(msg.X, msg.Y-chartOriginY)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok || hit.Booking == nil {
			return m, nil
		}
		m.chartModel.SelectByID(hit.Booking.ID)
		var err error
		switch hit.Zone {
		case chart.ZoneStartEdge:
			err = m.machine.StartResize(*hit.Booking, gesture.EdgeStart, hit.OffsetX, time.Now())
		case chart.ZoneEndEdge:
			err = m.machine.StartResize(*hit.Booking, gesture.EdgeEnd, hit.OffsetX, time.Now())
		default:
			err = m.machine.StartDrag(*hit.Booking, time.Now())
		}
		if err != nil {
			logger.Warn("gesture start rejected", "error", err)
			return m, nil
		}
		m.kbX = hit.OffsetX
		m.kbVehicle = hit.VehicleID
		m.syncPreview()

	case tea.MouseActionMotion:
		if m.machine.State() == gesture.Idle {
			return m, nil
		}
		if ok {
			m.kbX = hit.OffsetX
			if m.machine.State() == gesture.Dragging {
				m.kbVehicle = hit.VehicleID
			}
		}
		m.machine.Move(m.kbX, m.chartModel.Range(), m.chartModel.ChartWidth(), time.Now())
		m.syncPreview()

	case tea.MouseActionRelease:
		if m.machine.State() == gesture.Idle {
			return m, nil
		}
		rng := m.chartModel.Range()
		w := m.chartModel.ChartWidth()

		if m.machine.State() == gesture.Dragging {
			if !ok {
				// released outside any row: nothing to drop onto
				m.machine.Abort()
				m.chartModel.ClearPreview()
				logger.Warn("drag released outside drop surface, gesture aborted")
				return m, nil
			}
			proposal, err := m.machine.EndDrag(hit.VehicleID, hit.OffsetX, rng, w)
			m.finishGesture(proposal, err)
		} else {
			x := m.kbX
			if ok {
				x = hit.OffsetX
			}
			proposal, err := m.machine.EndResize(x, rng, w)
			m.finishGesture(proposal, err)
		}
	}

	return m, nil
}

// finishGesture runs the conflict-gated commit for a completed gesture.
// A conflicting proposal is discarded and the booking stays unchanged.
func (m *Model) finishGesture(p gesture.Proposal, err error) {
	m.chartModel.ClearPreview()
	if err != nil {
		logger.Warn("gesture aborted", "error", err)
		m.statusMsg = ""
		return
	}

	b, found := m.store.Booking(p.BookingID)
	if !found {
		logger.Error("gesture targeted unknown booking", "id", p.BookingID)
		m.statusMsg = ""
		return
	}

	b.VehicleID = p.VehicleID
	b.StartDate = p.Start
	b.EndDate = p.End

	switch err := m.planner.Update(b); {
	case err == nil:
		m.statusMsg = ""
		m.chartModel.SelectByID(b.ID)
	case errors.Is(err, schedule.ErrConflict):
		m.statusMsg = "Booking conflict, change discarded"
	default:
		logger.Error("gesture commit failed", "error", err)
		m.statusMsg = "Could not update booking"
	}
	m.refresh()
}

// syncPreview pushes the machine's tentative interval into the chart
func (m *Model) syncPreview() {
	start, end, ok := m.machine.Preview()
	if !ok {
		m.chartModel.ClearPreview()
		return
	}
	m.chartModel.SetPreview(m.machine.BookingID(), m.kbVehicle, start, end)
}

// updateFilters handles keys on the filter panel
func (m Model) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Filters):
		m.filters = m.filterModel.Criteria()
		m.state = m.previousState
		m.refresh()
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
		m.filterModel.CursorUp()
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
		m.filterModel.CursorDown()
	case key.Matches(msg, m.keys.Left):
		m.filterModel.Cycle(-1)
		m.filters = m.filterModel.Criteria()
		m.refresh()
	case key.Matches(msg, m.keys.Right):
		m.filterModel.Cycle(1)
		m.filters = m.filterModel.Criteria()
		m.refresh()
	}
	return m, nil
}

// updateForm delegates to the active huh form and commits on completion
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitBookingForm(); err != nil {
			if errors.Is(err, schedule.ErrConflict) {
				m.statusMsg = "Booking conflict, changes not saved"
			} else {
				m.statusMsg = "Could not save booking"
				logger.Error("form submit failed", "error", err)
			}
		} else {
			m.statusMsg = ""
		}
		m.state = constants.StateChart
		m.refresh()
	case huh.StateAborted:
		m.state = constants.StateChart
	}

	return m, cmd
}

// nextPanel cycles the three main panels
func nextPanel(s constants.SessionState, dir int) constants.SessionState {
	panels := []constants.SessionState{constants.StateChart, constants.StateStats, constants.StateHeatmap}
	idx := 0
	for i, p := range panels {
		if p == s {
			idx = i
			break
		}
	}
	return panels[(idx+dir+len(panels))%len(panels)]
}

// stepPeriod advances the anchor date by one view period
func stepPeriod(t time.Time, mode constants.ViewMode, dir int) time.Time {
	switch mode {
	case constants.ViewDay:
		return t.AddDate(0, 0, dir)
	case constants.ViewMonth:
		return t.AddDate(0, dir, 0)
	default:
		return t.AddDate(0, 0, 7*dir)
	}
}

// neighborVehicle returns the ID of the row above or below the given
// one, clamped at the chart edges
func (m *Model) neighborVehicle(id string, dir int) string {
	vehicles := m.chartModel.Vehicles()
	for i, v := range vehicles {
		if v.ID == id {
			j := i + dir
			if j < 0 || j >= len(vehicles) {
				return id
			}
			return vehicles[j].ID
		}
	}
	if len(vehicles) > 0 {
		return vehicles[0].ID
	}
	return id
}
