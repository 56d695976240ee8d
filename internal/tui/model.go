package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/gesture"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/schedule"
	"github.com/fleetdeck/fleetdeck/internal/stats"
	"github.com/fleetdeck/fleetdeck/internal/store"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
	"github.com/fleetdeck/fleetdeck/internal/tui/components/chart"
	"github.com/fleetdeck/fleetdeck/internal/tui/components/filterpanel"
	"github.com/fleetdeck/fleetdeck/internal/tui/components/heatmap"
	"github.com/fleetdeck/fleetdeck/internal/tui/components/statspanel"
	"github.com/fleetdeck/fleetdeck/internal/view"
)

// tickMsg drives the gesture watchdog and the clock-dependent panels
type tickMsg time.Time

// tickInterval is how often the watchdog wakes up
const tickInterval = 5 * time.Second

// BookingFormModel holds the raw field values of the booking form
type BookingFormModel struct {
	Title     string
	VehicleID string
	Start     string
	End       string
	Type      string
	Status    string
	Customer  string
	Notes     string
}

// Model is the root bubbletea model
type Model struct {
	store   *store.Store
	planner *schedule.Planner
	machine *gesture.Machine

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	viewMode    constants.ViewMode
	currentDate time.Time
	filters     models.FilterCriteria

	chartModel   chart.Model
	statsModel   statspanel.Model
	heatmapModel heatmap.Model
	filterModel  filterpanel.Model

	form        *huh.Form
	bookingForm *BookingFormModel
	editingID   string // empty while adding

	// keyboard gesture cursor: tentative left-edge pixel and target row
	kbX       float64
	kbVehicle string

	statusMsg string
	width     int
	height    int
	quitting  bool
}

// NewModel builds the dashboard over the given store
func NewModel(s *store.Store, planner *schedule.Planner) Model {
	now := time.Now()
	filters := models.DefaultFilters(now)

	m := Model{
		store:        s,
		planner:      planner,
		machine:      gesture.NewMachine(),
		state:        constants.StateChart,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		viewMode:     constants.ViewWeek,
		currentDate:  now,
		filters:      filters,
		chartModel:   chart.New(0, 0),
		statsModel:   statspanel.New(0, 0),
		heatmapModel: heatmap.New(0, 0),
		filterModel:  filterpanel.New(filters, 0, 0),
	}
	m.refresh()
	return m
}

// refresh re-derives the visible data set and pushes it into the panels
func (m *Model) refresh() {
	result := view.Derive(m.store.Vehicles(), m.store.Bookings(), m.filters)
	rng := timeline.RangeForView(m.currentDate, m.viewMode)

	vehicleIDs := make([]string, len(result.Vehicles))
	for i, v := range result.Vehicles {
		vehicleIDs[i] = v.ID
	}
	visible := m.store.VisibleBookings(vehicleIDs)

	m.chartModel.SetData(result.Vehicles, visible, result.Utilization, rng, m.viewMode, time.Now())

	fleet := stats.Compute(m.store.Vehicles(), m.store.Bookings(), time.Now())
	m.statsModel.SetStats(fleet)
	m.heatmapModel.SetStats(fleet)
}

// ShortHelp implements help.KeyMap
func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateChart {
		if m.machine.State() == gesture.Idle {
			keys = append(keys, m.keys.Grab, m.keys.ResizeStart, m.keys.Edit, m.keys.Add)
		} else {
			keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Commit, m.keys.Cancel)
		}
	}
	return keys
}

// FullHelp implements help.KeyMap
func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Next, m.keys.Prev, m.keys.ViewMode, m.keys.PrevPeriod, m.keys.NextPeriod, m.keys.Today, m.keys.Filters}
	gestures := []key.Binding{m.keys.Grab, m.keys.ResizeStart, m.keys.ResizeEnd, m.keys.Commit, m.keys.Cancel, m.keys.Edit, m.keys.Add}
	return [][]key.Binding{global, navigation, gestures}
}

// Init starts the watchdog tick
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
