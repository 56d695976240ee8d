// Package chart renders the Gantt surface: one row per vehicle, day
// columns across, bookings as colored bars. It also answers hit-test
// queries so the root model can translate mouse coordinates into
// gestures.
package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/timeline"
)

// InfoColWidth is the fixed width of the vehicle info column
const InfoColWidth = 26

// Zone identifies what part of a booking bar a pointer landed on
type Zone int

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneStartEdge
	ZoneEndEdge
)

// Hit is the result of translating a pointer position
type Hit struct {
	VehicleID string
	OffsetX   float64 // pixel offset within the row's timeline area
	Booking   *models.Booking
	Zone      Zone
}

// Model is the chart component state
type Model struct {
	width  int
	height int

	vehicles    []models.Vehicle
	bookings    []models.Booking
	utilization map[string]int
	rng         models.DateRange
	mode        constants.ViewMode
	labels      []timeline.HeaderLabel
	today       time.Time

	selected int

	previewID      string
	previewVehicle string
	previewStart   time.Time
	previewEnd     time.Time
}

// New creates an empty chart
func New(width, height int) Model {
	return Model{width: width, height: height, selected: -1}
}

// SetSize updates the component dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the visible data set. Selection is preserved by
// booking ID where possible.
func (m *Model) SetData(vehicles []models.Vehicle, bookings []models.Booking, utilization map[string]int, rng models.DateRange, mode constants.ViewMode, today time.Time) {
	var selectedID string
	if b, ok := m.Selected(); ok {
		selectedID = b.ID
	}

	m.vehicles = vehicles
	m.bookings = bookings
	m.utilization = utilization
	m.rng = rng
	m.mode = mode
	m.labels = timeline.HeaderLabels(rng, mode)
	m.today = today

	m.selected = -1
	for i, b := range bookings {
		if b.ID == selectedID {
			m.selected = i
			break
		}
	}
	if m.selected == -1 && len(bookings) > 0 {
		m.selected = 0
	}
}

// Vehicles returns the rendered vehicle rows in display order
func (m *Model) Vehicles() []models.Vehicle {
	return m.vehicles
}

// Selected returns the currently selected booking
func (m *Model) Selected() (models.Booking, bool) {
	if m.selected < 0 || m.selected >= len(m.bookings) {
		return models.Booking{}, false
	}
	return m.bookings[m.selected], true
}

// SelectNext moves the selection forward
func (m *Model) SelectNext() {
	if len(m.bookings) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.bookings)
}

// SelectPrev moves the selection backward
func (m *Model) SelectPrev() {
	if len(m.bookings) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.bookings)) % len(m.bookings)
}

// SelectByID moves the selection to the given booking if visible
func (m *Model) SelectByID(id string) {
	for i, b := range m.bookings {
		if b.ID == id {
			m.selected = i
			return
		}
	}
}

// SetPreview overlays a tentative interval for the given booking while
// a gesture is active. Rendering only; the underlying data is untouched.
func (m *Model) SetPreview(bookingID, vehicleID string, start, end time.Time) {
	m.previewID = bookingID
	m.previewVehicle = vehicleID
	m.previewStart = start
	m.previewEnd = end
}

// ClearPreview removes the gesture overlay
func (m *Model) ClearPreview() {
	m.previewID = ""
	m.previewVehicle = ""
}

// ChartWidth returns the width of the timeline area in cells
func (m *Model) ChartWidth() float64 {
	w := m.width - InfoColWidth
	if w < 1 {
		w = 1
	}
	return float64(w)
}

// Range returns the chart's current date range
func (m *Model) Range() models.DateRange { return m.rng }

// LeftOf returns the rendered left offset of a booking within the
// timeline area, used as the pixel baseline for keyboard gestures
func (m *Model) LeftOf(b models.Booking) float64 {
	p := timeline.Layout(b.StartDate, b.EndDate, m.rng, m.ChartWidth())
	if !p.Visible {
		return 0
	}
	return p.Left
}

// HitTest translates a component-relative pointer position. Row 0 is
// the header; vehicle rows start at row 1.
func (m *Model) HitTest(x, y int) (Hit, bool) {
	row := y - 1
	if row < 0 || row >= len(m.vehicles) || x < InfoColWidth {
		return Hit{}, false
	}
	vehicle := m.vehicles[row]
	offset := float64(x - InfoColWidth)

	hit := Hit{VehicleID: vehicle.ID, OffsetX: offset, Zone: ZoneNone}
	for i := range m.bookings {
		b := &m.bookings[i]
		if b.VehicleID != vehicle.ID {
			continue
		}
		p := timeline.Layout(b.StartDate, b.EndDate, m.rng, m.ChartWidth())
		if !p.Visible {
			continue
		}
		left := int(math.Round(p.Left))
		right := int(math.Round(p.Left + p.Width))
		cell := int(offset)
		if cell < left || cell >= right {
			continue
		}
		hit.Booking = b
		switch {
		case cell == left:
			hit.Zone = ZoneStartEdge
		case cell == right-1:
			hit.Zone = ZoneEndEdge
		default:
			hit.Zone = ZoneBody
		}
		return hit, true
	}
	return hit, true
}

// View renders the chart
func (m *Model) View() string {
	if len(m.vehicles) == 0 {
		return emptyStyle.Render("No vehicles match the current filters.")
	}

	rows := make([]string, 0, len(m.vehicles)+1)
	rows = append(rows, m.renderHeader())
	for _, v := range m.vehicles {
		rows = append(rows, m.renderRow(v))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderHeader() string {
	chartWidth := int(m.ChartWidth())
	dayWidth := m.ChartWidth() / float64(len(m.labels))

	cells := make([]string, 0, len(m.labels))
	used := 0
	for i, l := range m.labels {
		w := int(math.Round(float64(i+1)*dayWidth)) - used
		if used+w > chartWidth {
			w = chartWidth - used
		}
		if w <= 0 {
			continue
		}
		used += w
		label := l.Label
		if len(label) > w {
			label = label[:w]
		}
		style := headerDayStyle
		if l.IsWeekend {
			style = headerWeekendStyle
		}
		cells = append(cells, style.Width(w).Render(label))
	}

	info := headerInfoStyle.Width(InfoColWidth).Render("Vehicle")
	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{info}, cells...)...)
}

func (m *Model) renderRow(v models.Vehicle) string {
	util := m.utilization[v.ID]
	info := infoStyle.Width(InfoColWidth).Render(
		fmt.Sprintf("%s %s · %d%%", v.Name, v.TypeName(), util))

	timelineArea := m.renderTimeline(v)
	return lipgloss.JoinHorizontal(lipgloss.Top, info, timelineArea)
}

// cell is one rendered column of a vehicle row
type cell struct {
	r     rune
	style lipgloss.Style
}

func (m *Model) renderTimeline(v models.Vehicle) string {
	width := int(m.ChartWidth())
	dayWidth := m.ChartWidth() / float64(len(m.labels))

	cells := make([]cell, width)
	for x := range cells {
		day := int(float64(x) / dayWidth)
		if day >= len(m.labels) {
			day = len(m.labels) - 1
		}
		style := gridStyle
		switch {
		case sameDay(m.labels[day].Date, m.today):
			style = todayStyle
		case m.labels[day].IsWeekend:
			style = weekendStyle
		}
		cells[x] = cell{r: ' ', style: style}
	}

	selectedID := ""
	if b, ok := m.Selected(); ok {
		selectedID = b.ID
	}

	for i := range m.bookings {
		b := m.bookings[i]
		isPreview := b.ID == m.previewID
		if isPreview {
			// a dragged booking renders on its preview row only
			if m.previewVehicle != v.ID {
				continue
			}
		} else if b.VehicleID != v.ID {
			continue
		}

		start, end := b.StartDate, b.EndDate
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color()))
		if isPreview {
			start, end = m.previewStart, m.previewEnd
			barStyle = barStyle.Faint(true)
		} else if b.ID == selectedID {
			barStyle = barStyle.Reverse(true)
		}

		p := timeline.Layout(start, end, m.rng, m.ChartWidth())
		if !p.Visible {
			continue
		}
		left := int(math.Round(p.Left))
		right := int(math.Round(p.Left + p.Width))
		if right > width {
			right = width
		}

		indicator := []rune(b.StatusIndicator())[0]
		title := []rune(b.Title)
		for x := left; x < right && x >= 0; x++ {
			r := indicator
			// overlay the title inside the bar, one cell of padding
			if ti := x - left - 1; ti >= 0 && ti < len(title) && right-left > len(title)+1 {
				r = title[ti]
			}
			cells[x] = cell{r: r, style: barStyle}
		}
	}

	return renderCells(cells)
}

// renderCells groups contiguous cells sharing a style into one Render
// call to keep the escape-sequence count down
func renderCells(cells []cell) string {
	var sb strings.Builder
	i := 0
	for i < len(cells) {
		j := i
		var run strings.Builder
		for j < len(cells) && sameStyle(cells[j].style, cells[i].style) {
			run.WriteRune(cells[j].r)
			j++
		}
		sb.WriteString(cells[i].style.Render(run.String()))
		i = j
	}
	return sb.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetReverse() == b.GetReverse() &&
		a.GetFaint() == b.GetFaint()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
