// Package filterpanel renders and edits the filter criteria. The
// panel owns a cursor over the filter fields; the root model feeds it
// navigation and cycle actions and reads the criteria back.
package filterpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

type field int

const (
	fieldVehicleType field = iota
	fieldBookingStatus
	fieldBookingType
	fieldSortBy
	fieldDateRange
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model is the filter panel state
type Model struct {
	criteria models.FilterCriteria
	cursor   field
	width    int
	height   int
}

// New creates a panel editing the given criteria
func New(criteria models.FilterCriteria, width, height int) Model {
	return Model{criteria: criteria, width: width, height: height}
}

// SetSize updates the component dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Criteria returns the current criteria
func (m *Model) Criteria() models.FilterCriteria {
	return m.criteria
}

// SetCriteria replaces the edited criteria
func (m *Model) SetCriteria(c models.FilterCriteria) {
	m.criteria = c
}

// CursorUp moves to the previous field
func (m *Model) CursorUp() {
	m.cursor = (m.cursor - 1 + fieldCount) % fieldCount
}

// CursorDown moves to the next field
func (m *Model) CursorDown() {
	m.cursor = (m.cursor + 1) % fieldCount
}

// Cycle advances the focused field's value. dir is +1 or -1. The date
// range field shifts by a week per step instead of cycling.
func (m *Model) Cycle(dir int) {
	switch m.cursor {
	case fieldVehicleType:
		opts := []string{constants.FilterAll}
		for _, t := range constants.VehicleTypes {
			opts = append(opts, string(t))
		}
		m.criteria.VehicleType = cycle(opts, m.criteria.VehicleType, dir)
	case fieldBookingStatus:
		opts := []string{constants.FilterAll}
		for _, s := range constants.BookingStatuses {
			opts = append(opts, string(s))
		}
		m.criteria.BookingStatus = cycle(opts, m.criteria.BookingStatus, dir)
	case fieldBookingType:
		opts := []string{constants.FilterAll}
		for _, t := range constants.BookingTypes {
			opts = append(opts, string(t))
		}
		m.criteria.BookingType = cycle(opts, m.criteria.BookingType, dir)
	case fieldSortBy:
		opts := make([]string, len(constants.SortOrders))
		for i, o := range constants.SortOrders {
			opts[i] = string(o)
		}
		m.criteria.SortBy = constants.SortOrder(cycle(opts, string(m.criteria.SortBy), dir))
	case fieldDateRange:
		shift := 7 * dir
		m.criteria.DateRange.Start = m.criteria.DateRange.Start.AddDate(0, 0, shift)
		m.criteria.DateRange.End = m.criteria.DateRange.End.AddDate(0, 0, shift)
	}
}

func cycle(opts []string, current string, dir int) string {
	idx := 0
	for i, o := range opts {
		if o == current {
			idx = i
			break
		}
	}
	return opts[(idx+dir+len(opts))%len(opts)]
}

// View renders the panel
func (m Model) View() string {
	rows := []struct {
		f     field
		label string
		value string
	}{
		{fieldVehicleType, "Vehicle type", m.criteria.VehicleType},
		{fieldBookingStatus, "Booking status", m.criteria.BookingStatus},
		{fieldBookingType, "Booking type", m.criteria.BookingType},
		{fieldSortBy, "Sort by", string(m.criteria.SortBy)},
		{fieldDateRange, "Date range", fmt.Sprintf("%s → %s",
			m.criteria.DateRange.Start.Format(constants.DateFormat),
			m.criteria.DateRange.End.Format(constants.DateFormat))},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Filters"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		marker := "  "
		style := valueStyle
		if r.f == m.cursor {
			marker = cursorStyle.Render("> ")
			style = cursorStyle
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", marker,
			labelStyle.Width(16).Render(r.label), style.Render(r.value)))
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("↑/↓ field · ←/→ change · esc close"))
	return sb.String()
}
