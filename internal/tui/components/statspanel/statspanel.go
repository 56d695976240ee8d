// Package statspanel renders the dashboard statistics: per-vehicle
// utilization with booking counts, fleet totals, and the status
// breakdown.
package statspanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))
)

// Model is the statistics panel state
type Model struct {
	width  int
	height int
	fleet  stats.FleetStats
}

// New creates an empty panel
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetSize updates the component dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStats replaces the rendered aggregate
func (m *Model) SetStats(fleet stats.FleetStats) {
	m.fleet = fleet
}

// View renders the panel
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Fleet Utilization"))
	sb.WriteString("\n\n")

	barWidth := 30
	if m.width > 0 && m.width < 60 {
		barWidth = m.width / 2
	}

	for _, vs := range m.fleet.Vehicles {
		pct := vs.UtilizationPercent
		filled := pct * barWidth / 100
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		barStyle := okStyle
		if pct > 70 {
			barStyle = criticalStyle
		}

		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			nameStyle.Width(22).Render(fmt.Sprintf("%s (%s)", vs.Vehicle.Name, vs.Vehicle.TypeName())),
			barStyle.Render(bar),
			dimStyle.Render(fmt.Sprintf("%3d%% · %d bookings, %d upcoming", pct, vs.TotalBookings, vs.UpcomingBookings)),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Bookings"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Total: %d    Upcoming (30d): %d\n",
		m.fleet.TotalBookings, m.fleet.UpcomingCount))

	for _, status := range constants.BookingStatuses {
		if n, ok := m.fleet.StatusBreakdown[status]; ok {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %d", constants.BookingStatusName[status], n)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
