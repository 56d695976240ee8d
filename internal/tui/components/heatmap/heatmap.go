// Package heatmap renders per-vehicle utilization as colored bands,
// the terminal version of the dashboard's utilization heatmap.
package heatmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/stats"
)

var bandStyles = map[stats.HeatBand]lipgloss.Style{
	stats.HeatLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	stats.HeatModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("142")),
	stats.HeatHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	stats.HeatCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model is the heatmap component state
type Model struct {
	width  int
	height int
	fleet  stats.FleetStats
}

// New creates an empty heatmap
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

// View renders the heatmap
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Utilization Heatmap"))
	sb.WriteString("\n\n")

	cellWidth := 40
	if m.width > 0 && m.width < 70 {
		cellWidth = m.width - 30
	}
	if cellWidth < 10 {
		cellWidth = 10
	}

	for _, vs := range m.fleet.Vehicles {
		band := vs.Band()
		filled := vs.UtilizationPercent * cellWidth / 100
		if filled > cellWidth {
			filled = cellWidth
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			nameStyle.Width(20).Render(vs.Vehicle.Name),
			bandStyles[band].Render(strings.Repeat("▇", filled)+strings.Repeat(" ", cellWidth-filled)),
			legendStyle.Render(fmt.Sprintf("%3d%% %s", vs.UtilizationPercent, band)),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(legendStyle.Render("low < 25%  ·  moderate < 50%  ·  high < 70%  ·  critical ≥ 70%"))

	return sb.String()
}
