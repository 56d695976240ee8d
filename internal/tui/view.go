package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/gesture"
)

var panelTitles = []struct {
	state constants.SessionState
	title string
}{
	{constants.StateChart, "Chart"},
	{constants.StateStats, "Stats"},
	{constants.StateHeatmap, "Heatmap"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateEditBooking, constants.StateAddBooking:
		title := "Edit Booking"
		if m.state == constants.StateAddBooking {
			title = "New Booking"
		}
		return docStyle.Render(rangeStyle.Render(title) + "\n\n" + m.form.View())
	case constants.StateFilters:
		return docStyle.Render(m.filterModel.View())
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusLine())
	sb.WriteString("\n")

	switch m.state {
	case constants.StateStats:
		sb.WriteString(m.statsModel.View())
	case constants.StateHeatmap:
		sb.WriteString(m.heatmapModel.View())
	default:
		sb.WriteString(m.chartModel.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m))
	return sb.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(panelTitles))
	for _, p := range panelTitles {
		if p.state == m.state {
			tabs = append(tabs, activeTabStyle.Render(p.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(p.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusLine shows the visible range plus any transient message
func (m Model) renderStatusLine() string {
	rng := m.chartModel.Range()
	label := rangeStyle.Render(
		rng.Start.Format(constants.DateFormat) + " → " + rng.End.Format(constants.DateFormat) +
			"  (" + string(m.viewMode) + ")")

	parts := []string{label}
	if m.machine.State() != gesture.Idle {
		parts = append(parts, statusStyle.Render("gesture active"))
	}
	if m.statusMsg != "" {
		parts = append(parts, warningStyle.Render(m.statusMsg))
	}
	return strings.Join(parts, "  ")
}
