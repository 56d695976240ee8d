package chart

import "github.com/charmbracelet/lipgloss"

var (
	headerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	headerDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	headerWeekendStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	gridStyle = lipgloss.NewStyle()

	weekendStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235"))

	todayStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)
