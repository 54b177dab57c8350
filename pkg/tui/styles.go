package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#04B575")
	Warning = lipgloss.Color("#FFCC00")
	Error   = lipgloss.Color("#FF5F56")
	Muted   = lipgloss.Color("#626262")
	White   = lipgloss.Color("#FFFFFF")
	Cyan    = lipgloss.Color("#00CED1")

	// StateColors colours relay journal states
	StateColors = map[string]lipgloss.Color{
		"Submitted": Cyan,
		"Confirmed": Primary,
		"Reverted":  Warning,
		"Failed":    Error,
	}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Primary).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Primary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)

	LinkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(Cyan)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)
)

func stateStyle(state string) lipgloss.Style {
	if c, ok := StateColors[state]; ok {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}
	return ValueStyle
}
