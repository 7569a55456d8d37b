package style

import "github.com/charmbracelet/lipgloss"

var (
	CrossIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("(FAIL) ").Bold(true)
	TickIcon    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("(OK)   ").Bold(true)
	ChevronIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).SetString("> ").Bold(true)
)
