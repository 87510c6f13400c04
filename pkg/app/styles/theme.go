package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#DB2777")
	Secondary  = lipgloss.Color("#9333EA")
	Error      = lipgloss.Color("#DC2626")
	Info       = lipgloss.Color("#7C3AED")
	Muted      = lipgloss.Color("#6B7280")
	Foreground = lipgloss.Color("#F5F3FF")
	Surface    = lipgloss.Color("#3B0764")

	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	// Gallery title
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// One image
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status lines
	StatusLoading = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Mode tabs
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Secondary).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Padding(0, 2)

	// Pagination buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Padding(0, 2).
			Bold(true)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Background(Surface).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)
