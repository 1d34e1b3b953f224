package ui

import "github.com/charmbracelet/lipgloss"

// Icon constants
const (
	ImposterIcon = "🕵️"
	CrewmateIcon = "🧑‍🚀"
	AdminIcon    = "🔑"
)

// Lipgloss styles shared across views
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	RoleCardStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 3).Bold(true)
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ImposterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	CrewmateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)
