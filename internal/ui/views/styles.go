package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Dir       lipgloss.Style
	File      lipgloss.Style
	Highlight lipgloss.Style
	Selection lipgloss.Style
	Marker    lipgloss.Style
	Status    lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Score     lipgloss.Style
	HelpBox   lipgloss.Style
	HelpKey   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dir:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		File:      lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		HelpKey: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}
