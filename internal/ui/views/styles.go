package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Box           lipgloss.Style
	Prompt        lipgloss.Style
	Row           lipgloss.Style
	SelectedRow   lipgloss.Style
	Marker        lipgloss.Style
	Match         lipgloss.Style
	SelectedMatch lipgloss.Style
	Dim           lipgloss.Style
	Scroll        lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusScan    lipgloss.Style
	PreviewBox    lipgloss.Style
	PreviewTitle  lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Background(lipgloss.Color("238")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectedMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusScan:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PreviewTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Help:         lipgloss.NewStyle().Faint(true),
	}
}
