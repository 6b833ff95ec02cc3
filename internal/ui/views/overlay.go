package views

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderOverlay centers box on a width x height screen. Boxes larger than
// the screen are placed at the top-left corner.
func RenderOverlay(box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// BoxWidth returns the width available for content inside the picker box
// when the whole box must fit in width.
func BoxWidth(styles *Styles, width int) int {
	return max(10, width-styles.Box.GetHorizontalFrameSize())
}
