// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/themekit/themekit/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a rendering function that applies the specified background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Standard text transformation helpers.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded heading banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// Swatch renders a small block filled with the given hex color followed by the hex value itself.
func Swatch(hex string) string {
	return Bg(lipgloss.Color(hex))("  ") + " " + hex
}

// Swatches renders one block per color, side by side.
func Swatches(hexes ...string) string {
	var b strings.Builder
	for _, hex := range hexes {
		b.WriteString(Bg(lipgloss.Color(hex))("  "))
	}
	return b.String()
}
