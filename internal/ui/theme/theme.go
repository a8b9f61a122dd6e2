package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects a color palette.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Palette is a full set of UI colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

var palettes = map[Mode]Palette{
	Dark: {
		Primary:   lipgloss.Color("#A729F5"), // Purple
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#26D782"), // Green
		Error:     lipgloss.Color("#EE5454"), // Red
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#ABC1E1"), // Light navy
		BgCard:    lipgloss.Color("#3B4D66"), // Navy
		Border:    lipgloss.Color("#626C7F"), // Grey navy
	},
	Light: {
		Primary:   lipgloss.Color("#7E22CE"),
		Secondary: lipgloss.Color("#0F766E"),
		Accent:    lipgloss.Color("#C2410C"),
		Success:   lipgloss.Color("#15803D"),
		Error:     lipgloss.Color("#B91C1C"),
		Text:      lipgloss.Color("#313E51"), // Dark navy
		TextDim:   lipgloss.Color("#626C7F"),
		BgCard:    lipgloss.Color("#F4F6FA"),
		Border:    lipgloss.Color("#D1D5DB"),
	},
}

// Current colors. Screens read these at render time, so Apply takes effect
// on the next frame.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

var current Mode

func init() {
	Apply(Dark)
}

// ParseMode parses a stored theme name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Dark, Light:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// Current returns the active mode.
func Current() Mode {
	return current
}

// Apply switches the process-wide palette.
func Apply(m Mode) {
	p, ok := palettes[m]
	if !ok {
		m, p = Dark, palettes[Dark]
	}
	current = m
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgCard = p.BgCard
	Border = p.Border
}

// Toggle switches between dark and light and returns the new mode.
func Toggle() Mode {
	if current == Light {
		Apply(Dark)
	} else {
		Apply(Light)
	}
	return current
}

// Centered renders s centered across width in the given color.
func Centered(width int, c color.Color, bold bool, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(c).
		Bold(bold).
		Render(s)
}
