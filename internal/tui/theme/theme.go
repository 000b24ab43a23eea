package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorPayAttention).Bold(true)
}

func (t Theme) Background() color.Color {
	return t.background
}

// ScoreColor maps a 0-100 score to its band. Zero means not available.
func ScoreColor(score int) color.Color {
	switch {
	case score <= 0:
		return ColorNotAvailable
	case score >= 85:
		return ColorOptimal
	case score >= 70:
		return ColorGood
	default:
		return ColorPayAttention
	}
}
