package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/thoura/internal/tui/theme"
)

const help = "r refresh · q quit"

// Footer is a single line with key help on the left and status on the right.
type Footer struct {
	status  string
	width   int
	padding int
}

func New(status string, width int) Footer {
	return Footer{
		status:  status,
		width:   width,
		padding: 2,
	}
}

func (f Footer) Render() string {
	left := lipgloss.NewStyle().Foreground(theme.ColorDim).Render(help)

	spacerWidth := max(f.width-lipgloss.Width(left)-lipgloss.Width(f.status)-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacerWidth) + f.status)
}
