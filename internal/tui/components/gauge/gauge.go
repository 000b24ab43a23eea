package gauge

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/thoura/internal/tui/theme"
)

// DefaultSize is the dial's width and height in braille dots (2 per column,
// 4 per row).
const DefaultSize = 40

const (
	emptyBraille rune = '⠀'
	noData            = "--"
)

// Gauge is a dial with the value printed in its middle and a label beneath.
type Gauge struct {
	Value     *float64 // nil means no data
	Max       float64
	Label     string
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color
	size      int
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

// WithSize sets the dial size in dots, rounded down to whole rows.
func WithSize(dots int) Option {
	return func(g *Gauge) { g.size = max(dots-dots%4, 8) }
}

func New(value *float64, maxValue float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:     value,
		Max:       maxValue,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
		size:      DefaultSize,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return min(max(*g.Value/g.Max, 0), 1)
}

func (g Gauge) valueText() string {
	if g.Value == nil {
		return noData
	}
	if g.Max == 100 {
		return fmt.Sprintf("%.0f", *g.Value)
	}
	return fmt.Sprintf("%.1f", *g.Value)
}

// cells rasterizes the dial. fill holds the progress dots only.
func (g Gauge) cells() (track, fill [][]rune) {
	var (
		center = float64(g.size) / 2
		radius = center - 1
	)

	trackCanvas := drawille.NewCanvas()
	drawDial(&trackCanvas, center, center, radius)

	fillCanvas := drawille.NewCanvas()
	drawProgress(&fillCanvas, center, center, radius, g.fraction())

	return grid(&trackCanvas, g.size, g.size), grid(&fillCanvas, g.size, g.size)
}

func (g Gauge) Render() string {
	track, fill := g.cells()

	var (
		trackStyle = lipgloss.NewStyle().Foreground(g.BgColor)
		fillStyle  = lipgloss.NewStyle().Foreground(g.Color)
		valueStyle = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true)

		value     = []rune(g.valueText())
		valueRow  = len(track) / 2
		cols      = g.size / 2
		valueFrom = (cols - len(value)) / 2
	)

	lines := make([]string, len(track))
	for i := range track {
		var b strings.Builder
		for j := 0; j < cols; j++ {
			if i == valueRow && j == valueFrom {
				b.WriteString(valueStyle.Render(string(value)))
				j += len(value) - 1
				continue
			}

			switch {
			case hasDots(fill[i][j]):
				b.WriteString(fillStyle.Render(string(combine(track[i][j], fill[i][j]))))
			case hasDots(track[i][j]):
				b.WriteString(trackStyle.Render(string(track[i][j])))
			default:
				b.WriteRune(' ')
			}
		}
		lines[i] = b.String()
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(cols).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		strings.Join(lines, "\n"),
		labelStyle.Render(g.Label),
	)
}

// grid reads a width x height dot canvas back as exactly height/4 rows of
// width/2 runes.
func grid(canvas *drawille.Canvas, width, height int) [][]rune {
	var (
		cols = width / 2
		rows = height / 4
		raw  = canvas.Rows(0, 0, width-1, height-1)
		out  = make([][]rune, rows)
	)

	for i := range rows {
		line := make([]rune, cols)
		for j := range line {
			line[j] = emptyBraille
		}
		if i < len(raw) {
			copy(line, []rune(raw[i]))
		}
		out[i] = line
	}
	return out
}

func hasDots(r rune) bool {
	return r > emptyBraille && r <= 0x28FF
}

// combine ORs the dot patterns of two braille runes.
func combine(a, b rune) rune {
	if !hasDots(a) {
		return b
	}
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}
