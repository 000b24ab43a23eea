// Package sparkline draws a braille line chart of a sample series.
package sparkline

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
)

const emptyBraille rune = '⠀'

// Sparkline plots Values across Width x Height terminal cells. Samples equal
// to zero are treated as gaps; the ring reports 0 when it has no reading.
type Sparkline struct {
	Values []float64
	Width  int
	Height int
	Color  color.Color
	Unit   string
}

func New(values []int, width, height int, c color.Color, unit string) Sparkline {
	fs := make([]float64, len(values))
	for i, v := range values {
		fs[i] = float64(v)
	}
	return Sparkline{Values: fs, Width: max(width, 1), Height: max(height, 1), Color: c, Unit: unit}
}

// Range returns the smallest and largest non-gap samples. ok is false when
// every sample is a gap.
func (s Sparkline) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		if v == 0 {
			continue
		}
		lo, hi, ok = min(lo, v), max(hi, v), true
	}
	return lo, hi, ok
}

// points maps each non-gap sample to a dot; gaps yield ok=false.
func (s Sparkline) points() []point {
	lo, hi, ok := s.Range()
	if !ok {
		return nil
	}

	var (
		dotsW = s.Width * 2
		dotsH = s.Height * 4
		pts   = make([]point, len(s.Values))
	)

	for i, v := range s.Values {
		if v == 0 {
			continue
		}
		x := 0
		if len(s.Values) > 1 {
			x = int(math.Round(float64(i) * float64(dotsW-1) / float64(len(s.Values)-1)))
		}
		y := (dotsH - 1) / 2
		if hi > lo {
			y = (dotsH - 1) - int(math.Round((v-lo)/(hi-lo)*float64(dotsH-1)))
		}
		pts[i] = point{x: x, y: y, ok: true}
	}
	return pts
}

type point struct {
	x, y int
	ok   bool
}

func (s Sparkline) Render() string {
	canvas := drawille.NewCanvas()

	pts := s.points()
	for i, p := range pts {
		if !p.ok {
			continue
		}
		if i > 0 && pts[i-1].ok {
			line(&canvas, pts[i-1], p)
		} else {
			canvas.Set(p.x, p.y)
		}
	}

	var (
		dotsW = s.Width * 2
		dotsH = s.Height * 4
		raw   = canvas.Rows(0, 0, dotsW-1, dotsH-1)
		style = lipgloss.NewStyle().Foreground(s.Color)
		lines = make([]string, s.Height)
	)

	for i := range lines {
		row := []rune(strings.Repeat(" ", s.Width))
		if i < len(raw) {
			for j, r := range []rune(raw[i]) {
				if j < s.Width && r > emptyBraille {
					row[j] = r
				}
			}
		}
		lines[i] = style.Render(string(row))
	}

	return strings.Join(lines, "\n")
}

// Caption summarizes the plotted range, e.g. "48-61 bpm".
func (s Sparkline) Caption() string {
	lo, hi, ok := s.Range()
	if !ok {
		return "no data"
	}
	return strings.TrimSpace(fmt.Sprintf("%.0f-%.0f %s", lo, hi, s.Unit))
}

// line sets the dots between a and b (Bresenham).
func line(canvas *drawille.Canvas, a, b point) {
	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx, sy := sign(b.x-a.x), sign(b.y-a.y)
	e := dx + dy

	x, y := a.x, a.y
	for {
		canvas.Set(x, y)
		if x == b.x && y == b.y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
