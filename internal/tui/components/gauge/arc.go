package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen angles: 0° is 3 o'clock and angles grow clockwise because y
	// points down. The dial opens at the bottom, from 7:30 round to 4:30.
	arcStartAngle = 135.0
	arcSweep      = 270.0
	arcThickness  = 3
)

// drawArc sets every dot of a thick arc. Each ring is sampled at a step no
// wider than one dot of arc length so the stroke has no gaps.
func drawArc(canvas *drawille.Canvas, cx, cy, radius, startAngle, sweepAngle float64) {
	if sweepAngle <= 0 {
		return
	}

	start := startAngle * math.Pi / 180
	end := (startAngle + sweepAngle) * math.Pi / 180

	for t := range arcThickness {
		r := radius - float64(t)
		if r <= 0 {
			continue
		}
		step := 0.5 / r
		for a := start; a <= end; a += step {
			canvas.Set(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
		}
		canvas.Set(int(math.Round(cx+r*math.Cos(end))), int(math.Round(cy+r*math.Sin(end))))
	}
}

// drawDial draws the unfilled track.
func drawDial(canvas *drawille.Canvas, cx, cy, radius float64) {
	drawArc(canvas, cx, cy, radius, arcStartAngle, arcSweep)
}

// drawProgress draws the filled part of the track for fraction in [0,1].
func drawProgress(canvas *drawille.Canvas, cx, cy, radius, fraction float64) {
	fraction = min(max(fraction, 0), 1)
	drawArc(canvas, cx, cy, radius, arcStartAngle, fraction*arcSweep)
}
