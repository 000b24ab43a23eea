// Package hypnogram draws sleep stages as a four-lane strip chart, awake on
// top and deep sleep at the bottom.
package hypnogram

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/tui/theme"
)

const block = "█"

var lanes = []struct {
	stage oura.SleepStage
	name  string
	color color.Color
}{
	{stage: oura.SleepStageAwake, name: "Awake", color: theme.ColorStageAwake},
	{stage: oura.SleepStageREM, name: "REM  ", color: theme.ColorStageREM},
	{stage: oura.SleepStageLight, name: "Light", color: theme.ColorStageLight},
	{stage: oura.SleepStageDeep, name: "Deep ", color: theme.ColorStageDeep},
}

// Sample picks width stages evenly from stages. When there are fewer stages
// than columns every stage is kept.
func Sample(stages []oura.SleepStage, width int) []oura.SleepStage {
	if width <= 0 || len(stages) <= width {
		return stages
	}
	out := make([]oura.SleepStage, width)
	for i := range out {
		out[i] = stages[i*len(stages)/width]
	}
	return out
}

// Render returns one line per lane, each prefixed with the lane name.
func Render(stages []oura.SleepStage, width int) string {
	sampled := Sample(stages, width)
	nameStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)

	lines := make([]string, len(lanes))
	for i, lane := range lanes {
		style := lipgloss.NewStyle().Foreground(lane.color)

		var b strings.Builder
		b.WriteString(nameStyle.Render(lane.name))
		b.WriteRune(' ')
		for _, s := range sampled {
			if s == lane.stage {
				b.WriteString(style.Render(block))
			} else {
				b.WriteRune(' ')
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
