package theme

import (
	"image/color"
	"testing"
)

func TestScoreColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  color.Color
	}{
		{score: 0, want: ColorNotAvailable},
		{score: 1, want: ColorPayAttention},
		{score: 69, want: ColorPayAttention},
		{score: 70, want: ColorGood},
		{score: 84, want: ColorGood},
		{score: 85, want: ColorOptimal},
		{score: 100, want: ColorOptimal},
	}

	for _, tt := range tests {
		if got := ScoreColor(tt.score); got != tt.want {
			t.Errorf("ScoreColor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
