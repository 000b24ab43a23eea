package sparkline

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/thoura/internal/tui/theme"
)

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		lo, hi float64
		ok     bool
	}{
		{name: "plain", values: []int{55, 56, 57, 58, 59, 60}, lo: 55, hi: 60, ok: true},
		{name: "gaps ignored", values: []int{0, 62, 0, 48}, lo: 48, hi: 62, ok: true},
		{name: "all gaps", values: []int{0, 0}, ok: false},
		{name: "empty", values: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lo, hi, ok := New(tt.values, 10, 2, theme.ColorHeartRate, "bpm").Range()
			if ok != tt.ok {
				t.Fatalf("Range() ok = %v, want %v", ok, tt.ok)
			}
			if ok && (lo != tt.lo || hi != tt.hi) {
				t.Errorf("Range() = (%v, %v), want (%v, %v)", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	t.Parallel()

	s := New([]int{50, 0, 60}, 3, 1, theme.ColorHeartRate, "bpm")

	want := []point{
		{x: 0, y: 3, ok: true},
		{},
		{x: 5, y: 0, ok: true},
	}
	if diff := cmp.Diff(want, s.points(), cmp.AllowUnexported(point{})); diff != "" {
		t.Errorf("points() mismatch (-want +got):\n%s", diff)
	}

	flat := New([]int{58, 58}, 2, 2, theme.ColorHeartRate, "bpm").points()
	if flat[0].y != flat[1].y || flat[0].y != 3 {
		t.Errorf("flat series should sit on the middle row, got %+v", flat)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	s := New([]int{55, 56, 57, 58, 59, 60}, 12, 3, theme.ColorHeartRate, "bpm")
	plain := ansi.Strip(s.Render())

	lines := strings.Split(plain, "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() has %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 12 {
			t.Errorf("line %d has %d cells, want 12", i, n)
		}
	}

	// a rising series starts low on the left and ends high on the right
	first, last := []rune(lines[2])[0], []rune(lines[0])[11]
	if first == ' ' || last == ' ' {
		t.Errorf("rising series not drawn corner to corner:\n%s", plain)
	}

	if got := s.Caption(); got != "55-60 bpm" {
		t.Errorf("Caption() = %q, want %q", got, "55-60 bpm")
	}
}

func TestRenderNoData(t *testing.T) {
	t.Parallel()

	s := New(nil, 4, 2, theme.ColorHeartRate, "bpm")
	if plain := ansi.Strip(s.Render()); strings.TrimSpace(strings.ReplaceAll(plain, "\n", "")) != "" {
		t.Errorf("Render() with no samples = %q, want blank", plain)
	}
	if got := s.Caption(); got != "no data" {
		t.Errorf("Caption() = %q", got)
	}
}
