package hypnogram

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/thoura/internal/client/oura"
)

func TestSample(t *testing.T) {
	t.Parallel()

	stages := oura.Sleep{Hypnogram5Min: "11223344"}.Stages()

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{name: "wider than data", width: 20, want: "11223344"},
		{name: "halved", width: 4, want: "1234"},
		{name: "zero width keeps all", width: 0, want: "11223344"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sample(stages, tt.width)
			want := oura.Sleep{Hypnogram5Min: tt.want}.Stages()
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Sample() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	stages := oura.Sleep{Hypnogram5Min: "1234"}.Stages()
	plain := ansi.Strip(Render(stages, 10))

	want := []string{
		"Awake    █",
		"REM     █ ",
		"Light  █  ",
		"Deep  █   ",
	}
	if diff := cmp.Diff(want, strings.Split(plain, "\n")); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
