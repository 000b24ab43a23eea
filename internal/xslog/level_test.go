package xslog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "Warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "trace", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept", Resource("sleep"), Count(3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := go_json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry[slog.MessageKey] != "kept" {
		t.Errorf("msg = %v, want kept", entry[slog.MessageKey])
	}
	if entry["resource"] != "sleep" {
		t.Errorf("resource = %v, want sleep", entry["resource"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
}

func TestLevelUnmarshalText(t *testing.T) {
	t.Parallel()

	var l Level
	if err := l.UnmarshalText([]byte("WARN")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != LevelWarn {
		t.Errorf("level = %q, want %q", l, LevelWarn)
	}
	if l.ToSlog() != slog.LevelWarn {
		t.Errorf("ToSlog() = %v, want %v", l.ToSlog(), slog.LevelWarn)
	}

	if err := l.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("UnmarshalText(verbose) error = nil, want error")
	}
}
