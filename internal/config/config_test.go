package config

import (
	"os"
	"testing"
	"time"

	"github.com/garrettladley/thoura/internal/xslog"
	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{"OURA_ACCESS_TOKEN": "tok"},
			want: Config{
				LogLevel: xslog.LevelInfo,
				Oura: Oura{
					AccessToken: "tok",
					BaseURL:     "https://api.ouraring.com/v1",
					Timeout:     30 * time.Second,
				},
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"OURA_ACCESS_TOKEN": "tok",
				"OURA_BASE_URL":     "http://localhost:9000",
				"OURA_TIMEOUT":      "5s",
				"ARCHIVE_DSN":       "redis://localhost:6379/0",
				"LOG_LEVEL":         "DEBUG",
			},
			want: Config{
				LogLevel: xslog.LevelDebug,
				Oura: Oura{
					AccessToken: "tok",
					BaseURL:     "http://localhost:9000",
					Timeout:     5 * time.Second,
				},
				Archive: Archive{DSN: "redis://localhost:6379/0"},
			},
		},
		{
			name:    "missing token",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"OURA_ACCESS_TOKEN": "tok", "OURA_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			env:     map[string]string{"OURA_ACCESS_TOKEN": "tok", "LOG_LEVEL": "chatty"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OURA_ACCESS_TOKEN", "OURA_BASE_URL", "OURA_TIMEOUT", "ARCHIVE_DSN", "LOG_LEVEL"} {
				t.Setenv(key, "")
				_ = os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Read()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
