package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArchive(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Archive()
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	want := filepath.Join(home, ".config", "thoura", "thoura.db")
	if got != want {
		t.Errorf("Archive() = %q, want %q", got, want)
	}

	info, err := os.Stat(filepath.Dir(got))
	if err != nil {
		t.Fatalf("archive directory not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("directory mode = %o, want 700", perm)
	}
}

func TestLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Log()
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "thoura", "thoura.log"); got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}
