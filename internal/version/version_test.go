package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	if got := Get(); got == "" {
		t.Fatal("Get() returned empty version")
	}
	if Get() != Get() {
		t.Error("Get() is not stable across calls")
	}
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	got := UserAgent()
	if !strings.HasPrefix(got, "thoura/") {
		t.Errorf("UserAgent() = %q, want thoura/ prefix", got)
	}
	if !strings.HasSuffix(got, Get()) {
		t.Errorf("UserAgent() = %q, want suffix %q", got, Get())
	}
}
