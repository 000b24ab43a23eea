package archive

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/xslog"
	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

type memorySink struct {
	sleeps     []oura.Sleep
	activities []oura.Activity
	readiness  []oura.Readiness
	closed     bool
}

func (m *memorySink) PutSleeps(_ context.Context, s []oura.Sleep) error {
	m.sleeps = append(m.sleeps, s...)
	return nil
}

func (m *memorySink) PutActivities(_ context.Context, a []oura.Activity) error {
	m.activities = append(m.activities, a...)
	return nil
}

func (m *memorySink) PutReadiness(_ context.Context, r []oura.Readiness) error {
	m.readiness = append(m.readiness, r...)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func newExportServer(t *testing.T, readinessStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sleep", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sleep":[{"summary_date":"2023-01-01","period_id":0,"score":70}]}`))
	})
	mux.HandleFunc("GET /activity", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"activity":[{"summary_date":"2023-01-01","score":81},{"summary_date":"2023-01-02","score":64}]}`))
	})
	mux.HandleFunc("GET /readiness", func(w http.ResponseWriter, _ *http.Request) {
		if readinessStatus != http.StatusOK {
			w.WriteHeader(readinessStatus)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
			return
		}
		_, _ = w.Write([]byte(`{"readiness":[]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestExport(t *testing.T) {
	t.Parallel()

	server := newExportServer(t, http.StatusOK)
	client := oura.New("token", oura.WithBaseURL(server.URL))
	sink := &memorySink{}

	counts, err := Export(t.Context(), client, sink, &oura.ListParams{Start: "2023-01-01", End: "2023-01-02"})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if diff := cmp.Diff(Counts{Sleep: 1, Activity: 2, Readiness: 0}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if len(sink.sleeps) != 1 || sink.sleeps[0].Score != 70 {
		t.Errorf("sleeps = %+v", sink.sleeps)
	}
	if len(sink.activities) != 2 {
		t.Errorf("activities = %d, want 2", len(sink.activities))
	}
	if sink.closed {
		t.Error("Export must not close the sink")
	}
}

func TestExportStopsOnAPIError(t *testing.T) {
	t.Parallel()

	server := newExportServer(t, http.StatusUnauthorized)
	client := oura.New("token", oura.WithBaseURL(server.URL))
	sink := &memorySink{}

	counts, err := Export(t.Context(), client, sink, nil)
	if !errors.Is(err, oura.ErrUnauthorized) {
		t.Fatalf("Export() error = %v, want ErrUnauthorized", err)
	}
	if counts.Sleep != 1 || counts.Activity != 2 || counts.Readiness != 0 {
		t.Errorf("counts = %+v, want earlier collections archived", counts)
	}
	if len(sink.readiness) != 0 {
		t.Errorf("readiness archived after failure: %+v", sink.readiness)
	}
}

func TestExportUsesOneWindowAcrossMidnight(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		windows = map[string]string{}
	)
	mux := http.NewServeMux()
	for _, field := range []string{"sleep", "activity", "readiness"} {
		mux.HandleFunc("GET /"+field, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			windows[field] = r.URL.Query().Get("start") + ".." + r.URL.Query().Get("end")
			mu.Unlock()
			_, _ = w.Write([]byte(`{"` + field + `":[]}`))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	now := time.Date(2023, 1, 10, 23, 59, 59, 0, time.UTC)
	var clockMu sync.Mutex
	clock := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		current := now
		now = now.Add(time.Second)
		return current
	}

	client := oura.New("token", oura.WithBaseURL(server.URL), oura.WithClock(clock))
	if _, err := Export(t.Context(), client, &memorySink{}, &oura.ListParams{}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := map[string]string{
		"sleep":     "2023-01-03..2023-01-10",
		"activity":  "2023-01-03..2023-01-10",
		"readiness": "2023-01-03..2023-01-10",
	}
	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff(want, windows); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

func TestExportLogsThroughContextLogger(t *testing.T) {
	t.Parallel()

	server := newExportServer(t, http.StatusOK)
	client := oura.New("token", oura.WithBaseURL(server.URL))

	var buf bytes.Buffer
	ctx := xslog.WithLogger(t.Context(), xslog.NewLogger(&buf, xslog.LevelInfo))
	ctx = xslog.WithAttrs(ctx, xslog.Sink("memory"))

	if _, err := Export(ctx, client, &memorySink{}, &oura.ListParams{Start: "2023-01-01", End: "2023-01-02"}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d log lines, want 4:\n%s", len(lines), buf.String())
	}
	for i, line := range lines {
		var entry map[string]any
		if err := go_json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if entry["sink"] != "memory" {
			t.Errorf("line %d sink = %v, want memory", i, entry["sink"])
		}
		if i == 0 && (entry["start"] != "2023-01-01" || entry["end"] != "2023-01-02") {
			t.Errorf("window line = %v, want start 2023-01-01 end 2023-01-02", entry)
		}
	}
}
