package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/xslog"
)

// fetchSnapshotCmd loads the default window of each collection in turn. The
// window is fixed once so all three cover the same dates.
func fetchSnapshotCmd(ctx context.Context, client *oura.Client) tea.Cmd {
	if client == nil {
		return func() tea.Msg {
			return SnapshotMsg{Err: errors.New("no oura client configured")}
		}
	}

	return func() tea.Msg {
		var errs []error
		window := client.Window(nil)

		sleeps, err := client.Sleep.List(ctx, window)
		if err != nil {
			errs = append(errs, fmt.Errorf("sleep: %w", err))
		}

		readiness, err := client.Readiness.List(ctx, window)
		if err != nil {
			errs = append(errs, fmt.Errorf("readiness: %w", err))
		}

		activities, err := client.Activity.List(ctx, window)
		if err != nil {
			errs = append(errs, fmt.Errorf("activity: %w", err))
		}

		msg := SnapshotMsg{
			Snapshot:  Latest(sleeps, readiness, activities),
			Err:       errors.Join(errs...),
			FetchedAt: time.Now(),
		}
		if msg.Err != nil {
			xslog.FromContext(ctx).WarnContext(ctx, "dashboard refresh incomplete", xslog.Error(msg.Err))
		}
		return msg
	}
}
