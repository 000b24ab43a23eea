package tui

import "time"

// SnapshotMsg carries the result of one refresh. Err joins the failures of
// individual collections; the snapshot still holds whatever did load.
type SnapshotMsg struct {
	Snapshot  Snapshot
	Err       error
	FetchedAt time.Time
}
