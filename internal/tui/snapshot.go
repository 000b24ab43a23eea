package tui

import "github.com/garrettladley/thoura/internal/client/oura"

// Snapshot is the most recent record of each collection in a fetch window.
type Snapshot struct {
	Sleep     *oura.Sleep
	Readiness *oura.Readiness
	Activity  *oura.Activity
}

// Latest picks the main sleep period of the newest day, the readiness
// computed from that period, and the newest activity day.
func Latest(sleeps []oura.Sleep, readiness []oura.Readiness, activities []oura.Activity) Snapshot {
	var snap Snapshot

	for i := range sleeps {
		s := &sleeps[i]
		switch {
		case snap.Sleep == nil,
			s.SummaryDate > snap.Sleep.SummaryDate,
			s.SummaryDate == snap.Sleep.SummaryDate && s.Longest() && !snap.Sleep.Longest():
			snap.Sleep = s
		}
	}

	for i := range readiness {
		r := &readiness[i]
		if snap.Sleep != nil && r.Key() == snap.Sleep.Key() {
			snap.Readiness = r
			break
		}
		if snap.Readiness == nil || r.SummaryDate > snap.Readiness.SummaryDate ||
			(r.SummaryDate == snap.Readiness.SummaryDate && r.PeriodID > snap.Readiness.PeriodID) {
			snap.Readiness = r
		}
	}

	for i := range activities {
		a := &activities[i]
		if snap.Activity == nil || a.SummaryDate > snap.Activity.SummaryDate {
			snap.Activity = a
		}
	}

	return snap
}
