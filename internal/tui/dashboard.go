package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/tui/components/gauge"
	"github.com/garrettladley/thoura/internal/tui/components/hypnogram"
	"github.com/garrettladley/thoura/internal/tui/components/sparkline"
	"github.com/garrettladley/thoura/internal/tui/theme"
)

const (
	chartWidth   = 48
	sparkHeight  = 3
	gaugeSpacing = "    "
)

func (m *Model) DashboardView() string {
	snap := m.snapshot

	var sleepScore, readinessScore, activityScore oura.Score
	if snap.Sleep != nil {
		sleepScore = snap.Sleep.Score
	}
	if snap.Readiness != nil {
		readinessScore = snap.Readiness.Score
	}
	if snap.Activity != nil {
		activityScore = snap.Activity.Score
	}

	gauges := lipgloss.JoinHorizontal(
		lipgloss.Top,
		gauge.New(sleepScore.Float(), 100, "SLEEP", theme.ColorSleep).Render(),
		gaugeSpacing,
		gauge.New(readinessScore.Float(), 100, "READINESS", readinessColor(readinessScore)).Render(),
		gaugeSpacing,
		gauge.New(activityScore.Float(), 100, "ACTIVITY", theme.ColorActivity).Render(),
	)

	sections := []string{gauges, "", m.datesView()}

	if snap.Sleep != nil {
		sections = append(sections, "", m.sleepDetailView(*snap.Sleep))
	}
	if rm := restMode(snap); rm != oura.RestModeOff {
		sections = append(sections, "", m.theme.Error().Render("● "+rm.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) datesView() string {
	snap := m.snapshot
	muted := m.theme.Muted()

	parts := []string{
		"sleep " + dateOrDash(snap.Sleep != nil, func() string { return snap.Sleep.SummaryDate }),
		"readiness " + dateOrDash(snap.Readiness != nil, func() string { return snap.Readiness.SummaryDate }),
		"activity " + dateOrDash(snap.Activity != nil, func() string { return snap.Activity.SummaryDate }),
	}
	return muted.Render(strings.Join(parts, "   "))
}

func (m *Model) sleepDetailView(s oura.Sleep) string {
	hr := sparkline.New(s.HR5Min, chartWidth, sparkHeight, theme.ColorHeartRate, "bpm")

	summary := fmt.Sprintf("%s asleep · %d%% efficiency · lowest HR %d",
		hoursMinutes(s.Total), s.Efficiency, s.HRLowest)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Base().Render(summary),
		"",
		hypnogram.Render(s.Stages(), chartWidth),
		"",
		hr.Render(),
		m.theme.Muted().Render("heart rate "+hr.Caption()),
	)
}

func readinessColor(score oura.Score) color.Color {
	if !score.Available() {
		return theme.ColorReadiness
	}
	return theme.ScoreColor(int(score))
}

func restMode(snap Snapshot) oura.RestModeState {
	if snap.Readiness != nil && snap.Readiness.RestModeState != oura.RestModeOff {
		return snap.Readiness.RestModeState
	}
	if snap.Activity != nil {
		return snap.Activity.RestModeState
	}
	return oura.RestModeOff
}

func dateOrDash(ok bool, date func() string) string {
	if !ok {
		return "--"
	}
	return date()
}

func hoursMinutes(seconds int) string {
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}
