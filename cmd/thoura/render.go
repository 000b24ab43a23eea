package main

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/thoura/internal/client/oura"
)

func writeJSON(w io.Writer, field string, records any) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{field: records}); err != nil {
		return fmt.Errorf("encoding %s: %w", field, err)
	}
	return nil
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no records")
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func score(s oura.Score) string {
	if !s.Available() {
		return "-"
	}
	return strconv.Itoa(int(s))
}

func duration(seconds int) string {
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}

func writeSleepTable(w io.Writer, sleeps []oura.Sleep) error {
	rows := make([][]string, len(sleeps))
	for i, s := range sleeps {
		mark := ""
		if s.Longest() {
			mark = "*"
		}
		rows[i] = []string{
			s.SummaryDate,
			strconv.Itoa(s.PeriodID) + mark,
			score(s.Score),
			duration(s.Total),
			duration(s.Deep),
			duration(s.REM),
			strconv.Itoa(s.Efficiency) + "%",
			strconv.Itoa(s.HRLowest),
			strconv.Itoa(s.RMSSD),
			fmt.Sprintf("%+.2f", s.TemperatureDelta),
		}
	}
	return writeTable(w,
		[]string{"date", "period", "score", "asleep", "deep", "rem", "efficiency", "hr low", "hrv", "temp Δ"},
		rows,
	)
}

func writeActivityTable(w io.Writer, activities []oura.Activity) error {
	rows := make([][]string, len(activities))
	for i, a := range activities {
		rows[i] = []string{
			a.SummaryDate,
			score(a.Score),
			strconv.Itoa(a.Steps),
			strconv.Itoa(a.CalActive),
			strconv.Itoa(a.CalTotal),
			strconv.Itoa(a.High + a.Medium),
			strconv.Itoa(a.InactivityAlerts),
			a.RestModeState.String(),
		}
	}
	return writeTable(w,
		[]string{"date", "score", "steps", "active kcal", "total kcal", "active min", "alerts", "rest mode"},
		rows,
	)
}

func writeReadinessTable(w io.Writer, readiness []oura.Readiness) error {
	rows := make([][]string, len(readiness))
	for i, r := range readiness {
		rows[i] = []string{
			r.SummaryDate,
			strconv.Itoa(r.PeriodID),
			score(r.Score),
			score(r.ScorePreviousNight),
			score(r.ScoreSleepBalance),
			score(r.ScoreActivityBalance),
			score(r.ScoreRestingHR),
			score(r.ScoreHRVBalance),
			score(r.ScoreTemperature),
			r.RestModeState.String(),
		}
	}
	return writeTable(w,
		[]string{"date", "period", "score", "prev night", "sleep bal", "activity bal", "resting hr", "hrv bal", "temp", "rest mode"},
		rows,
	)
}
