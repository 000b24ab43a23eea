package oura

import (
	"fmt"
	"strconv"

	"github.com/garrettladley/thoura/internal/validator"
)

var (
	_ validator.Validator = Sleep{}
	_ validator.Validator = Activity{}
	_ validator.Validator = Readiness{}
)

func (s Sleep) Validate() map[string]string {
	var f validator.Fields

	f.Check(s.PeriodID >= 0, "period_id", "must be non-negative")
	f.Check(s.IsLongest == 0 || s.IsLongest == 1, "is_longest", "must be 0 or 1")
	checkScores(&f, map[string]Score{
		"score":              s.Score,
		"score_total":        s.ScoreTotal,
		"score_disturbances": s.ScoreDisturbances,
		"score_efficiency":   s.ScoreEfficiency,
		"score_latency":      s.ScoreLatency,
		"score_rem":          s.ScoreREM,
		"score_deep":         s.ScoreDeep,
		"score_alignment":    s.ScoreAlignment,
	})
	f.Check(s.Total == s.REM+s.Light+s.Deep, "total",
		fmt.Sprintf("%d does not equal rem+light+deep (%d)", s.Total, s.REM+s.Light+s.Deep))
	f.Check(isPercent(s.Restless), "restless", "must be within [0,100]")
	f.Check(isPercent(s.Efficiency), "efficiency", "must be within [0,100]")

	for i, stage := range s.Stages() {
		if !stage.Valid() {
			f.Add("hypnogram_5min", fmt.Sprintf("invalid stage %q at %d", byte(stage), i))
			break
		}
	}

	buckets := len(s.Hypnogram5Min)
	f.Check(s.HR5Min == nil || len(s.HR5Min) == buckets, "hr_5min",
		fmt.Sprintf("has %d entries, hypnogram has %d", len(s.HR5Min), buckets))
	f.Check(s.RMSSD5Min == nil || len(s.RMSSD5Min) == buckets, "rmssd_5min",
		fmt.Sprintf("has %d entries, hypnogram has %d", len(s.RMSSD5Min), buckets))

	return f.Map()
}

func (a Activity) Validate() map[string]string {
	var f validator.Fields

	checkScores(&f, map[string]Score{
		"score":                    a.Score,
		"score_stay_active":        a.ScoreStayActive,
		"score_move_every_hour":    a.ScoreMoveEveryHour,
		"score_meet_daily_targets": a.ScoreMeetDailyTargets,
		"score_training_frequency": a.ScoreTrainingFrequency,
		"score_training_volume":    a.ScoreTrainingVolume,
		"score_recovery_time":      a.ScoreRecoveryTime,
	})

	for i, class := range a.Classes() {
		if !class.Valid() {
			f.Add("class_5min", fmt.Sprintf("invalid class %q at %d", byte(class), i))
			break
		}
	}

	f.Check(a.RestModeState.Valid(), "rest_mode_state", "must be within [0,4], got "+strconv.Itoa(int(a.RestModeState)))

	return f.Map()
}

func (r Readiness) Validate() map[string]string {
	var f validator.Fields

	f.Check(r.PeriodID >= 0, "period_id", "must be non-negative")
	checkScores(&f, map[string]Score{
		"score":                  r.Score,
		"score_previous_night":   r.ScorePreviousNight,
		"score_sleep_balance":    r.ScoreSleepBalance,
		"score_previous_day":     r.ScorePreviousDay,
		"score_activity_balance": r.ScoreActivityBalance,
		"score_resting_hr":       r.ScoreRestingHR,
		"score_hrv_balance":      r.ScoreHRVBalance,
		"score_recovery_index":   r.ScoreRecoveryIndex,
		"score_temperature":      r.ScoreTemperature,
	})
	f.Check(r.RestModeState.Valid(), "rest_mode_state", "must be within [0,4], got "+strconv.Itoa(int(r.RestModeState)))

	return f.Map()
}

func checkScores(f *validator.Fields, scores map[string]Score) {
	for field, score := range scores {
		f.Check(score.Valid(), field, fmt.Sprintf("%d is outside [0,100]", score))
	}
}

func isPercent(v int) bool { return v >= 0 && v <= 100 }
