package oura

import (
	"strconv"
	"time"
)

// PeriodKey identifies a sleep period, and the readiness computed from it.
type PeriodKey struct {
	SummaryDate string
	PeriodID    int
}

func (k PeriodKey) String() string {
	return k.SummaryDate + "/" + strconv.Itoa(k.PeriodID)
}

// Sleep is one sleep period. SummaryDate is the day before the period ended.
type Sleep struct {
	SummaryDate  string `json:"summary_date"`
	PeriodID     int    `json:"period_id"`
	IsLongest    int    `json:"is_longest"`
	Timezone     int    `json:"timezone"` // minutes from UTC
	BedtimeStart string `json:"bedtime_start"`
	BedtimeEnd   string `json:"bedtime_end"`

	Score             Score `json:"score"`
	ScoreTotal        Score `json:"score_total"`
	ScoreDisturbances Score `json:"score_disturbances"`
	ScoreEfficiency   Score `json:"score_efficiency"`
	ScoreLatency      Score `json:"score_latency"`
	ScoreREM          Score `json:"score_rem"`
	ScoreDeep         Score `json:"score_deep"`
	ScoreAlignment    Score `json:"score_alignment"`

	// seconds
	Total        int `json:"total"`
	Duration     int `json:"duration"`
	Awake        int `json:"awake"`
	Light        int `json:"light"`
	REM          int `json:"rem"`
	Deep         int `json:"deep"`
	OnsetLatency int `json:"onset_latency"`
	MidpointTime int `json:"midpoint_time"`

	Restless   int `json:"restless"`   // percent
	Efficiency int `json:"efficiency"` // percent

	HRLowest         int     `json:"hr_lowest"`  // bpm
	HRAverage        float64 `json:"hr_average"` // bpm
	RMSSD            int     `json:"rmssd"`      // ms
	BreathAverage    float64 `json:"breath_average"`
	TemperatureDelta float64 `json:"temperature_delta"` // celsius

	Hypnogram5Min string `json:"hypnogram_5min"`
	HR5Min        []int  `json:"hr_5min"`
	RMSSD5Min     []int  `json:"rmssd_5min"`
}

func (s Sleep) Key() PeriodKey {
	return PeriodKey{SummaryDate: s.SummaryDate, PeriodID: s.PeriodID}
}

func (s Sleep) Longest() bool { return s.IsLongest == 1 }

// Stages decodes the hypnogram, one stage per 5 minutes from bedtime start.
func (s Sleep) Stages() []SleepStage {
	stages := make([]SleepStage, len(s.Hypnogram5Min))
	for i := range len(s.Hypnogram5Min) {
		stages[i] = SleepStage(s.Hypnogram5Min[i])
	}
	return stages
}

func (s Sleep) BedtimeStartTime() (time.Time, error) {
	return parseLocalTime(s.BedtimeStart, s.Timezone)
}

func (s Sleep) BedtimeEndTime() (time.Time, error) {
	return parseLocalTime(s.BedtimeEnd, s.Timezone)
}

// Activity is one activity day, which runs from 4 AM to 4 AM local time.
type Activity struct {
	SummaryDate string `json:"summary_date"`
	DayStart    string `json:"day_start"`
	DayEnd      string `json:"day_end"`
	Timezone    int    `json:"timezone"`

	Score                  Score `json:"score"`
	ScoreStayActive        Score `json:"score_stay_active"`
	ScoreMoveEveryHour     Score `json:"score_move_every_hour"`
	ScoreMeetDailyTargets  Score `json:"score_meet_daily_targets"`
	ScoreTrainingFrequency Score `json:"score_training_frequency"`
	ScoreTrainingVolume    Score `json:"score_training_volume"`
	ScoreRecoveryTime      Score `json:"score_recovery_time"`

	DailyMovement    int `json:"daily_movement"` // meters
	NonWear          int `json:"non_wear"`       // minutes
	Rest             int `json:"rest"`
	Inactive         int `json:"inactive"`
	InactivityAlerts int `json:"inactivity_alerts"`
	Low              int `json:"low"`
	Medium           int `json:"medium"`
	High             int `json:"high"`
	Steps            int `json:"steps"`

	CalTotal         int     `json:"cal_total"` // kcal
	CalActive        int     `json:"cal_active"`
	MetMinInactive   int     `json:"met_min_inactive"`
	MetMinLow        int     `json:"met_min_low"`
	MetMinMediumPlus int     `json:"met_min_medium_plus"`
	MetMinMedium     int     `json:"met_min_medium"`
	MetMinHigh       int     `json:"met_min_high"`
	AverageMet       float64 `json:"average_met"`

	Class5Min string    `json:"class_5min"`
	Met1Min   []float64 `json:"met_1min"`

	RestModeState RestModeState `json:"rest_mode_state"`
}

func (a Activity) Key() string { return a.SummaryDate }

// Classes decodes the class string, one class per 5 minutes from day start.
func (a Activity) Classes() []ActivityClass {
	classes := make([]ActivityClass, len(a.Class5Min))
	for i := range len(a.Class5Min) {
		classes[i] = ActivityClass(a.Class5Min[i])
	}
	return classes
}

func (a Activity) DayStartTime() (time.Time, error) {
	return parseLocalTime(a.DayStart, a.Timezone)
}

func (a Activity) DayEndTime() (time.Time, error) {
	return parseLocalTime(a.DayEnd, a.Timezone)
}

// Readiness is tied to the sleep period sharing its SummaryDate and PeriodID.
// ScoreHRVBalance is not available for days before HRV joined the score.
type Readiness struct {
	SummaryDate          string        `json:"summary_date"`
	PeriodID             int           `json:"period_id"`
	Score                Score         `json:"score"`
	ScorePreviousNight   Score         `json:"score_previous_night"`
	ScoreSleepBalance    Score         `json:"score_sleep_balance"`
	ScorePreviousDay     Score         `json:"score_previous_day"`
	ScoreActivityBalance Score         `json:"score_activity_balance"`
	ScoreRestingHR       Score         `json:"score_resting_hr"`
	ScoreHRVBalance      Score         `json:"score_hrv_balance"`
	ScoreRecoveryIndex   Score         `json:"score_recovery_index"`
	ScoreTemperature     Score         `json:"score_temperature"`
	RestModeState        RestModeState `json:"rest_mode_state"`
}

func (r Readiness) Key() PeriodKey {
	return PeriodKey{SummaryDate: r.SummaryDate, PeriodID: r.PeriodID}
}

// parseLocalTime accepts RFC3339 timestamps and zone-less local timestamps,
// the latter placed at the record's UTC offset.
func parseLocalTime(s string, offsetMinutes int) (time.Time, error) {
	const localLayout = "2006-01-02T15:04:05"

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localLayout, s, time.FixedZone("", offsetMinutes*60))
}
