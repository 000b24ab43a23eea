package oura

import "strconv"

// Score is a 1-100 contributor or summary score. Zero means the score could
// not be computed from the available data; it is never a real low score.
type Score int

const (
	ScoreNotAvailable Score = 0
	ScoreMax          Score = 100
)

func (s Score) Available() bool { return s != ScoreNotAvailable }

func (s Score) Valid() bool { return s >= ScoreNotAvailable && s <= ScoreMax }

// Float returns nil when the score is not available.
func (s Score) Float() *float64 {
	if !s.Available() {
		return nil
	}
	f := float64(s)
	return &f
}

type RestModeState int

const (
	RestModeOff RestModeState = iota
	RestModeEntering
	RestModeOn
	RestModeEnteringRecovery
	RestModeRecovering
)

func (r RestModeState) Valid() bool { return r >= RestModeOff && r <= RestModeRecovering }

func (r RestModeState) String() string {
	switch r {
	case RestModeOff:
		return "Off"
	case RestModeEntering:
		return "Entering Rest Mode"
	case RestModeOn:
		return "Rest Mode"
	case RestModeEnteringRecovery:
		return "Entering Recovery"
	case RestModeRecovering:
		return "Recovering"
	default:
		return "RestModeState(" + strconv.Itoa(int(r)) + ")"
	}
}

// SleepStage is one character of a sleep hypnogram.
type SleepStage byte

const (
	SleepStageDeep  SleepStage = '1'
	SleepStageLight SleepStage = '2'
	SleepStageREM   SleepStage = '3'
	SleepStageAwake SleepStage = '4'
)

func (s SleepStage) Valid() bool { return s >= SleepStageDeep && s <= SleepStageAwake }

func (s SleepStage) String() string {
	switch s {
	case SleepStageDeep:
		return "deep"
	case SleepStageLight:
		return "light"
	case SleepStageREM:
		return "rem"
	case SleepStageAwake:
		return "awake"
	default:
		return "unknown"
	}
}

// ActivityClass is one character of an activity day's 5-minute class string.
type ActivityClass byte

const (
	ActivityClassNonWear  ActivityClass = '0'
	ActivityClassRest     ActivityClass = '1'
	ActivityClassInactive ActivityClass = '2'
	ActivityClassLow      ActivityClass = '3'
	ActivityClassMedium   ActivityClass = '4'
	ActivityClassHigh     ActivityClass = '5'
)

func (a ActivityClass) Valid() bool { return a >= ActivityClassNonWear && a <= ActivityClassHigh }

func (a ActivityClass) String() string {
	switch a {
	case ActivityClassNonWear:
		return "non-wear"
	case ActivityClassRest:
		return "rest"
	case ActivityClassInactive:
		return "inactive"
	case ActivityClassLow:
		return "low"
	case ActivityClassMedium:
		return "medium"
	case ActivityClassHigh:
		return "high"
	default:
		return "unknown"
	}
}
