package oura

import (
	"errors"
	"sort"
	"testing"

	"github.com/garrettladley/thoura/internal/validator"
	"github.com/google/go-cmp/cmp"
)

func validSleep() Sleep {
	return Sleep{
		SummaryDate:   "2023-01-01",
		IsLongest:     1,
		Score:         80,
		Total:         300,
		Light:         100,
		REM:           100,
		Deep:          100,
		Restless:      20,
		Efficiency:    90,
		Hypnogram5Min: "1234",
		HR5Min:        []int{50, 51, 52, 53},
		RMSSD5Min:     []int{30, 31, 32, 33},
	}
}

func fieldNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func TestSleepValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Sleep)
		want   []string
	}{
		{name: "valid", mutate: func(*Sleep) {}, want: []string{}},
		{name: "series absent", mutate: func(s *Sleep) { s.HR5Min, s.RMSSD5Min = nil, nil }, want: []string{}},
		{name: "score above range", mutate: func(s *Sleep) { s.ScoreDeep = 101 }, want: []string{"score_deep"}},
		{name: "negative score", mutate: func(s *Sleep) { s.Score = -1 }, want: []string{"score"}},
		{name: "total mismatch", mutate: func(s *Sleep) { s.Total = 301 }, want: []string{"total"}},
		{name: "negative period", mutate: func(s *Sleep) { s.PeriodID = -1 }, want: []string{"period_id"}},
		{name: "is_longest not a flag", mutate: func(s *Sleep) { s.IsLongest = 2 }, want: []string{"is_longest"}},
		{name: "restless over 100", mutate: func(s *Sleep) { s.Restless = 120 }, want: []string{"restless"}},
		{name: "efficiency negative", mutate: func(s *Sleep) { s.Efficiency = -3 }, want: []string{"efficiency"}},
		{name: "bad stage", mutate: func(s *Sleep) { s.Hypnogram5Min = "1250" }, want: []string{"hypnogram_5min"}},
		{
			name:   "series length mismatch",
			mutate: func(s *Sleep) { s.HR5Min = s.HR5Min[:3]; s.RMSSD5Min = append(s.RMSSD5Min, 1) },
			want:   []string{"hr_5min", "rmssd_5min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSleep()
			tt.mutate(&s)

			got := fieldNames(s.Validate())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestActivityValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		activity Activity
		want     []string
	}{
		{name: "valid", activity: Activity{Score: 90, Class5Min: "0123450", RestModeState: RestModeOn}, want: []string{}},
		{name: "contributor out of range", activity: Activity{ScoreTrainingVolume: 200}, want: []string{"score_training_volume"}},
		{name: "bad class", activity: Activity{Class5Min: "0126"}, want: []string{"class_5min"}},
		{name: "bad rest mode", activity: Activity{RestModeState: 7}, want: []string{"rest_mode_state"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fieldNames(tt.activity.Validate())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadinessValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		readiness Readiness
		want      []string
	}{
		{name: "valid without hrv", readiness: Readiness{Score: 70, ScoreRestingHR: 90}, want: []string{}},
		{name: "hrv out of range", readiness: Readiness{ScoreHRVBalance: 101}, want: []string{"score_hrv_balance"}},
		{name: "negative period", readiness: Readiness{PeriodID: -2}, want: []string{"period_id"}},
		{name: "bad rest mode", readiness: Readiness{RestModeState: -1}, want: []string{"rest_mode_state"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fieldNames(tt.readiness.Validate())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateError(t *testing.T) {
	t.Parallel()

	if err := validator.Validate(validSleep()); err != nil {
		t.Fatalf("Validate(valid) = %v", err)
	}

	s := validSleep()
	s.Total = 0
	s.Score = 300

	err := validator.Validate(s)
	var verr *validator.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *validator.Error", err)
	}
	const want = "invalid: score: 300 is outside [0,100]; total: 0 does not equal rem+light+deep (300)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
