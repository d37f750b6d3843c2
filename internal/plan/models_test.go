package plan

import (
	"encoding/json"
	"testing"
)

func TestProfileBMI(t *testing.T) {
	tests := []struct {
		name         string
		profile      Profile
		wantBMI      float64
		wantCategory string
	}{
		{
			name:         "normal weight",
			profile:      Profile{HeightCm: 175, WeightKg: 70},
			wantBMI:      22.9,
			wantCategory: "normal",
		},
		{
			name:         "overweight",
			profile:      Profile{HeightCm: 165, WeightKg: 75},
			wantBMI:      27.5,
			wantCategory: "overweight",
		},
		{
			name:         "underweight",
			profile:      Profile{HeightCm: 180, WeightKg: 55},
			wantBMI:      17.0,
			wantCategory: "underweight",
		},
		{
			name:         "obese",
			profile:      Profile{HeightCm: 160, WeightKg: 90},
			wantBMI:      35.2,
			wantCategory: "obese",
		},
		{
			name:    "missing height",
			profile: Profile{WeightKg: 70},
			wantBMI: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.BMI()
			if got != tt.wantBMI {
				t.Errorf("BMI() = %v, want %v", got, tt.wantBMI)
			}
			if tt.wantBMI > 0 {
				if category := BMICategory(got); category != tt.wantCategory {
					t.Errorf("BMICategory(%v) = %v, want %v", got, category, tt.wantCategory)
				}
			}
		})
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.4, "underweight"},
		{18.5, "normal"},
		{23.9, "normal"},
		{24, "overweight"},
		{27.9, "overweight"},
		{28, "obese"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestResolveGoal(t *testing.T) {
	tests := []struct {
		text string
		want Goal
	}{
		{"fat loss", GoalFatLoss},
		{"Weight Loss", GoalFatLoss},
		{"减脂塑形", GoalFatLoss},
		{"build muscle", GoalMuscleGain},
		{"endurance", GoalEndurance},
		{"mobility", GoalFlexibility},
		{"", GoalGeneralHealth},
		{"something else entirely", GoalGeneralHealth},
	}
	for _, tt := range tests {
		if got := ResolveGoal(tt.text); got != tt.want {
			t.Errorf("ResolveGoal(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestResolveExperience(t *testing.T) {
	tests := []struct {
		text string
		want Experience
	}{
		{"beginner", ExperienceBeginner},
		{"Intermediate", ExperienceIntermediate},
		{"advanced", ExperienceAdvanced},
		{"高级", ExperienceAdvanced},
		{"", ExperienceBeginner},
		{"ninja", ExperienceBeginner},
	}
	for _, tt := range tests {
		if got := ResolveExperience(tt.text); got != tt.want {
			t.Errorf("ResolveExperience(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDayScheduleUnmarshalTolerance(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantDuration  int
		wantIntensity Intensity
	}{
		{
			name:          "number duration",
			input:         `{"type":"cardio","duration":45,"intensity":"medium"}`,
			wantDuration:  45,
			wantIntensity: IntensityMedium,
		},
		{
			name:          "string duration with unit",
			input:         `{"type":"cardio","duration":"45 minutes","intensity":"low"}`,
			wantDuration:  45,
			wantIntensity: IntensityLow,
		},
		{
			name:          "float duration",
			input:         `{"type":"cardio","duration":37.5,"intensity":"high"}`,
			wantDuration:  37,
			wantIntensity: IntensityHigh,
		},
		{
			name:          "medium-high lands on high",
			input:         `{"type":"cardio","duration":30,"intensity":"medium-high"}`,
			wantDuration:  30,
			wantIntensity: IntensityHigh,
		},
		{
			name:          "vigorous is high",
			input:         `{"type":"cardio","duration":30,"intensity":"Vigorous"}`,
			wantDuration:  30,
			wantIntensity: IntensityHigh,
		},
		{
			name:          "gentle is low",
			input:         `{"type":"cardio","duration":30,"intensity":"gentle pace"}`,
			wantDuration:  30,
			wantIntensity: IntensityLow,
		},
		{
			name:          "unknown intensity defaults to medium",
			input:         `{"type":"cardio","duration":30,"intensity":"whatever"}`,
			wantDuration:  30,
			wantIntensity: IntensityMedium,
		},
		{
			name:          "unparseable duration degrades to zero",
			input:         `{"type":"cardio","duration":"about an hour","intensity":"medium"}`,
			wantDuration:  0,
			wantIntensity: IntensityMedium,
		},
		{
			name:          "negative duration clamps to zero",
			input:         `{"type":"cardio","duration":-20,"intensity":"medium"}`,
			wantDuration:  0,
			wantIntensity: IntensityMedium,
		},
		{
			name:          "negative float duration clamps to zero",
			input:         `{"type":"cardio","duration":-7.5,"intensity":"medium"}`,
			wantDuration:  0,
			wantIntensity: IntensityMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var day DaySchedule
			if err := json.Unmarshal([]byte(tt.input), &day); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if day.Duration != tt.wantDuration {
				t.Errorf("Duration = %d, want %d", day.Duration, tt.wantDuration)
			}
			if day.Intensity != tt.wantIntensity {
				t.Errorf("Intensity = %v, want %v", day.Intensity, tt.wantIntensity)
			}
		})
	}
}
