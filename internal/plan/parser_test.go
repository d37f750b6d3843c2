package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const validResponse = `{
	"title": "Custom shred",
	"description": "Four training days with two active recovery days.",
	"weekly_schedule": {
		"monday": {"type": "cardio", "activities": ["Running"], "duration": 40, "intensity": "medium", "notes": "steady"},
		"tuesday": {"type": "strength", "activities": ["Squats"], "duration": 45, "intensity": "high", "notes": ""},
		"wednesday": {"type": "rest", "activities": ["Rest"], "duration": 0, "intensity": "low", "notes": ""},
		"thursday": {"type": "cardio", "activities": ["Cycling"], "duration": 35, "intensity": "medium", "notes": ""},
		"friday": {"type": "strength", "activities": ["Deadlift"], "duration": 45, "intensity": "high", "notes": ""},
		"saturday": {"type": "cardio", "activities": ["Swimming"], "duration": 30, "intensity": "low", "notes": ""},
		"sunday": {"type": "rest", "activities": ["Rest"], "duration": 0, "intensity": "low", "notes": ""}
	},
	"nutrition_advice": "Eat mostly plants.",
	"tips": ["Sleep well", "Hydrate", "Be consistent"]
}`

func TestParseResponseValidJSON(t *testing.T) {
	p := parseResponse(validResponse, GoalFatLoss, ExperienceIntermediate)
	if p.Title != "Custom shred" {
		t.Errorf("Title = %q, want model title", p.Title)
	}
	if p.NutritionAdvice != "Eat mostly plants." {
		t.Errorf("NutritionAdvice = %q, want model advice", p.NutritionAdvice)
	}
	if len(p.WeeklySchedule) != 7 {
		t.Errorf("schedule has %d days, want 7", len(p.WeeklySchedule))
	}
	if got := p.WeeklySchedule["monday"].Duration; got != 40 {
		t.Errorf("monday duration = %d, want 40", got)
	}
}

func TestParseResponseFencedJSON(t *testing.T) {
	fenced := "Here is your plan:\n```json\n" + validResponse + "\n```\nEnjoy!"
	p := parseResponse(fenced, GoalFatLoss, ExperienceIntermediate)
	if p.Title != "Custom shred" {
		t.Errorf("Title = %q, want model title from fenced block", p.Title)
	}
}

func TestParseResponseBareFence(t *testing.T) {
	fenced := "```\n" + validResponse + "\n```"
	p := parseResponse(fenced, GoalFatLoss, ExperienceIntermediate)
	if p.Title != "Custom shred" {
		t.Errorf("Title = %q, want model title from bare fenced block", p.Title)
	}
}

func TestParseResponseSurroundingProse(t *testing.T) {
	raw := "Sure! " + validResponse + " Let me know if you want changes."
	p := parseResponse(raw, GoalFatLoss, ExperienceIntermediate)
	if p.Title != "Custom shred" {
		t.Errorf("Title = %q, want model title despite surrounding prose", p.Title)
	}
}

func TestParseResponseGarbageFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "prose only", raw: "I cannot produce a plan right now, sorry."},
		{name: "truncated json", raw: `{"title": "half a plan", "weekly_sch`},
		{name: "invalid json in braces", raw: `{title: missing quotes}`},
	}
	want := DefaultPlan(GoalMuscleGain, ExperienceAdvanced)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseResponse(tt.raw, GoalMuscleGain, ExperienceAdvanced)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("expected default plan (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseResponsePatchesMissingFields(t *testing.T) {
	p := parseResponse(`{"title": "Only a title"}`, GoalEndurance, ExperienceBeginner)
	fallback := DefaultPlan(GoalEndurance, ExperienceBeginner)

	if p.Title != "Only a title" {
		t.Errorf("Title = %q, want model title", p.Title)
	}
	if p.Description != fallback.Description {
		t.Error("Description not patched from default")
	}
	if diff := cmp.Diff(fallback.WeeklySchedule, p.WeeklySchedule); diff != "" {
		t.Errorf("schedule not patched from default (-want +got):\n%s", diff)
	}
	if p.NutritionAdvice != fallback.NutritionAdvice {
		t.Error("NutritionAdvice not patched from default")
	}
	if diff := cmp.Diff(fallback.Tips, p.Tips); diff != "" {
		t.Errorf("tips not patched from default (-want +got):\n%s", diff)
	}
}

func TestParseResponseKeepsPartialSchedule(t *testing.T) {
	raw := `{"weekly_schedule": {
		"Monday": {"type": "cardio", "activities": ["Running"], "duration": 30, "intensity": "medium", "notes": ""},
		"wednesday": {"type": "strength", "activities": ["Squats"], "duration": 45, "intensity": "high", "notes": ""},
		"friday": {"activities": ["Yoga"], "duration": 20, "intensity": "low", "notes": ""}
	}}`
	p := parseResponse(raw, GoalGeneralHealth, ExperienceBeginner)

	want := map[string]DaySchedule{
		"monday":    {Type: "cardio", Activities: []string{"Running"}, Duration: 30, Intensity: IntensityMedium},
		"wednesday": {Type: "strength", Activities: []string{"Squats"}, Duration: 45, Intensity: IntensityHigh},
		"friday":    {Activities: []string{"Yoga"}, Duration: 20, Intensity: IntensityLow},
	}
	if diff := cmp.Diff(want, p.WeeklySchedule); diff != "" {
		t.Errorf("model schedule altered (-want +got):\n%s", diff)
	}
}

func TestParseResponseTopsUpShortTips(t *testing.T) {
	p := parseResponse(`{"tips": ["only one tip"]}`, GoalFlexibility, ExperienceIntermediate)
	if len(p.Tips) < 3 {
		t.Fatalf("got %d tips, want at least 3", len(p.Tips))
	}
	if p.Tips[0] != "only one tip" {
		t.Errorf("Tips[0] = %q, want the model tip first", p.Tips[0])
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "no object", raw: "nothing here", want: ""},
		{name: "prefix and suffix", raw: `noise {"a":1} noise`, want: `{"a":1}`},
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "unclosed fence", raw: "```json\n{\"a\":1}", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
