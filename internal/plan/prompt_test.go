package plan

import (
	"strings"
	"testing"
)

func TestBuildProfileDescription(t *testing.T) {
	t.Run("nothing known", func(t *testing.T) {
		got := buildProfileDescription(nil, ActivitySummary{})
		if !strings.Contains(got, "No profile information available") {
			t.Errorf("expected sentinel line, got %q", got)
		}
	})

	t.Run("full profile and history", func(t *testing.T) {
		profile := &Profile{Age: 30, Sex: "female", HeightCm: 170, WeightKg: 62}
		activity := ActivitySummary{
			WorkoutCount:                12,
			TotalDurationMin:            480,
			AvgDurationMin:              40,
			TotalCaloriesBurned:         3600,
			DietRecordCount:             20,
			AvgCaloriesPerMeal:          550,
			AvgProteinG:                 28,
			PreferredExerciseCategories: []string{"cardio", "strength"},
			PreferredFoodCategories:     []string{"grain", "protein"},
		}
		got := buildProfileDescription(profile, activity)
		for _, want := range []string{
			"Age: 30",
			"Height: 170 cm",
			"Weight: 62.0 kg",
			"BMI: 21.5 (normal)",
			"Workouts in the last 30 days: 12",
			"cardio, strength",
			"Diet records in the last 30 days: 20",
			"Average calories per meal: 550",
			"Average protein per meal: 28 g",
			"Preferred food types: grain, protein",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("description missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("diet lines omitted without records", func(t *testing.T) {
		activity := ActivitySummary{WorkoutCount: 3, TotalDurationMin: 90, AvgDurationMin: 30}
		got := buildProfileDescription(&Profile{Age: 40}, activity)
		if strings.Contains(got, "Diet records") || strings.Contains(got, "calories per meal") {
			t.Errorf("diet lines should be omitted for an empty diet history, got %q", got)
		}
	})

	t.Run("unknown fields omitted", func(t *testing.T) {
		profile := &Profile{Age: 25}
		got := buildProfileDescription(profile, ActivitySummary{})
		if strings.Contains(got, "Height") || strings.Contains(got, "Weight") || strings.Contains(got, "BMI") {
			t.Errorf("unset fields should be omitted, got %q", got)
		}
		if !strings.Contains(got, "No recorded workouts") {
			t.Errorf("expected empty-history line, got %q", got)
		}
	})
}

func TestComposeUserPrompt(t *testing.T) {
	req := Request{
		WeeklyFrequency:     "4 days",
		SessionDuration:     "45 min",
		HealthCondition:     "good",
		SpecialRequirements: "no jumping, downstairs neighbors",
	}
	got := composeUserPrompt(req, GoalFatLoss, ExperienceIntermediate, "- Age: 30\n")

	for _, want := range []string{
		"Training goal: fat loss",
		"Experience level: intermediate",
		"Preferred training frequency: 4 days",
		"no jumping",
		"Age: 30",
		"calorie deficit",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestComposeUserPromptOmitsEmptySpecialRequirements(t *testing.T) {
	got := composeUserPrompt(Request{}.withDefaults(), GoalEndurance, ExperienceBeginner, "")
	if strings.Contains(got, "Special requirements") {
		t.Errorf("empty special requirements should be omitted:\n%s", got)
	}
	if !strings.Contains(got, "Preferred training frequency: 3-4 days") {
		t.Errorf("request defaults not applied:\n%s", got)
	}
}

func TestSystemPromptDemandsJSON(t *testing.T) {
	for _, want := range []string{"weekly_schedule", "nutrition_advice", "tips", "single JSON object"} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
