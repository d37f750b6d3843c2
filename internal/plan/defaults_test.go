package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allGoals = []Goal{GoalFatLoss, GoalMuscleGain, GoalEndurance, GoalFlexibility, GoalGeneralHealth}

var allExperiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

func TestDefaultPlanCoversEveryGoalAndLevel(t *testing.T) {
	for _, goal := range allGoals {
		for _, experience := range allExperiences {
			p := DefaultPlan(goal, experience)

			if p.Title == "" || p.Description == "" || p.NutritionAdvice == "" {
				t.Errorf("%s/%s: incomplete plan text fields", goal, experience)
			}
			if len(p.Tips) < 3 {
				t.Errorf("%s/%s: got %d tips, want at least 3", goal, experience, len(p.Tips))
			}
			if len(p.WeeklySchedule) != 7 {
				t.Errorf("%s/%s: schedule has %d days, want 7", goal, experience, len(p.WeeklySchedule))
			}
			for _, day := range weekdays {
				entry, ok := p.WeeklySchedule[day]
				if !ok {
					t.Errorf("%s/%s: missing %s", goal, experience, day)
					continue
				}
				if entry.Type == "" || len(entry.Activities) == 0 {
					t.Errorf("%s/%s %s: empty type or activities", goal, experience, day)
				}
				switch entry.Intensity {
				case IntensityLow, IntensityMedium, IntensityHigh:
				default:
					t.Errorf("%s/%s %s: invalid intensity %q", goal, experience, day, entry.Intensity)
				}
			}
		}
	}
}

func TestDefaultPlanIsDeterministic(t *testing.T) {
	first := DefaultPlan(GoalFatLoss, ExperienceIntermediate)
	second := DefaultPlan(GoalFatLoss, ExperienceIntermediate)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("plans differ between calls (-first +second):\n%s", diff)
	}
}

func TestDefaultPlanDoesNotAliasCatalog(t *testing.T) {
	p := DefaultPlan(GoalEndurance, ExperienceBeginner)
	p.WeeklySchedule["monday"] = DaySchedule{Type: "tampered"}
	p.Tips[0] = "tampered"
	if entry := p.WeeklySchedule["monday"]; len(entry.Activities) > 0 {
		entry.Activities[0] = "tampered"
	}

	fresh := DefaultPlan(GoalEndurance, ExperienceBeginner)
	if fresh.WeeklySchedule["monday"].Type == "tampered" {
		t.Error("schedule mutation leaked into catalog")
	}
	if fresh.Tips[0] == "tampered" {
		t.Error("tips mutation leaked into catalog")
	}
}

func TestDefaultPlanUnknownExperienceFallsBackToBeginner(t *testing.T) {
	got := DefaultPlan(GoalMuscleGain, Experience("ninja"))
	want := DefaultPlan(GoalMuscleGain, ExperienceBeginner)
	if diff := cmp.Diff(want.WeeklySchedule, got.WeeklySchedule); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultTitleFormat(t *testing.T) {
	p := DefaultPlan(GoalFatLoss, ExperienceAdvanced)
	if want := "advanced plan - fat loss"; p.Title != want {
		t.Errorf("Title = %q, want %q", p.Title, want)
	}
}
