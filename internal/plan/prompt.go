package plan

import (
	"fmt"
	"strings"
)

// systemPrompt instructs the model to answer with a single JSON object in the
// plan schema. The parser tolerates fenced output anyway.
const systemPrompt = `You are a certified personal trainer and sports nutritionist.
Design a one-week fitness plan for the client described by the user.

Respond with a single JSON object and nothing else, in exactly this shape:
{
  "title": "short plan title",
  "description": "2-3 sentence overview of the plan",
  "weekly_schedule": {
    "monday": {
      "type": "cardio|strength|mixed|flexibility|rest",
      "activities": ["activity name"],
      "duration": 30,
      "intensity": "low|medium|high",
      "notes": "coaching cue for the day"
    },
    "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {}
  },
  "nutrition_advice": "markdown nutrition guidance",
  "tips": ["at least three practical tips"]
}

Cover all seven weekdays. Durations are minutes as numbers. Do not add fields.`

// composeUserPrompt assembles the request, profile description, and
// goal-specific coaching guidance into the user message.
func composeUserPrompt(req Request, goal Goal, experience Experience, profileDescription string) string {
	s := strategyFor(goal)
	var b strings.Builder
	fmt.Fprintf(&b, "Training goal: %s\n", goal)
	fmt.Fprintf(&b, "Experience level: %s\n", experience)
	fmt.Fprintf(&b, "Preferred training frequency: %s\n", req.WeeklyFrequency)
	fmt.Fprintf(&b, "Preferred session duration: %s\n", req.SessionDuration)
	fmt.Fprintf(&b, "Health condition: %s\n", req.HealthCondition)
	if strings.TrimSpace(req.SpecialRequirements) != "" {
		fmt.Fprintf(&b, "Special requirements: %s\n", req.SpecialRequirements)
	}
	b.WriteString("\nClient background:\n")
	b.WriteString(profileDescription)
	b.WriteString("\nCoaching guidance for this goal:\n")
	b.WriteString(s.promptGuidance)
	b.WriteString("\n")
	return b.String()
}

// buildProfileDescription renders what is known about the user as bullet
// lines. Unknown fields are omitted rather than guessed at, and a user with
// no data at all gets an explicit sentinel line.
func buildProfileDescription(profile *Profile, activity ActivitySummary) string {
	var lines []string
	if profile != nil {
		if profile.Age > 0 {
			lines = append(lines, fmt.Sprintf("- Age: %d", profile.Age))
		}
		if profile.Sex != "" {
			lines = append(lines, fmt.Sprintf("- Sex: %s", profile.Sex))
		}
		if profile.HeightCm > 0 {
			lines = append(lines, fmt.Sprintf("- Height: %.0f cm", profile.HeightCm))
		}
		if profile.WeightKg > 0 {
			lines = append(lines, fmt.Sprintf("- Weight: %.1f kg", profile.WeightKg))
		}
		if bmi := profile.BMI(); bmi > 0 {
			lines = append(lines, fmt.Sprintf("- BMI: %.1f (%s)", bmi, BMICategory(bmi)))
		}
	}
	if activity.WorkoutCount > 0 {
		lines = append(lines, fmt.Sprintf("- Workouts in the last 30 days: %d", activity.WorkoutCount))
		lines = append(lines, fmt.Sprintf("- Total training time: %d minutes", activity.TotalDurationMin))
		lines = append(lines, fmt.Sprintf("- Average session length: %.0f minutes", activity.AvgDurationMin))
		if activity.TotalCaloriesBurned > 0 {
			lines = append(lines, fmt.Sprintf("- Calories burned: %.0f", activity.TotalCaloriesBurned))
		}
		if len(activity.PreferredExerciseCategories) > 0 {
			lines = append(lines, fmt.Sprintf("- Preferred exercise types: %s",
				strings.Join(activity.PreferredExerciseCategories, ", ")))
		}
	} else {
		lines = append(lines, "- No recorded workouts in the last 30 days")
	}
	if activity.DietRecordCount > 0 {
		lines = append(lines, fmt.Sprintf("- Diet records in the last 30 days: %d", activity.DietRecordCount))
		lines = append(lines, fmt.Sprintf("- Average calories per meal: %.0f", activity.AvgCaloriesPerMeal))
		if activity.AvgProteinG > 0 {
			lines = append(lines, fmt.Sprintf("- Average protein per meal: %.0f g", activity.AvgProteinG))
		}
		if len(activity.PreferredFoodCategories) > 0 {
			lines = append(lines, fmt.Sprintf("- Preferred food types: %s",
				strings.Join(activity.PreferredFoodCategories, ", ")))
		}
	}
	if len(lines) == 1 && profile == nil {
		return "No profile information available.\n"
	}
	return strings.Join(lines, "\n") + "\n"
}
