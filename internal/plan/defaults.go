package plan

import "fmt"

// DefaultPlan builds a complete plan from the goal catalog. It is the
// fallback for every failure mode of AI generation, so it must always return
// a schema-complete plan. The returned plan owns its schedule and tips and
// never aliases catalog data.
func DefaultPlan(goal Goal, experience Experience) Plan {
	s := strategyFor(goal)
	schedules, ok := s.schedules[experience]
	if !ok {
		schedules = s.schedules[ExperienceBeginner]
	}
	return Plan{
		Title: defaultTitle(goal, experience),
		Description: fmt.Sprintf(
			"A balanced weekly %s program for %s exercisers, built from proven training principles.",
			goal, experience),
		WeeklySchedule:  copySchedule(schedules),
		NutritionAdvice: s.nutritionAdvice,
		Tips:            append([]string(nil), s.tips...),
	}
}

func defaultTitle(goal Goal, experience Experience) string {
	return fmt.Sprintf("%s plan - %s", experience, goal)
}

func copySchedule(schedule map[string]DaySchedule) map[string]DaySchedule {
	copied := make(map[string]DaySchedule, len(schedule))
	for day, entry := range schedule {
		entry.Activities = append([]string(nil), entry.Activities...)
		copied[day] = entry
	}
	return copied
}
