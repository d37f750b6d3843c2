package plan

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Goal represents the training objective a plan is built around.
type Goal string

const (
	GoalFatLoss       Goal = "fat loss"
	GoalMuscleGain    Goal = "muscle gain"
	GoalEndurance     Goal = "endurance"
	GoalFlexibility   Goal = "flexibility"
	GoalGeneralHealth Goal = "general health"
)

// Experience represents the exerciser's training background.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Intensity is the effort level of a training day.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// goalAliases maps free-text goal descriptions to the supported set. Unknown
// text resolves to general health.
var goalAliases = map[string]Goal{
	"fat loss":      GoalFatLoss,
	"lose weight":   GoalFatLoss,
	"weight loss":   GoalFatLoss,
	"减脂塑形":          GoalFatLoss,
	"muscle gain":   GoalMuscleGain,
	"build muscle":  GoalMuscleGain,
	"strength":      GoalMuscleGain,
	"增肌强体":          GoalMuscleGain,
	"endurance":     GoalEndurance,
	"stamina":       GoalEndurance,
	"cardio":        GoalEndurance,
	"提升耐力":          GoalEndurance,
	"flexibility":   GoalFlexibility,
	"mobility":      GoalFlexibility,
	"增强柔韧性":         GoalFlexibility,
	"general health": GoalGeneralHealth,
	"overall health": GoalGeneralHealth,
	"wellness":       GoalGeneralHealth,
	"综合健康":          GoalGeneralHealth,
}

// ResolveGoal maps arbitrary goal text to a supported goal.
func ResolveGoal(text string) Goal {
	if goal, ok := goalAliases[strings.ToLower(strings.TrimSpace(text))]; ok {
		return goal
	}
	return GoalGeneralHealth
}

var experienceAliases = map[string]Experience{
	"beginner":     ExperienceBeginner,
	"novice":       ExperienceBeginner,
	"初学者":          ExperienceBeginner,
	"intermediate": ExperienceIntermediate,
	"中级":           ExperienceIntermediate,
	"advanced":     ExperienceAdvanced,
	"expert":       ExperienceAdvanced,
	"高级":           ExperienceAdvanced,
}

// ResolveExperience maps arbitrary experience text to a supported level.
func ResolveExperience(text string) Experience {
	if experience, ok := experienceAliases[strings.ToLower(strings.TrimSpace(text))]; ok {
		return experience
	}
	return ExperienceBeginner
}

// weekdays in schedule order. Weekly schedules are keyed by these names.
var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DaySchedule is one day of a weekly training schedule.
type DaySchedule struct {
	Type       string    `json:"type"`
	Activities []string  `json:"activities"`
	Duration   int       `json:"duration"`
	Intensity  Intensity `json:"intensity"`
	Notes      string    `json:"notes"`
}

// UnmarshalJSON tolerates the loose shapes language models produce: duration
// as a quoted string like "45 minutes" and free-form intensity words.
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string          `json:"type"`
		Activities []string        `json:"activities"`
		Duration   json.RawMessage `json:"duration"`
		Intensity  string          `json:"intensity"`
		Notes      string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Type = raw.Type
	d.Activities = raw.Activities
	d.Duration = parseDuration(raw.Duration)
	d.Intensity = normalizeIntensity(raw.Intensity)
	d.Notes = raw.Notes
	return nil
}

// parseDuration reads a duration in minutes from a JSON number or from the
// leading digits of a string like "45 min". Unparseable or negative input
// yields 0.
func parseDuration(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		if minutes, err := number.Int64(); err == nil {
			return max(int(minutes), 0)
		}
		if minutes, err := number.Float64(); err == nil {
			return max(int(minutes), 0)
		}
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}
	return minutes
}

// normalizeIntensity folds free-form effort words into the three supported
// levels. High-effort words are checked first so "medium-high" lands on high.
func normalizeIntensity(text string) Intensity {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, word := range []string{"high", "hard", "intense", "vigorous"} {
		if strings.Contains(lowered, word) {
			return IntensityHigh
		}
	}
	for _, word := range []string{"low", "light", "easy", "gentle"} {
		if strings.Contains(lowered, word) {
			return IntensityLow
		}
	}
	return IntensityMedium
}

// ProfileSummary is the derived body-composition context attached to a plan
// when the user has a complete profile.
type ProfileSummary struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	TargetGoal  string  `json:"target_goal"`
}

// Plan is a complete weekly fitness plan.
type Plan struct {
	ID              int                    `json:"id,omitempty"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	WeeklySchedule  map[string]DaySchedule `json:"weekly_schedule"`
	NutritionAdvice string                 `json:"nutrition_advice"`
	Tips            []string               `json:"tips"`
	ProfileSummary  *ProfileSummary        `json:"user_profile_summary,omitempty"`
	CreatedAt       time.Time              `json:"created_at,omitzero"`
}

// Profile holds the body metrics a user has recorded.
type Profile struct {
	Age         int     `json:"age"`
	Sex         string  `json:"sex"`
	HeightCm    float64 `json:"height_cm"`
	WeightKg    float64 `json:"weight_kg"`
	FitnessGoal string  `json:"fitness_goal"`
}

// BMI returns the body mass index rounded to one decimal, or 0 when height
// or weight is missing.
func (p Profile) BMI() float64 {
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0
	}
	heightM := p.HeightCm / 100
	return math.Round(p.WeightKg/(heightM*heightM)*10) / 10
}

// BMICategory classifies a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 24:
		return "normal"
	case bmi < 28:
		return "overweight"
	default:
		return "obese"
	}
}

// ActivitySummary aggregates a user's recent exercise logs and diet records.
type ActivitySummary struct {
	WorkoutCount        int     `json:"workout_count"`
	TotalDurationMin    int     `json:"total_duration_minutes"`
	AvgDurationMin      float64 `json:"avg_duration_minutes"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	AvgCaloriesBurned   float64 `json:"avg_calories_burned"`

	DietRecordCount    int     `json:"diet_record_count"`
	TotalCalories      float64 `json:"total_calories"`
	AvgCaloriesPerMeal float64 `json:"avg_calories_per_meal"`
	AvgProteinG        float64 `json:"avg_protein_g"`

	PreferredExerciseCategories []string `json:"preferred_exercise_categories"`
	PreferredFoodCategories     []string `json:"preferred_food_categories"`
}

// Request carries the user's stated preferences for plan generation. All
// fields are free text; empty ones fall back to sensible defaults.
type Request struct {
	Goal                string `json:"fitness_goal"`
	Experience          string `json:"experience_level"`
	WeeklyFrequency     string `json:"weekly_frequency"`
	SessionDuration     string `json:"session_duration"`
	HealthCondition     string `json:"health_condition"`
	SpecialRequirements string `json:"special_requirements"`
}

// withDefaults fills the blanks a client is allowed to leave.
func (r Request) withDefaults() Request {
	if strings.TrimSpace(r.WeeklyFrequency) == "" {
		r.WeeklyFrequency = "3-4 days"
	}
	if strings.TrimSpace(r.SessionDuration) == "" {
		r.SessionDuration = "30-60 min"
	}
	if strings.TrimSpace(r.HealthCondition) == "" {
		r.HealthCondition = "good"
	}
	return r
}
