// Package tracker records diet and exercise entries against the reference
// catalogs.
package tracker

import "time"

// Food is a reference catalog entry with macros per 100 grams.
type Food struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinG        float64 `json:"protein_g"`
	CarbsG          float64 `json:"carbs_g"`
	FatG            float64 `json:"fat_g"`
}

// Exercise is a reference catalog entry. MET is the metabolic equivalent used
// to estimate calorie burn.
type Exercise struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	MET      float64 `json:"met"`
}

// DietRecord is one logged meal component.
type DietRecord struct {
	ID            int       `json:"id"`
	FoodID        int       `json:"food_id"`
	FoodName      string    `json:"food_name"`
	QuantityGrams float64   `json:"quantity_grams"`
	Calories      float64   `json:"calories"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// ExerciseLog is one logged training bout.
type ExerciseLog struct {
	ID              int       `json:"id"`
	ExerciseID      int       `json:"exercise_id"`
	ExerciseName    string    `json:"exercise_name"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	RecordedAt      time.Time `json:"recorded_at"`
}
