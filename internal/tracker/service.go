package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/sqlite"
)

// ErrFoodNotFound is returned when a diet record references an unknown food.
var ErrFoodNotFound = errors.NewSentinel("food not found")

// ErrExerciseNotFound is returned when a log references an unknown exercise.
var ErrExerciseNotFound = errors.NewSentinel("exercise not found")

// ErrInvalidRecord is returned for non-positive quantities or durations.
var ErrInvalidRecord = errors.NewSentinel("invalid record")

// Service records diet and exercise entries. Calories are derived from the
// catalog at write time so later catalog edits do not rewrite history.
type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewService creates a tracker service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// referenceWeightKg is used for MET calorie estimates when computing burn for
// a logged exercise. A per-user weight would be more precise but history
// should not change when the user updates their profile.
const referenceWeightKg = 70.0

// RecordDiet logs a food intake and returns the stored record with derived
// calories.
func (s *Service) RecordDiet(ctx context.Context, userID, foodID int, quantityGrams float64, recordedAt time.Time) (DietRecord, error) {
	if quantityGrams <= 0 {
		return DietRecord{}, errors.Wrap(ErrInvalidRecord, "record diet",
			slog.Float64("quantity_grams", quantityGrams))
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	var (
		name            string
		caloriesPer100g float64
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT name, calories_per_100g FROM foods WHERE id = ?`, foodID).
		Scan(&name, &caloriesPer100g)
	if errors.Is(err, sql.ErrNoRows) {
		return DietRecord{}, ErrFoodNotFound
	}
	if err != nil {
		return DietRecord{}, fmt.Errorf("query food: %w", err)
	}

	calories := caloriesPer100g * quantityGrams / 100
	result, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO diet_records (user_id, food_id, quantity_grams, calories, recorded_at)
		VALUES (?, ?, ?, ?, ?)`, userID, foodID, quantityGrams, calories, recordedAt)
	if err != nil {
		return DietRecord{}, fmt.Errorf("insert diet record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return DietRecord{}, fmt.Errorf("last insert id: %w", err)
	}

	return DietRecord{
		ID:            int(id),
		FoodID:        foodID,
		FoodName:      name,
		QuantityGrams: quantityGrams,
		Calories:      calories,
		RecordedAt:    recordedAt,
	}, nil
}

// RecordExercise logs a training bout and returns the stored record with the
// MET-estimated calorie burn.
func (s *Service) RecordExercise(ctx context.Context, userID, exerciseID, durationMinutes int, recordedAt time.Time) (ExerciseLog, error) {
	if durationMinutes <= 0 {
		return ExerciseLog{}, errors.Wrap(ErrInvalidRecord, "record exercise",
			slog.Int("duration_minutes", durationMinutes))
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	var (
		name string
		met  float64
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT name, met FROM exercises WHERE id = ?`, exerciseID).Scan(&name, &met)
	if errors.Is(err, sql.ErrNoRows) {
		return ExerciseLog{}, ErrExerciseNotFound
	}
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("query exercise: %w", err)
	}

	// kcal = MET * weight in kg * hours.
	calories := met * referenceWeightKg * float64(durationMinutes) / 60
	result, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO exercise_logs (user_id, exercise_id, duration_minutes, calories_burned, recorded_at)
		VALUES (?, ?, ?, ?, ?)`, userID, exerciseID, durationMinutes, calories, recordedAt)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("insert exercise log: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("last insert id: %w", err)
	}

	return ExerciseLog{
		ID:              int(id),
		ExerciseID:      exerciseID,
		ExerciseName:    name,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  calories,
		RecordedAt:      recordedAt,
	}, nil
}

// Foods lists the food catalog.
func (s *Service) Foods(ctx context.Context) (_ []Food, err error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, category, calories_per_100g, protein_g, carbs_g, fat_g
		FROM foods ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var foods []Food
	for rows.Next() {
		var f Food
		if err = rows.Scan(&f.ID, &f.Name, &f.Category, &f.CaloriesPer100g,
			&f.ProteinG, &f.CarbsG, &f.FatG); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return foods, nil
}

// Exercises lists the exercise catalog.
func (s *Service) Exercises(ctx context.Context) (_ []Exercise, err error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, category, met FROM exercises ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err = rows.Scan(&e.ID, &e.Name, &e.Category, &e.MET); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return exercises, nil
}
