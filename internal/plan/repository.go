package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/sqlite"
)

// ErrPlanNotFound is returned when a plan id does not exist for the user.
var ErrPlanNotFound = errors.NewSentinel("plan not found")

// ErrProfileNotFound is returned when the user has no profile row.
var ErrProfileNotFound = errors.NewSentinel("profile not found")

// repository bundles the data access needed by the plan service.
type repository struct {
	profiles *profileRepository
	activity *activityRepository
	plans    *planRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		profiles: &profileRepository{db: db},
		activity: &activityRepository{db: db, logger: logger},
		plans:    &planRepository{db: db, logger: logger},
	}
}

type profileRepository struct {
	db *sqlite.Database
}

// Get loads a user's body metrics. Nullable columns scan through sql.Null
// types since profile completion is optional.
func (r *profileRepository) Get(ctx context.Context, userID int) (Profile, error) {
	var (
		age      sql.NullInt64
		sex      sql.NullString
		heightCm sql.NullFloat64
		weightKg sql.NullFloat64
		goal     sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT age, sex, height_cm, weight_kg, fitness_goal
		FROM users
		WHERE id = ?`, userID).Scan(&age, &sex, &heightCm, &weightKg, &goal)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return Profile{
		Age:         int(age.Int64),
		Sex:         sex.String,
		HeightCm:    heightCm.Float64,
		WeightKg:    weightKg.Float64,
		FitnessGoal: goal.String,
	}, nil
}

// Update stores the user's body metrics.
func (r *profileRepository) Update(ctx context.Context, userID int, profile Profile) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE users
		SET age = ?, sex = ?, height_cm = ?, weight_kg = ?, fitness_goal = ?
		WHERE id = ?`,
		nullableInt(profile.Age),
		nullableString(profile.Sex),
		nullableFloat(profile.HeightCm),
		nullableFloat(profile.WeightKg),
		nullableString(profile.FitnessGoal),
		userID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func nullableInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v > 0}
}

func nullableFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v > 0}
}

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

type activityRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// Summary aggregates exercise logs and diet records at or after since.
// COALESCE keeps the aggregates at 0 instead of NULL for users with no
// records.
func (r *activityRepository) Summary(ctx context.Context, userID int, since time.Time) (ActivitySummary, error) {
	var summary ActivitySummary
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(duration_minutes), 0),
		       COALESCE(AVG(duration_minutes), 0),
		       COALESCE(SUM(calories_burned), 0),
		       COALESCE(AVG(calories_burned), 0)
		FROM exercise_logs
		WHERE user_id = ? AND recorded_at >= ?`, userID, since).Scan(
		&summary.WorkoutCount,
		&summary.TotalDurationMin,
		&summary.AvgDurationMin,
		&summary.TotalCaloriesBurned,
		&summary.AvgCaloriesBurned,
	)
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("query exercise aggregates: %w", err)
	}

	err = r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(dr.calories), 0),
		       COALESCE(AVG(dr.calories), 0),
		       COALESCE(AVG(f.protein_g * dr.quantity_grams / 100), 0)
		FROM diet_records dr
		         JOIN foods f ON f.id = dr.food_id
		WHERE dr.user_id = ? AND dr.recorded_at >= ?`, userID, since).Scan(
		&summary.DietRecordCount,
		&summary.TotalCalories,
		&summary.AvgCaloriesPerMeal,
		&summary.AvgProteinG,
	)
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("query diet aggregates: %w", err)
	}

	summary.PreferredExerciseCategories, err = r.topCategories(ctx, `
		SELECT e.category
		FROM exercise_logs el
		         JOIN exercises e ON e.id = el.exercise_id
		WHERE el.user_id = ? AND el.recorded_at >= ?
		GROUP BY e.category
		ORDER BY COUNT(*) DESC, e.category ASC
		LIMIT 3`, userID, since)
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("query preferred exercise categories: %w", err)
	}

	summary.PreferredFoodCategories, err = r.topCategories(ctx, `
		SELECT f.category
		FROM diet_records dr
		         JOIN foods f ON f.id = dr.food_id
		WHERE dr.user_id = ? AND dr.recorded_at >= ?
		GROUP BY f.category
		ORDER BY COUNT(*) DESC, f.category ASC
		LIMIT 3`, userID, since)
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("query preferred food categories: %w", err)
	}
	return summary, nil
}

// topCategories runs a GROUP BY category query ranked by frequency. Ties
// break alphabetically so the result is deterministic.
func (r *activityRepository) topCategories(ctx context.Context, query string, userID int, since time.Time) (_ []string, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var categories []string
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return categories, nil
}

type planRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// Create persists a generated plan. Tips and the weekly schedule are stored
// as JSON columns.
func (r *planRepository) Create(ctx context.Context, userID int, p Plan, goal Goal, experience Experience) (int, error) {
	tipsJSON, err := json.Marshal(p.Tips)
	if err != nil {
		return 0, fmt.Errorf("marshal tips: %w", err)
	}
	scheduleJSON, err := json.Marshal(p.WeeklySchedule)
	if err != nil {
		return 0, fmt.Errorf("marshal weekly schedule: %w", err)
	}
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO ai_plans (user_id, title, description, goal, experience_level,
		                      tips, weekly_schedule, nutrition_advice)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, p.Title, p.Description, string(goal), string(experience),
		string(tipsJSON), string(scheduleJSON), p.NutritionAdvice)
	if err != nil {
		return 0, fmt.Errorf("insert plan: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return int(id), nil
}

// List returns a page of the user's plans, newest first, with the total count
// for pagination.
func (r *planRepository) List(ctx context.Context, userID, limit, offset int) (_ []Plan, total int, err error) {
	err = r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM ai_plans WHERE user_id = ?`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count plans: %w", err)
	}

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, title, description, tips, weekly_schedule, nutrition_advice, created_at
		FROM ai_plans
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query plans: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if p, err = scanPlan(rows.Scan); err != nil {
			return nil, 0, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows: %w", err)
	}
	return plans, total, nil
}

// Get returns one of the user's plans by id.
func (r *planRepository) Get(ctx context.Context, userID, planID int) (Plan, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, title, description, tips, weekly_schedule, nutrition_advice, created_at
		FROM ai_plans
		WHERE user_id = ? AND id = ?`, userID, planID)
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return Plan{}, fmt.Errorf("query plan: %w", err)
	}
	return p, nil
}

// Delete removes one of the user's plans.
func (r *planRepository) Delete(ctx context.Context, userID, planID int) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM ai_plans WHERE user_id = ? AND id = ?`, userID, planID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// scanPlan reads a plan row and decodes the JSON columns. Rows written by
// older versions with unparseable JSON degrade to empty fields instead of
// failing the whole listing.
func scanPlan(scan func(dest ...any) error) (Plan, error) {
	var (
		p            Plan
		tipsJSON     string
		scheduleJSON string
		createdAt    time.Time
	)
	if err := scan(&p.ID, &p.Title, &p.Description, &tipsJSON, &scheduleJSON,
		&p.NutritionAdvice, &createdAt); err != nil {
		return Plan{}, err
	}
	p.CreatedAt = createdAt
	if err := json.Unmarshal([]byte(tipsJSON), &p.Tips); err != nil {
		p.Tips = nil
	}
	if err := json.Unmarshal([]byte(scheduleJSON), &p.WeeklySchedule); err != nil {
		p.WeeklySchedule = nil
	}
	return p, nil
}
