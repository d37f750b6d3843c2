package main

import (
	"net/http"
	"time"

	"github.com/launikari/fitplan/internal/contexthelpers"
	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/tracker"
)

func (app *application) foodsGET(w http.ResponseWriter, r *http.Request) {
	foods, err := app.tracker.Foods(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, foods)
}

func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	exercises, err := app.tracker.Exercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, exercises)
}

func (app *application) dietRecordPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FoodID        int       `json:"food_id"`
		QuantityGrams float64   `json:"quantity_grams"`
		RecordedAt    time.Time `json:"recorded_at"`
	}
	if !app.decodeJSON(w, r, &req) {
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	record, err := app.tracker.RecordDiet(r.Context(), userID, req.FoodID, req.QuantityGrams, req.RecordedAt)
	switch {
	case errors.Is(err, tracker.ErrInvalidRecord):
		app.clientError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	case errors.Is(err, tracker.ErrFoodNotFound):
		app.clientError(w, r, http.StatusNotFound, "food not found")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}
	app.created(w, r, record)
}

func (app *application) exerciseLogPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID      int       `json:"exercise_id"`
		DurationMinutes int       `json:"duration_minutes"`
		RecordedAt      time.Time `json:"recorded_at"`
	}
	if !app.decodeJSON(w, r, &req) {
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	log, err := app.tracker.RecordExercise(r.Context(), userID, req.ExerciseID, req.DurationMinutes, req.RecordedAt)
	switch {
	case errors.Is(err, tracker.ErrInvalidRecord):
		app.clientError(w, r, http.StatusBadRequest, "duration must be positive")
		return
	case errors.Is(err, tracker.ErrExerciseNotFound):
		app.clientError(w, r, http.StatusNotFound, "exercise not found")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}
	app.created(w, r, log)
}

func (app *application) activityStatsGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	summary, err := app.plans.ActivityStats(r.Context(), userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, summary)
}
