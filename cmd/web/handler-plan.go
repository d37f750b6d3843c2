package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/launikari/fitplan/internal/contexthelpers"
	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/plan"
	"github.com/yuin/goldmark"
)

func (app *application) planGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if !app.decodeJSON(w, r, &req) {
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	generated, err := app.plans.Generate(r.Context(), userID, req)
	if errors.Is(err, plan.ErrInvalidUser) {
		app.unauthorized(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	saved, err := app.plans.Save(r.Context(), userID, generated, req)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.created(w, r, saved)
}

func (app *application) plansGET(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	plans, total, err := app.plans.History(r.Context(), userID, page, limit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, map[string]any{
		"plans": plans,
		"total": total,
	})
}

// planDetail is a stored plan with the nutrition advice additionally rendered
// from markdown to HTML for clients that display it directly.
type planDetail struct {
	plan.Plan
	NutritionAdviceHTML string `json:"nutrition_advice_html,omitempty"`
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid plan id")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	stored, err := app.plans.Get(r.Context(), userID, planID)
	if errors.Is(err, plan.ErrPlanNotFound) {
		app.clientError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	detail := planDetail{Plan: stored}
	var rendered bytes.Buffer
	if err = goldmark.Convert([]byte(stored.NutritionAdvice), &rendered); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "render nutrition advice", errors.SlogError(err))
	} else {
		detail.NutritionAdviceHTML = rendered.String()
	}
	app.ok(w, r, detail)
}

func (app *application) planDELETE(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid plan id")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	err = app.plans.Delete(r.Context(), userID, planID)
	if errors.Is(err, plan.ErrPlanNotFound) {
		app.clientError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, nil)
}
