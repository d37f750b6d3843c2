package main

import (
	"net/http"

	"github.com/launikari/fitplan/internal/contexthelpers"
	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/plan"
)

// profileResponse adds derived body-composition fields to the stored profile.
type profileResponse struct {
	plan.Profile
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmi_category,omitempty"`
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	profile, err := app.plans.Profile(r.Context(), userID)
	if errors.Is(err, plan.ErrProfileNotFound) {
		app.clientError(w, r, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, newProfileResponse(profile))
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var req plan.Profile
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.Age < 0 || req.Age > 120 || req.HeightCm < 0 || req.HeightCm > 280 ||
		req.WeightKg < 0 || req.WeightKg > 500 {
		app.clientError(w, r, http.StatusBadRequest, "profile values out of range")
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.plans.UpdateProfile(r.Context(), userID, req); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, newProfileResponse(req))
}

func newProfileResponse(profile plan.Profile) profileResponse {
	resp := profileResponse{Profile: profile}
	if bmi := profile.BMI(); bmi > 0 {
		resp.BMI = bmi
		resp.BMICategory = plan.BMICategory(bmi)
	}
	return resp
}
