package main

import (
	"net/http"
	"testing"

	"github.com/launikari/fitplan/internal/e2etest"
	"github.com/launikari/fitplan/internal/testhelpers"
)

func Test_application_profile(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Requires authentication", func(t *testing.T) {
		status, _, err := client.JSON(ctx, http.MethodGet, "/api/profile", nil)
		if err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, status)
		}
	})

	if err = client.Register(ctx, "pekka", "correct-horse-battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Fresh account has no profile", func(t *testing.T) {
		status, _, err := client.JSON(ctx, http.MethodGet, "/api/profile", nil)
		if err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, status)
		}
	})

	t.Run("Update returns derived body composition", func(t *testing.T) {
		body := map[string]any{
			"age":          30,
			"sex":          "female",
			"height_cm":    170,
			"weight_kg":    62,
			"fitness_goal": "减脂塑形",
		}
		status, env, err := client.JSON(ctx, http.MethodPut, "/api/profile", body)
		if err != nil {
			t.Fatalf("Failed to put profile: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("Expected status %d, got %d (%s)", http.StatusOK, status, env.Message)
		}
		var profile struct {
			Age         int     `json:"age"`
			BMI         float64 `json:"bmi"`
			BMICategory string  `json:"bmi_category"`
		}
		if err = env.DecodeData(&profile); err != nil {
			t.Fatalf("Failed to decode profile: %v", err)
		}
		if profile.Age != 30 {
			t.Errorf("Expected age 30, got %d", profile.Age)
		}
		if profile.BMI != 21.5 {
			t.Errorf("Expected BMI 21.5, got %v", profile.BMI)
		}
		if profile.BMICategory != "normal" {
			t.Errorf("Expected BMI category %q, got %q", "normal", profile.BMICategory)
		}
	})

	t.Run("Fetch returns the stored profile", func(t *testing.T) {
		status, env, err := client.JSON(ctx, http.MethodGet, "/api/profile", nil)
		if err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, status)
		}
		var profile struct {
			Sex         string  `json:"sex"`
			HeightCm    float64 `json:"height_cm"`
			WeightKg    float64 `json:"weight_kg"`
			FitnessGoal string  `json:"fitness_goal"`
		}
		if err = env.DecodeData(&profile); err != nil {
			t.Fatalf("Failed to decode profile: %v", err)
		}
		if profile.Sex != "female" {
			t.Errorf("Expected sex %q, got %q", "female", profile.Sex)
		}
		if profile.HeightCm != 170 || profile.WeightKg != 62 {
			t.Errorf("Expected 170cm/62kg, got %vcm/%vkg", profile.HeightCm, profile.WeightKg)
		}
		if profile.FitnessGoal != "减脂塑形" {
			t.Errorf("Expected goal %q, got %q", "减脂塑形", profile.FitnessGoal)
		}
	})

	t.Run("Rejects out-of-range values", func(t *testing.T) {
		body := map[string]any{
			"age":       300,
			"height_cm": 170,
			"weight_kg": 62,
		}
		status, _, err := client.JSON(ctx, http.MethodPut, "/api/profile", body)
		if err != nil {
			t.Fatalf("Failed to put profile: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("Profiles are scoped per user", func(t *testing.T) {
		other, err := e2etest.NewClient(server.URL())
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		if err = other.Register(ctx, "liisa", "correct-horse-battery"); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		status, _, err := other.JSON(ctx, http.MethodGet, "/api/profile", nil)
		if err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, status)
		}
	})
}
