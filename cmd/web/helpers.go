package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/launikari/fitplan/internal/errors"
)

// envelope is the JSON response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

func (app *application) ok(w http.ResponseWriter, r *http.Request, data any) {
	app.writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data})
}

func (app *application) created(w http.ResponseWriter, r *http.Request, data any) {
	app.writeJSON(w, r, http.StatusCreated, envelope{Success: true, Data: data})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, envelope{Success: false, Message: message})
}

func (app *application) unauthorized(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusUnauthorized, "authentication required")
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError,
		envelope{Success: false, Message: "internal server error"})
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	const maxBodyBytes = 1 << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}
