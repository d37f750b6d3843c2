package main

import (
	"net/http"

	"github.com/launikari/fitplan/internal/account"
	"github.com/launikari/fitplan/internal/contexthelpers"
	"github.com/launikari/fitplan/internal/errors"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) registerPOST(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	user, err := app.accounts.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, account.ErrInvalidInput):
		app.clientError(w, r, http.StatusBadRequest,
			"username must be 3-32 characters (letters, digits, _ - .) and password at least 8")
		return
	case errors.Is(err, account.ErrUsernameTaken):
		app.clientError(w, r, http.StatusConflict, "username already taken")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}

	// Renew the session token on privilege change.
	if err = app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, user.ID)
	app.created(w, r, user)
}

func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	user, err := app.accounts.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		app.clientError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}

	if err = app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, user.ID)
	app.ok(w, r, user)
}

func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, nil)
}

func (app *application) currentUserGET(w http.ResponseWriter, r *http.Request) {
	user, err := app.accounts.Get(r.Context(), contexthelpers.AuthenticatedUserID(r.Context()))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.ok(w, r, user)
}
