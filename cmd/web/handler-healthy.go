package main

import "net/http"

func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.ok(w, r, map[string]string{"status": "healthy"})
}
