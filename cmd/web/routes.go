package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(base(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/auth/register", session(http.HandlerFunc(app.registerPOST)))
	mux.Handle("POST /api/auth/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/auth/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/auth/me", mustSession(http.HandlerFunc(app.currentUserGET)))

	mux.Handle("GET /api/profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", mustSession(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/stats/activity", mustSession(http.HandlerFunc(app.activityStatsGET)))

	mux.Handle("GET /api/foods", session(http.HandlerFunc(app.foodsGET)))
	mux.Handle("GET /api/exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("POST /api/diet/records", mustSession(http.HandlerFunc(app.dietRecordPOST)))
	mux.Handle("POST /api/exercise/logs", mustSession(http.HandlerFunc(app.exerciseLogPOST)))

	mux.Handle("POST /api/plans/generate", mustSession(http.HandlerFunc(app.planGeneratePOST)))
	mux.Handle("GET /api/plans", mustSession(http.HandlerFunc(app.plansGET)))
	mux.Handle("GET /api/plans/{id}", mustSession(http.HandlerFunc(app.planGET)))
	mux.Handle("DELETE /api/plans/{id}", mustSession(http.HandlerFunc(app.planDELETE)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   app.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return corsMiddleware.Handler(mux)
}
