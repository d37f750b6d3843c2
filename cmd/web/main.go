package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/launikari/fitplan/internal/account"
	"github.com/launikari/fitplan/internal/envstruct"
	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/flightrecorder"
	"github.com/launikari/fitplan/internal/logging"
	"github.com/launikari/fitplan/internal/plan"
	"github.com/launikari/fitplan/internal/sqlite"
	"github.com/launikari/fitplan/internal/tracker"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	accounts       *account.Service
	plans          *plan.Service
	tracker        *tracker.Service
	recorder       *flightrecorder.Service
	corsOrigins    []string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITPLAN_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITPLAN_SQLITE_URL" envDefault:"./fitplan.sqlite3"`
	// OpenAIAPIKey authenticates against the completion API. Plan generation
	// falls back to catalog plans when it is missing or invalid.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// OpenAIBaseURL overrides the completion endpoint for OpenAI-compatible providers.
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:""`
	// OpenAIModel selects the completion model.
	OpenAIModel string `env:"FITPLAN_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	// CORSOrigin is the browser origin allowed to call the API.
	CORSOrigin string `env:"FITPLAN_CORS_ORIGIN" envDefault:"http://localhost:3000"`
	// TracesDirectory enables flight-recorder captures of abnormally slow
	// requests when set.
	TracesDirectory string `env:"FITPLAN_TRACES_DIRECTORY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	completer := plan.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)

	var recorder *flightrecorder.Service
	if cfg.TracesDirectory != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDirectory,
		}); err != nil {
			return errors.Wrap(err, "create flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		accounts:       account.NewService(db, logger),
		plans:          plan.NewService(db, logger, completer),
		tracker:        tracker.NewService(db, logger),
		recorder:       recorder,
		corsOrigins:    []string{cfg.CORSOrigin},
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.LogAttrs(ctx, slog.LevelWarn, "failed to load .env", errors.SlogError(err))
	}
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
