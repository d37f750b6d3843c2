// Command smoketest exercises a running deployment end to end: it registers a
// throwaway account, checks the session round trip, and reads the seeded
// catalogs. It exits non-zero on the first failure.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/launikari/fitplan/internal/e2etest"
	"github.com/launikari/fitplan/internal/logging"
	"github.com/launikari/fitplan/internal/testhelpers"
)

func testAuth(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var err error

	username := fmt.Sprintf("smoketest-%d", time.Now().UnixNano())
	password := "smoketest-password"

	if err = client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if err = client.Logout(ctx); err != nil {
		return fmt.Errorf("logout user: %w", err)
	}
	if err = client.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login user: %w", err)
	}
	return nil
}

func testCatalogs(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	for _, urlPath := range []string{"/api/foods", "/api/exercises"} {
		status, env, err := client.JSON(ctx, http.MethodGet, urlPath, nil)
		if err != nil {
			return fmt.Errorf("get %s: %w", urlPath, err)
		}
		if status != http.StatusOK {
			return fmt.Errorf("get %s: unexpected status code %d", urlPath, status)
		}
		var items []any
		if err = env.DecodeData(&items); err != nil {
			return fmt.Errorf("decode %s: %w", urlPath, err)
		}
		if len(items) == 0 {
			return fmt.Errorf("catalog %s is empty", urlPath)
		}
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testAuth(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing auth", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testCatalogs(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing catalogs", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
