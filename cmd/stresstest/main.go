// Command stresstest load-tests a running deployment. It registers a pool of
// accounts, seeds each with weeks of diet and exercise records, and then runs
// the full plan lifecycle (profile update, generation, listing, detail,
// deletion) for every account concurrently.
//
// Plan generations hit the configured completion endpoint, so point the
// deployment at a stub or be prepared to pay for the tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/launikari/fitplan/internal/e2etest"
	"github.com/launikari/fitplan/internal/logging"
	"github.com/launikari/fitplan/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	userRegistrationTimeout    = 30 * time.Second
	scenarioTimeout            = 2 * time.Minute
	maxConcurrentRegistrations = 10
	maxConcurrentOperations    = 20
	successRateThreshold       = 95.0
	expectedArgsCount          = 2
	percentageMultiplier       = 100
	activityHistoryWeeks       = 8
	historyTimeout             = 5 * time.Minute
	stresstestPassword         = "stresstest-password"
)

// AuthenticatedUser holds a client with a valid session.
type AuthenticatedUser struct {
	Client   *e2etest.Client
	Username string
}

// RegisterAndAuthenticateUser creates one account and returns its client.
func RegisterAndAuthenticateUser(
	ctx context.Context,
	url string,
	userIndex int,
	logger *slog.Logger,
) (*AuthenticatedUser, error) {
	client, err := e2etest.NewClient(url)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	username := fmt.Sprintf("stresstest-%d-%d", time.Now().UnixNano(), userIndex)
	if err = client.Register(ctx, username, stresstestPassword); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "registered user", slog.String("username", username))
	return &AuthenticatedUser{Client: client, Username: username}, nil
}

// SetupUsers registers numUsers accounts with bounded concurrency.
func SetupUsers(
	ctx context.Context,
	url string,
	numUsers int,
	logger *slog.Logger,
) ([]*AuthenticatedUser, error) {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting user registration", slog.Int("num_users", numUsers))

	var (
		users   = make([]*AuthenticatedUser, 0, numUsers)
		usersMu sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRegistrations)

	for i := range numUsers {
		g.Go(func() error {
			userCtx, cancel := context.WithTimeout(gctx, userRegistrationTimeout)
			defer cancel()

			user, err := RegisterAndAuthenticateUser(userCtx, url, i, logger)
			if err != nil {
				return fmt.Errorf("user %d: %w", i, err)
			}

			usersMu.Lock()
			users = append(users, user)
			usersMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Some user registrations failed",
			slog.Int("successful_count", len(users)))
		return users, fmt.Errorf("registration failures: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "All users registered successfully",
		slog.Int("total_users", len(users)))

	return users, nil
}

// catalogIDs fetches one food and one exercise id from the seeded catalogs.
func catalogIDs(ctx context.Context, client *e2etest.Client) (foodID, exerciseID int, err error) {
	type catalogItem struct {
		ID int `json:"id"`
	}

	for _, target := range []struct {
		urlPath string
		id      *int
	}{
		{"/api/foods", &foodID},
		{"/api/exercises", &exerciseID},
	} {
		status, env, err := client.JSON(ctx, http.MethodGet, target.urlPath, nil)
		if err != nil {
			return 0, 0, fmt.Errorf("get %s: %w", target.urlPath, err)
		}
		if status != http.StatusOK {
			return 0, 0, fmt.Errorf("get %s: unexpected status code %d", target.urlPath, status)
		}
		var items []catalogItem
		if err = env.DecodeData(&items); err != nil {
			return 0, 0, fmt.Errorf("decode %s: %w", target.urlPath, err)
		}
		if len(items) == 0 {
			return 0, 0, fmt.Errorf("catalog %s is empty", target.urlPath)
		}
		*target.id = items[0].ID
	}
	return foodID, exerciseID, nil
}

// GenerateActivityHistory seeds weeks of diet and exercise records for a user
// so that plan generation has real activity to summarize.
func GenerateActivityHistory(ctx context.Context, user *AuthenticatedUser, logger *slog.Logger) error {
	client := user.Client

	foodID, exerciseID, err := catalogIDs(ctx, client)
	if err != nil {
		return fmt.Errorf("fetch catalog ids: %w", err)
	}

	for week := range activityHistoryWeeks {
		recordedAt := time.Now().AddDate(0, 0, -7*week).UTC()

		dietRecord := map[string]any{
			"food_id":        foodID,
			"quantity_grams": 150 + 10*week,
			"recorded_at":    recordedAt,
		}
		status, _, err := client.JSON(ctx, http.MethodPost, "/api/diet/records", dietRecord)
		if err != nil {
			return fmt.Errorf("post diet record: %w", err)
		}
		if status != http.StatusCreated {
			return fmt.Errorf("post diet record: unexpected status code %d", status)
		}

		exerciseLog := map[string]any{
			"exercise_id":      exerciseID,
			"duration_minutes": 20 + 5*(week%4),
			"recorded_at":      recordedAt,
		}
		if status, _, err = client.JSON(ctx, http.MethodPost, "/api/exercise/logs", exerciseLog); err != nil {
			return fmt.Errorf("post exercise log: %w", err)
		}
		if status != http.StatusCreated {
			return fmt.Errorf("post exercise log: unexpected status code %d", status)
		}
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "seeded activity history",
		slog.String("username", user.Username),
		slog.Int("weeks", activityHistoryWeeks))
	return nil
}

// GenerateActivityHistoryForUsers seeds history for every user concurrently.
func GenerateActivityHistoryForUsers(ctx context.Context, users []*AuthenticatedUser, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for _, user := range users {
		g.Go(func() error {
			if err := GenerateActivityHistory(gctx, user, logger); err != nil {
				return fmt.Errorf("user %s: %w", user.Username, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("generate activity history: %w", err)
	}
	return nil
}

// PlanScenario runs the full plan lifecycle for one user.
func PlanScenario(ctx context.Context, user *AuthenticatedUser, logger *slog.Logger) error {
	client := user.Client

	profile := map[string]any{
		"age":          25 + len(user.Username)%40,
		"sex":          "female",
		"height_cm":    170,
		"weight_kg":    65,
		"fitness_goal": "general health",
	}
	status, _, err := client.JSON(ctx, http.MethodPut, "/api/profile", profile)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("put profile: unexpected status code %d", status)
	}

	request := map[string]string{
		"fitness_goal":     "general health",
		"experience_level": "beginner",
	}
	status, env, err := client.JSON(ctx, http.MethodPost, "/api/plans/generate", request)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("generate plan: unexpected status code %d", status)
	}
	var generated struct {
		ID int `json:"id"`
	}
	if err = env.DecodeData(&generated); err != nil {
		return fmt.Errorf("decode generated plan: %w", err)
	}

	if status, _, err = client.JSON(ctx, http.MethodGet, "/api/plans", nil); err != nil {
		return fmt.Errorf("list plans: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("list plans: unexpected status code %d", status)
	}

	detailPath := fmt.Sprintf("/api/plans/%d", generated.ID)
	if status, _, err = client.JSON(ctx, http.MethodGet, detailPath, nil); err != nil {
		return fmt.Errorf("get plan: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get plan: unexpected status code %d", status)
	}

	if status, _, err = client.JSON(ctx, http.MethodGet, "/api/stats/activity", nil); err != nil {
		return fmt.Errorf("get activity stats: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get activity stats: unexpected status code %d", status)
	}

	if status, _, err = client.JSON(ctx, http.MethodDelete, detailPath, nil); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("delete plan: unexpected status code %d", status)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "plan scenario completed", slog.String("username", user.Username))
	return nil
}

// RunLoadTest performs the actual load testing with authenticated users.
func RunLoadTest(ctx context.Context, users []*AuthenticatedUser, logger *slog.Logger) error {
	userCount := len(users)
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_users", userCount))

	var successCount, failureCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for _, user := range users {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(gctx, scenarioTimeout)
			defer cancel()

			if err := PlanScenario(scenarioCtx, user, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.String("username", user.Username),
					slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(userCount) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		numUsers = 10
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}

	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	setupStart := time.Now()
	users, err := SetupUsers(ctx, url, numUsers, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed to setup users", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "User setup completed",
		slog.Duration("setup_duration", time.Since(setupStart)),
		slog.Int("authenticated_users", len(users)))

	historyStart := time.Now()
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting activity history generation",
		slog.Int("num_users", len(users)),
		slog.Int("weeks_per_user", activityHistoryWeeks))

	if err = GenerateActivityHistoryForUsers(ctx, users, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "some activity history generation failed, continuing with load test",
			slog.Any("error", err))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Activity history generation completed",
		slog.Duration("history_duration", time.Since(historyStart)))

	loadTestStart := time.Now()
	if err = RunLoadTest(ctx, users, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)),
		slog.Duration("load_test_duration", time.Since(loadTestStart)),
		slog.Int("users_tested", len(users)))
}
