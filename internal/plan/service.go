package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/sqlite"
)

// ErrInvalidUser is returned when plan generation is requested without a
// valid user id. It is the only error Generate can return; every other
// failure degrades to the default plan.
var ErrInvalidUser = errors.NewSentinel("invalid user id")

// activityWindow is how far back the analyzer looks at exercise logs.
const activityWindow = 30 * 24 * time.Hour

// Service generates, persists, and serves fitness plans.
type Service struct {
	repo      *repository
	completer Completer
	logger    *slog.Logger
}

// NewService creates a plan service backed by the given database and
// completion client.
func NewService(db *sqlite.Database, logger *slog.Logger, completer Completer) *Service {
	return &Service{
		repo:      newRepository(db, logger),
		completer: completer,
		logger:    logger,
	}
}

// Generate produces a complete weekly plan for the user. The pipeline runs
// profile lookup, activity analysis, prompt composition, one model call, and
// response parsing. Each stage degrades independently: a failed profile read
// means an anonymous prompt, a failed model call means the default plan.
// The returned plan is always schema-complete.
func (s *Service) Generate(ctx context.Context, userID int, req Request) (Plan, error) {
	if userID <= 0 {
		return Plan{}, errors.Wrap(ErrInvalidUser, "generate plan", slog.Int("user_id", userID))
	}

	req = req.withDefaults()
	goal := ResolveGoal(req.Goal)
	experience := ResolveExperience(req.Experience)

	var profile *Profile
	loaded, err := s.repo.profiles.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		s.logger.LogAttrs(ctx, slog.LevelDebug, "no profile for user", slog.Int("user_id", userID))
	case err != nil:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "profile lookup failed, generating without profile",
			slog.Int("user_id", userID), errors.SlogError(err))
	default:
		profile = &loaded
	}

	activity, err := s.repo.activity.Summary(ctx, userID, time.Now().Add(-activityWindow))
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "activity analysis failed, generating without history",
			slog.Int("user_id", userID), errors.SlogError(err))
		activity = ActivitySummary{}
	}

	userPrompt := composeUserPrompt(req, goal, experience, buildProfileDescription(profile, activity))

	raw, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "completion failed, falling back to default plan",
			slog.Int("user_id", userID), errors.SlogError(err))
		raw = ""
	}

	p := parseResponse(raw, goal, experience)
	if profile != nil {
		if bmi := profile.BMI(); bmi > 0 {
			p.ProfileSummary = &ProfileSummary{
				BMI:         bmi,
				BMICategory: BMICategory(bmi),
				TargetGoal:  string(goal),
			}
		}
	}
	return p, nil
}

// Save persists a generated plan and returns it with its assigned id.
func (s *Service) Save(ctx context.Context, userID int, p Plan, req Request) (Plan, error) {
	id, err := s.repo.plans.Create(ctx, userID, p, ResolveGoal(req.Goal), ResolveExperience(req.Experience))
	if err != nil {
		return Plan{}, fmt.Errorf("save plan: %w", err)
	}
	p.ID = id
	return p, nil
}

// History returns a page of the user's saved plans and the total count.
func (s *Service) History(ctx context.Context, userID, page, limit int) ([]Plan, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	plans, total, err := s.repo.plans.List(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list plans: %w", err)
	}
	return plans, total, nil
}

// Get returns one of the user's saved plans.
func (s *Service) Get(ctx context.Context, userID, planID int) (Plan, error) {
	p, err := s.repo.plans.Get(ctx, userID, planID)
	if err != nil {
		return Plan{}, fmt.Errorf("get plan %d: %w", planID, err)
	}
	return p, nil
}

// Delete removes one of the user's saved plans.
func (s *Service) Delete(ctx context.Context, userID, planID int) error {
	if err := s.repo.plans.Delete(ctx, userID, planID); err != nil {
		return fmt.Errorf("delete plan %d: %w", planID, err)
	}
	return nil
}

// ActivityStats exposes the 30-day activity summary used during generation.
func (s *Service) ActivityStats(ctx context.Context, userID int) (ActivitySummary, error) {
	summary, err := s.repo.activity.Summary(ctx, userID, time.Now().Add(-activityWindow))
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("activity summary: %w", err)
	}
	return summary, nil
}

// Profile returns the user's stored body metrics.
func (s *Service) Profile(ctx context.Context, userID int) (Profile, error) {
	profile, err := s.repo.profiles.Get(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile stores the user's body metrics.
func (s *Service) UpdateProfile(ctx context.Context, userID int, profile Profile) error {
	if err := s.repo.profiles.Update(ctx, userID, profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
