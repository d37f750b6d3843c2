// Package account manages user registration and credential checks.
package account

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/sqlite"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong username or password. The two
// cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.NewSentinel("invalid credentials")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.NewSentinel("username already taken")

// ErrInvalidInput is returned for usernames or passwords outside the allowed
// shape.
var ErrInvalidInput = errors.NewSentinel("invalid username or password format")

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
)

// User is an account row without credentials.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Service handles account registration and authentication.
type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewService creates an account service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Register creates an account and returns the new user.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	result, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username, string(hash))
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("last insert id: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "registered user", slog.Int64("user_id", id))
	return User{ID: int(id), Username: username}, nil
}

// Authenticate checks a username and password pair and returns the user.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	var (
		user User
		hash string
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE username = ?`,
		strings.TrimSpace(username)).Scan(&user.ID, &user.Username, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		// Burn comparable time so absent users are not detectable by latency.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, userID int) (User, error) {
	var user User
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, username FROM users WHERE id = ?`, userID).Scan(&user.ID, &user.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// dummyHash is a valid bcrypt hash of an unguessable value used to equalize
// timing for unknown usernames.
var dummyHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("fitplan-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

func validateCredentials(username, password string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return errors.Wrap(ErrInvalidInput, "validate username")
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return errors.Wrap(ErrInvalidInput, "validate username")
		}
	}
	if len(password) < minPasswordLen {
		return errors.Wrap(ErrInvalidInput, "validate password")
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
