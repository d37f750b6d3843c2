package account_test

import (
	"testing"

	"github.com/launikari/fitplan/internal/account"
	"github.com/launikari/fitplan/internal/errors"
	"github.com/launikari/fitplan/internal/sqlite"
	"github.com/launikari/fitplan/internal/testhelpers"
)

func newTestService(t *testing.T) *account.Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return account.NewService(db, logger)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := t.Context()

	user, err := svc.Register(ctx, "alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 || user.Username != "alice" {
		t.Errorf("Register returned %+v", user)
	}

	authed, err := svc.Authenticate(ctx, "alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("Authenticate returned id %d, want %d", authed.ID, user.ID)
	}

	if _, err = svc.Authenticate(ctx, "alice", "wrong password"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err = svc.Authenticate(ctx, "nobody", "correct horse battery"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := t.Context()

	if _, err := svc.Register(ctx, "bob", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "password456"); !errors.Is(err, account.ErrUsernameTaken) {
		t.Errorf("duplicate register error = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := t.Context()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "username too short", username: "ab", password: "password123"},
		{name: "username too long", username: "abcdefghijklmnopqrstuvwxyz0123456789", password: "password123"},
		{name: "username with spaces", username: "a user", password: "password123"},
		{name: "password too short", username: "carol", password: "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.username, tt.password); !errors.Is(err, account.ErrInvalidInput) {
				t.Errorf("Register(%q, %q) error = %v, want ErrInvalidInput", tt.username, tt.password, err)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := t.Context()

	user, err := svc.Register(ctx, "dave", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != user {
		t.Errorf("Get = %+v, want %+v", got, user)
	}
}
