package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jalelchniti/smarthub-booking/internal/infra/storage/adminuser"
)

// MockAdminUserRepository is a mock implementation of AdminUserRepository
type MockAdminUserRepository struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*adminuser.AdminUser, error)
}

func (m *MockAdminUserRepository) GetByUsername(ctx context.Context, username string) (*adminuser.AdminUser, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, adminuser.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func repoWithUser(t *testing.T, username, password string) *MockAdminUserRepository {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &MockAdminUserRepository{
		GetByUsernameFunc: func(ctx context.Context, name string) (*adminuser.AdminUser, error) {
			if name != username {
				return nil, adminuser.ErrUserNotFound
			}
			return &adminuser.AdminUser{
				ID:           1,
				Username:     username,
				PasswordHash: string(hash),
			}, nil
		},
	}
}

func TestLogin_Success(t *testing.T) {
	repo := repoWithUser(t, "admin", "secret123")
	svc := NewService(repo, "test-secret", time.Hour, nopLogger{})

	session, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := repoWithUser(t, "admin", "secret123")
	svc := NewService(repo, "test-secret", time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(&MockAdminUserRepository{}, "test-secret", time.Hour, nopLogger{})

	// Indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_RoundTrip(t *testing.T) {
	repo := repoWithUser(t, "admin", "secret123")
	svc := NewService(repo, "test-secret", time.Hour, nopLogger{})

	session, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	claims, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "1", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	repo := repoWithUser(t, "admin", "secret123")
	issuer := NewService(repo, "secret-a", time.Hour, nopLogger{})
	verifier := NewService(repo, "secret-b", time.Hour, nopLogger{})

	session, err := issuer.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	_, err = verifier.ParseToken(session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	repo := repoWithUser(t, "admin", "secret123")
	svc := NewService(repo, "test-secret", -time.Minute, nopLogger{})

	session, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	_, err = svc.ParseToken(session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := NewService(&MockAdminUserRepository{}, "test-secret", time.Hour, nopLogger{})

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
