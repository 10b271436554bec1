package auth_test

import (
	"context"
	"testing"
	"time"

	"courtly/internal/auth"
	"courtly/internal/shared/config"
	"courtly/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*users.User
	byID    map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*users.User),
		byID:    make(map[string]*users.User),
	}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *users.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.byID[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	user, ok := f.byID[userID]
	if !ok {
		return auth.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := auth.NewService(newFakeUserRepo(), testConfig())

	registered, err := svc.Register(context.Background(), &auth.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Chen",
		Email:     "alice@example.com",
		Password:  "password1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEmpty(t, registered.RefreshToken)
	require.Equal(t, "USER", registered.User.Role)

	loggedIn, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password1",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := auth.NewService(newFakeUserRepo(), testConfig())

	req := &auth.RegisterRequest{
		FirstName: "Alice", LastName: "Chen",
		Email: "alice@example.com", Password: "password1",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestValidateAndRefreshToken(t *testing.T) {
	svc := auth.NewService(newFakeUserRepo(), testConfig())

	registered, err := svc.Register(context.Background(), &auth.RegisterRequest{
		FirstName: "Alice", LastName: "Chen",
		Email: "alice@example.com", Password: "password1",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(registered.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, claims.UserID)
	require.Equal(t, "access", claims.Type)

	pair, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)

	// An access token cannot be used as a refresh token
	_, err = svc.RefreshToken(context.Background(), registered.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
