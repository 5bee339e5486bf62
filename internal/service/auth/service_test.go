package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/pkg/auth"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

func setup(t *testing.T) (*Service, *model.User, *mocks.UserRepositoryMock) {
	t.Helper()
	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)

	user := &model.User{Base: model.Base{ID: uuid.New()}, Username: "admin", PasswordHash: hash, Role: model.RoleAdmin}
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			if username == user.Username {
				return user, nil
			}
			return nil, errors.NotFound("user", nil)
		},
		GetFunc: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, errors.NotFound("user", nil)
		},
	}
	svc := NewService(repo, auth.NewJWTService("test-secret", 8*time.Hour), hasher, clock.New())
	return svc, user, repo
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, user, _ := setup(t)

	resp, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user, resp.User)

	got, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := setup(t)

	_, wrongPass := svc.Login(context.Background(), "admin", "nope-nope")
	_, unknown := svc.Login(context.Background(), "ghost", "admin123")

	assert.True(t, errors.Is(wrongPass, errors.ErrUnauthorized))
	assert.True(t, errors.Is(unknown, errors.ErrUnauthorized))
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
}

func TestAuthenticateDeletedUser(t *testing.T) {
	svc, _, repo := setup(t)
	resp, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	repo.GetFunc = func(ctx context.Context, id uuid.UUID) (*model.User, error) {
		return nil, errors.NotFound("user", nil)
	}
	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
}
