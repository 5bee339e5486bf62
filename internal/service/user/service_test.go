package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

func strPtr(s string) *string { return &s }

func newService(repo *mocks.UserRepositoryMock) *Service {
	return NewService(repo, security.NewBcryptHasher(4), clock.NewManaged(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateUser(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errors.NotFound("user", nil)
		},
		CreateFunc: func(ctx context.Context, user *model.User) error { return nil },
	}

	user, err := newService(repo).CreateUser(context.Background(), &model.CreateUserRequest{
		Username:   " bob ",
		Password:   "hunter22",
		FullName:   "Bob Builder",
		Role:       model.RoleDeptHead,
		Department: strPtr("IT"),
		Email:      strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "IT", *user.Department)
	assert.Nil(t, user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, security.NewBcryptHasher(4).Compare(user.PasswordHash, "hunter22"))
}

func TestCreateUserDefaultsRole(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errors.NotFound("user", nil)
		},
		CreateFunc: func(ctx context.Context, user *model.User) error { return nil },
	}

	user, err := newService(repo).CreateUser(context.Background(), &model.CreateUserRequest{Username: "amy", Password: "password1", FullName: "Amy"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeamMember, user.Role)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{Username: username}, nil
		},
	}

	_, err := newService(repo).CreateUser(context.Background(), &model.CreateUserRequest{Username: "bob", Password: "hunter22", FullName: "Bob"})
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, repo.CreateCalls())
}

func TestCreateUserConflictRaceBecomesValidation(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errors.NotFound("user", nil)
		},
		CreateFunc: func(ctx context.Context, user *model.User) error {
			return errors.Conflict("username taken", nil)
		},
	}

	_, err := newService(repo).CreateUser(context.Background(), &model.CreateUserRequest{Username: "bob", Password: "hunter22", FullName: "Bob"})
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
}

func TestCreateUserValidation(t *testing.T) {
	svc := newService(&mocks.UserRepositoryMock{})

	for _, req := range []*model.CreateUserRequest{
		{Username: "", Password: "hunter22", FullName: "x"},
		{Username: "x", Password: "short", FullName: "x"},
		{Username: "x", Password: "hunter22", FullName: ""},
		{Username: "x", Password: "hunter22", FullName: "x", Role: "owner"},
		{Username: "x", Password: "hunter22", FullName: "x", Department: strPtr("Facilities")},
	} {
		_, err := svc.CreateUser(context.Background(), req)
		assert.True(t, errors.Is(err, errors.ErrBadRequest), "%+v", req)
	}
}

func TestDeleteUser(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	svc := newService(repo)
	admin := &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleAdmin}

	err := svc.DeleteUser(context.Background(), admin.ID, admin)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
	assert.Empty(t, repo.DeleteCalls())

	other := uuid.New()
	require.NoError(t, svc.DeleteUser(context.Background(), other, admin))
	assert.Equal(t, other, repo.DeleteCalls()[0].Id)
}
