package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

type UserServicer interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID, actor *model.User) error
}

type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
	clock  clock.Clock
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher, clk clock.Clock) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		clock:  clk,
	}
}

func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || fullName == "" || req.Password == "" {
		return nil, errors.Validation("username, full name and password are required")
	}
	if err := security.CheckLength(req.Password); err != nil {
		return nil, errors.Validation("%s", err.Error())
	}
	role := req.Role
	if role == "" {
		role = model.RoleTeamMember
	}
	if !model.IsRole(role) {
		return nil, errors.Validation("unknown role %q", role)
	}
	department := optional(req.Department)
	if department != nil && !model.IsDepartment(*department) {
		return nil, errors.Validation("unknown department %q", *department)
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, errors.Validation("username %q already exists", username)
	}
	if !errors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	user := &model.User{
		Base:         model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		Department:   department,
		Email:        optional(req.Email),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errors.ErrConflict) {
			return nil, errors.Validation("username %q already exists", username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", username).Str("role", role).Msg("User created")
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

// DeleteUser removes a user. Their notes, attachments and activity stay and
// are shown as authored by a deleted user. Users cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID, actor *model.User) error {
	if actor != nil && actor.ID == id {
		return errors.Validation("you cannot delete yourself")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("user_id", id.String()).Msg("User deleted")
	return nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
