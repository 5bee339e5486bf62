package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/auth"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

type AuthServicer interface {
	Login(ctx context.Context, username, password string) (*model.SessionResponse, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type Service struct {
	users  repository.UserRepository
	jwtSvc auth.JWTService
	hasher security.PasswordHasher
	clock  clock.Clock
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher, clk clock.Clock) *Service {
	return &Service{
		users:  users,
		jwtSvc: jwtSvc,
		hasher: hasher,
		clock:  clk,
	}
}

// Login verifies credentials and issues a session token. Unknown users and
// wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*model.SessionResponse, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidCredentials()
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if stderrors.Is(err, security.ErrMalformedHash) {
			log.Error().Str("user_id", user.ID.String()).Msg("Stored password hash is malformed")
		} else {
			log.Warn().Str("username", user.Username).Msg("Failed login attempt")
		}
		return nil, errors.InvalidCredentials()
	}

	token, expiresAt, err := s.jwtSvc.GenerateToken(user, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Msg("User logged in")
	return &model.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Authenticate resolves a session token to the current user record. A token
// for a user that has since been deleted is rejected.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, errors.Unauthorized(err)
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.Unauthorized(auth.ErrInvalidToken)
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthorized(err)
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}
