package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	apperrors "github.com/jwalitptl/clinic-tracker/pkg/errors"
)

const userColumns = `id, username, password_hash, full_name, role, department, email, created_at, updated_at`

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stampCreated(&user.Base)

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.Role,
		user.Department,
		user.Email,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("username %q already exists", user.Username), err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, notFoundOr(err, "user", "get user by username")
	}
	return &user, nil
}

func (r *userRepository) ListByUsernames(ctx context.Context, usernames []string) ([]*model.User, error) {
	users := []*model.User{}
	if len(usernames) == 0 {
		return users, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE username = ANY($1) ORDER BY username`
	if err := r.db.SelectContext(ctx, &users, query, pq.Array(usernames)); err != nil {
		return nil, fmt.Errorf("failed to list users by username: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByDepartment(ctx context.Context, department string) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE department = $1 ORDER BY full_name`

	users := []*model.User{}
	if err := r.db.SelectContext(ctx, &users, query, department); err != nil {
		return nil, fmt.Errorf("failed to list department users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.User, error) {
	users := []*model.User{}
	if len(ids) == 0 {
		return users, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`
	if err := r.db.SelectContext(ctx, &users, query, pq.Array(idStrings(ids))); err != nil {
		return nil, fmt.Errorf("failed to list users by id: %w", err)
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY full_name`

	users := []*model.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes the user. Notes, attachments, activity and clinics keep their
// rows with the user reference cleared; notifications and assignments go with the user.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(result, "user")
}
