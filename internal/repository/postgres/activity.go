package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

type activityRepository struct {
	BaseRepository
}

func NewActivityRepository(base BaseRepository) repository.ActivityRepository {
	return &activityRepository{base}
}

func (r *activityRepository) Create(ctx context.Context, entry *model.ActivityEntry) error {
	return insertActivity(ctx, r.db, entry)
}

func (r *activityRepository) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit int) ([]*model.ActivityEntry, error) {
	query := `
		SELECT a.id, a.clinic_id, a.task_id, a.user_id, a.action, a.detail, a.created_at,
			u.full_name AS user_name,
			t.name AS task_name
		FROM activity_log a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN tasks t ON t.id = a.task_id
		WHERE a.clinic_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`

	entries := []*model.ActivityEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, clinicID, limit); err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

func insertActivity(ctx context.Context, q Querier, entry *model.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (id, clinic_id, task_id, user_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := q.ExecContext(ctx, query,
		entry.ID,
		entry.ClinicID,
		entry.TaskID,
		entry.UserID,
		entry.Action,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity entry: %w", err)
	}
	return nil
}
