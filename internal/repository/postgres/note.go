package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

type noteRepository struct {
	BaseRepository
}

func NewNoteRepository(base BaseRepository) repository.NoteRepository {
	return &noteRepository{base}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `
		INSERT INTO notes (id, task_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	if _, err := r.db.ExecContext(ctx, query, note.ID, note.TaskID, note.AuthorID, note.Content, note.CreatedAt); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *noteRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Note, error) {
	query := `
		SELECT n.id, n.task_id, n.author_id, n.content, n.created_at,
			COALESCE(u.full_name, $2) AS author_name
		FROM notes n
		LEFT JOIN users u ON u.id = n.author_id
		WHERE n.task_id = $1
		ORDER BY n.created_at ASC
	`

	notes := []*model.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, taskID, model.DeletedUserName); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}
