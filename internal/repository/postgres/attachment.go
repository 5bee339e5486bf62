package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	apperrors "github.com/jwalitptl/clinic-tracker/pkg/errors"
)

const attachmentSelect = `
	SELECT a.id, a.task_id, a.stored_name, a.original_name, a.content_type, a.size_bytes,
		a.uploaded_by, a.created_at, COALESCE(u.full_name, $1) AS uploader_name
	FROM attachments a
	LEFT JOIN users u ON u.id = a.uploaded_by
`

type attachmentRepository struct {
	BaseRepository
}

func NewAttachmentRepository(base BaseRepository) repository.AttachmentRepository {
	return &attachmentRepository{base}
}

func (r *attachmentRepository) Create(ctx context.Context, a *model.Attachment) error {
	query := `
		INSERT INTO attachments (id, task_id, stored_name, original_name, content_type, size_bytes, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.TaskID,
		a.StoredName,
		a.OriginalName,
		a.ContentType,
		a.SizeBytes,
		a.UploadedBy,
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("stored file name already in use", err)
		}
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return nil
}

func (r *attachmentRepository) GetByStoredName(ctx context.Context, storedName string) (*model.Attachment, error) {
	var a model.Attachment
	if err := r.db.GetContext(ctx, &a, attachmentSelect+` WHERE a.stored_name = $2`, model.DeletedUserName, storedName); err != nil {
		return nil, notFoundOr(err, "attachment", "get attachment")
	}
	return &a, nil
}

func (r *attachmentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error) {
	attachments := []*model.Attachment{}
	query := attachmentSelect + ` WHERE a.task_id = $2 ORDER BY a.created_at ASC`
	if err := r.db.SelectContext(ctx, &attachments, query, model.DeletedUserName, taskID); err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}
