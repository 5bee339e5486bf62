package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	apperrors "github.com/jwalitptl/clinic-tracker/pkg/errors"
)

const clinicColumns = `c.id, c.name, c.opening_date, c.status, c.created_by, c.is_template, c.created_at, c.updated_at`

type clinicRepository struct {
	BaseRepository
}

func NewClinicRepository(base BaseRepository) repository.ClinicRepository {
	return &clinicRepository{base}
}

func (r *clinicRepository) CreateWithTasks(ctx context.Context, clinic *model.Clinic, tasks []*model.Task, entry *model.ActivityEntry) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertClinic(ctx, tx, clinic); err != nil {
			return err
		}
		for _, task := range tasks {
			task.ClinicID = clinic.ID
			if err := insertTask(ctx, tx, task); err != nil {
				return err
			}
		}
		if entry == nil {
			return nil
		}
		entry.ClinicID = &clinic.ID
		return insertActivity(ctx, tx, entry)
	})
}

func (r *clinicRepository) CreateTemplate(ctx context.Context, clinic *model.Clinic, tasks []*model.Task) error {
	clinic.IsTemplate = true
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertClinic(ctx, tx, clinic); err != nil {
			return err
		}
		for _, task := range tasks {
			task.ClinicID = clinic.ID
			task.IsTemplate = true
			if err := insertTask(ctx, tx, task); err != nil {
				return err
			}
		}
		return setSetting(ctx, tx, model.SettingTemplateClinicID, clinic.ID.String())
	})
}

func (r *clinicRepository) Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	query := `SELECT ` + clinicColumns + ` FROM clinics c WHERE c.id = $1`

	var clinic model.Clinic
	if err := r.db.GetContext(ctx, &clinic, query, id); err != nil {
		return nil, notFoundOr(err, "clinic", "get clinic")
	}
	return &clinic, nil
}

func (r *clinicRepository) GetTemplate(ctx context.Context) (*model.Clinic, error) {
	query := `
		SELECT ` + clinicColumns + `
		FROM clinics c
		JOIN app_settings s ON s.key = $1 AND s.value = c.id::text
	`

	var clinic model.Clinic
	if err := r.db.GetContext(ctx, &clinic, query, model.SettingTemplateClinicID); err != nil {
		return nil, notFoundOr(err, "template clinic", "get template clinic")
	}
	return &clinic, nil
}

func (r *clinicRepository) List(ctx context.Context, today model.Date) ([]*model.ClinicSummary, error) {
	query := `
		SELECT ` + clinicColumns + `,
			COUNT(t.id) AS total,
			COUNT(t.id) FILTER (WHERE t.status = $1) AS done,
			COUNT(t.id) FILTER (WHERE t.status = $2) AS blocked,
			COUNT(t.id) FILTER (WHERE t.due_date < $3 AND t.status <> $1) AS overdue
		FROM clinics c
		LEFT JOIN tasks t ON t.clinic_id = c.id
		WHERE NOT c.is_template
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`

	clinics := []*model.ClinicSummary{}
	if err := r.db.SelectContext(ctx, &clinics, query, model.StatusComplete, model.StatusBlocked, today); err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	for _, c := range clinics {
		c.Progress.Fill()
	}
	return clinics, nil
}

func (r *clinicRepository) DepartmentProgress(ctx context.Context, clinicID uuid.UUID) ([]model.DepartmentProgress, error) {
	query := `
		SELECT department,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = $2) AS done,
			COUNT(*) FILTER (WHERE status = $3) AS blocked
		FROM tasks
		WHERE clinic_id = $1
		GROUP BY department
	`

	var rows []model.DepartmentProgress
	if err := r.db.SelectContext(ctx, &rows, query, clinicID, model.StatusComplete, model.StatusBlocked); err != nil {
		return nil, fmt.Errorf("failed to get department progress: %w", err)
	}
	return rows, nil
}

func (r *clinicRepository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	var stored []string
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			SELECT a.stored_name
			FROM attachments a
			JOIN tasks t ON t.id = a.task_id
			WHERE t.clinic_id = $1
		`
		if err := tx.SelectContext(ctx, &stored, query, id); err != nil {
			return fmt.Errorf("failed to list clinic attachments: %w", err)
		}

		// notes, attachments and assignees cascade from tasks
		steps := []struct {
			query  string
			action string
		}{
			{`DELETE FROM activity_log WHERE clinic_id = $1`, "delete clinic activity"},
			{`DELETE FROM tasks WHERE clinic_id = $1`, "delete clinic tasks"},
		}
		for _, step := range steps {
			if _, err := tx.ExecContext(ctx, step.query, id); err != nil {
				return fmt.Errorf("failed to %s: %w", step.action, err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1 AND NOT is_template`, id)
		if err != nil {
			return fmt.Errorf("failed to delete clinic: %w", err)
		}
		return requireAffected(result, "clinic")
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func insertClinic(ctx context.Context, q Querier, clinic *model.Clinic) error {
	query := `
		INSERT INTO clinics (id, name, opening_date, status, created_by, is_template, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if clinic.ID == uuid.Nil {
		clinic.ID = uuid.New()
	}
	if clinic.Status == "" {
		clinic.Status = model.ClinicStatusActive
	}
	stampCreated(&clinic.Base)

	_, err := q.ExecContext(ctx, query,
		clinic.ID,
		clinic.Name,
		clinic.OpeningDate,
		clinic.Status,
		clinic.CreatedBy,
		clinic.IsTemplate,
		clinic.CreatedAt,
		clinic.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("a template clinic already exists", err)
		}
		return fmt.Errorf("failed to insert clinic: %w", err)
	}
	return nil
}
