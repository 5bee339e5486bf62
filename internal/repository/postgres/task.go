package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

var taskColumns = []string{
	"t.id", "t.clinic_id", "t.name", "t.department", "t.phase", "t.due_date", "t.status",
	"t.sort_order", "t.is_template", "t.template_offset_days", "t.created_at", "t.updated_at",
}

type taskRepository struct {
	BaseRepository
}

func NewTaskRepository(base BaseRepository) repository.TaskRepository {
	return &taskRepository{base}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return insertTask(ctx, tx, task)
	})
}

func (r *taskRepository) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	query, args, err := psql.Select(taskColumns...).From("tasks t").Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var task model.Task
	if err := r.db.GetContext(ctx, &task, query, args...); err != nil {
		return nil, notFoundOr(err, "task", "get task")
	}

	if err := loadAssignees(ctx, r.db, []*model.Task{&task}); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, filter model.TaskFilter) ([]*model.Task, error) {
	q := psql.Select(taskColumns...).
		From("tasks t").
		Where(squirrel.Eq{"t.clinic_id": filter.ClinicID}).
		OrderBy("t.department", "t.sort_order", "t.created_at")

	if filter.Department != "" {
		q = q.Where(squirrel.Eq{"t.department": filter.Department})
	}
	if filter.Phase != "" {
		q = q.Where(squirrel.Eq{"t.phase": filter.Phase})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"t.status": filter.Status})
	}
	if filter.AssigneeID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM task_assignees ta WHERE ta.task_id = t.id AND ta.user_id = ?)", *filter.AssigneeID)
	}

	tasks, err := r.selectTasks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	model.SortTasks(tasks)
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `
		UPDATE tasks SET
			name = $1,
			department = $2,
			phase = $3,
			due_date = $4,
			status = $5,
			template_offset_days = $6,
			updated_at = $7
		WHERE id = $8
	`

	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = time.Now()
	}

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			task.Name,
			task.Department,
			task.Phase,
			task.DueDate,
			task.Status,
			task.TemplateOffsetDays,
			task.UpdatedAt,
			task.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if err := requireAffected(result, "task"); err != nil {
			return err
		}
		return replaceAssignees(ctx, tx, task.ID, task.AssigneeIDs)
	})
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireAffected(result, "task")
}

func (r *taskRepository) ListOverdue(ctx context.Context, clinicID uuid.UUID, today model.Date) ([]*model.Task, error) {
	q := psql.Select(taskColumns...).
		From("tasks t").
		Where(squirrel.Eq{"t.clinic_id": clinicID}).
		Where(squirrel.Lt{"t.due_date": today}).
		Where(squirrel.NotEq{"t.status": model.StatusComplete}).
		OrderBy("t.due_date", "t.sort_order")

	tasks, err := r.selectTasks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListBlocked(ctx context.Context, clinicID uuid.UUID) ([]*model.Task, error) {
	q := psql.Select(taskColumns...).
		From("tasks t").
		Where(squirrel.Eq{"t.clinic_id": clinicID, "t.status": model.StatusBlocked}).
		OrderBy("t.department", "t.sort_order")

	tasks, err := r.selectTasks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListDueBetween(ctx context.Context, assigneeID *uuid.UUID, from, to model.Date) ([]*model.Task, error) {
	q := psql.Select(taskColumns...).
		From("tasks t").
		Where(squirrel.Eq{"t.is_template": false}).
		Where(squirrel.GtOrEq{"t.due_date": from}).
		Where(squirrel.LtOrEq{"t.due_date": to}).
		Where(squirrel.NotEq{"t.status": model.StatusComplete}).
		OrderBy("t.due_date", "t.name")

	if assigneeID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM task_assignees ta WHERE ta.task_id = t.id AND ta.user_id = ?)", *assigneeID)
	} else {
		q = q.Where("EXISTS (SELECT 1 FROM task_assignees ta WHERE ta.task_id = t.id)")
	}

	tasks, err := r.selectTasks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks due soon: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) QuickCheck(ctx context.Context, clinicID uuid.UUID, department string, limit int) ([]*model.QuickCheckItem, error) {
	query := `
		SELECT t.id, t.clinic_id, t.name, t.department, t.phase, t.due_date, t.status,
			t.sort_order, t.is_template, t.template_offset_days, t.created_at, t.updated_at,
			n.content AS last_note,
			n.created_at AS last_note_at,
			CASE WHEN n.id IS NULL THEN NULL ELSE COALESCE(u.full_name, $4) END AS last_note_author
		FROM tasks t
		LEFT JOIN LATERAL (
			SELECT id, content, created_at, author_id
			FROM notes
			WHERE task_id = t.id
			ORDER BY created_at DESC
			LIMIT 1
		) n ON TRUE
		LEFT JOIN users u ON u.id = n.author_id
		WHERE t.clinic_id = $1 AND t.department = $2
		ORDER BY t.updated_at DESC
		LIMIT $3
	`

	items := []*model.QuickCheckItem{}
	if err := r.db.SelectContext(ctx, &items, query, clinicID, department, limit, model.DeletedUserName); err != nil {
		return nil, fmt.Errorf("failed to load quick check: %w", err)
	}

	tasks := make([]*model.Task, len(items))
	for i := range items {
		tasks[i] = &items[i].Task
	}
	if err := loadAssignees(ctx, r.db, tasks); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *taskRepository) NextSortOrder(ctx context.Context, clinicID uuid.UUID, department string) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM tasks WHERE clinic_id = $1 AND department = $2`

	var next int
	if err := r.db.GetContext(ctx, &next, query, clinicID, department); err != nil {
		return 0, fmt.Errorf("failed to get next sort order: %w", err)
	}
	return next, nil
}

func (r *taskRepository) selectTasks(ctx context.Context, q squirrel.SelectBuilder) ([]*model.Task, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tasks := []*model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, err
	}
	if err := loadAssignees(ctx, r.db, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func insertTask(ctx context.Context, q Querier, task *model.Task) error {
	query := `
		INSERT INTO tasks (
			id, clinic_id, name, department, phase, due_date, status,
			sort_order, is_template, template_offset_days, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Status == "" {
		task.Status = model.StatusNotStarted
	}
	stampCreated(&task.Base)

	_, err := q.ExecContext(ctx, query,
		task.ID,
		task.ClinicID,
		task.Name,
		task.Department,
		task.Phase,
		task.DueDate,
		task.Status,
		task.SortOrder,
		task.IsTemplate,
		task.TemplateOffsetDays,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	if len(task.AssigneeIDs) == 0 {
		return nil
	}
	return replaceAssignees(ctx, q, task.ID, task.AssigneeIDs)
}

// replaceAssignees rewrites the assignee set keeping the given order.
func replaceAssignees(ctx context.Context, q Querier, taskID uuid.UUID, assignees []uuid.UUID) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = $1`, taskID); err != nil {
		return fmt.Errorf("failed to clear assignees: %w", err)
	}
	if len(assignees) == 0 {
		return nil
	}

	insert := psql.Insert("task_assignees").Columns("task_id", "user_id", "position")
	for i, userID := range assignees {
		insert = insert.Values(taskID, userID, i)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert assignees: %w", err)
	}
	return nil
}

type assigneeRow struct {
	TaskID uuid.UUID `db:"task_id"`
	UserID uuid.UUID `db:"user_id"`
}

func loadAssignees(ctx context.Context, q Querier, tasks []*model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*model.Task, len(tasks))
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		t.AssigneeIDs = []uuid.UUID{}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	query := `
		SELECT task_id, user_id
		FROM task_assignees
		WHERE task_id = ANY($1::uuid[])
		ORDER BY task_id, position
	`
	var rows []assigneeRow
	if err := q.SelectContext(ctx, &rows, query, pq.Array(idStrings(ids))); err != nil {
		return fmt.Errorf("failed to load assignees: %w", err)
	}

	for _, row := range rows {
		if t, ok := byID[row.TaskID]; ok {
			t.AssigneeIDs = append(t.AssigneeIDs, row.UserID)
		}
	}
	return nil
}
