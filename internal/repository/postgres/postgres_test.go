package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	apperrors "github.com/jwalitptl/clinic-tracker/pkg/errors"
)

var taskRowColumns = []string{
	"id", "clinic_id", "name", "department", "phase", "due_date", "status",
	"sort_order", "is_template", "template_offset_days", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, BaseRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, NewBaseRepository(sqlx.NewDb(db, "postgres"))
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	err := repo.Create(context.Background(), &model.User{Username: "bob", FullName: "Bob", Role: model.RoleTeamMember})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetLoadsAssigneesInOrder(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewTaskRepository(base)

	taskID, clinicID := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM tasks t WHERE t.id = $1`)).
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(
			taskID.String(), clinicID.String(), "Order signage", "Marketing", "1 Month Before Opening",
			time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), model.StatusInProgress,
			3, false, nil, now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM task_assignees`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "user_id"}).
			AddRow(taskID.String(), second.String()).
			AddRow(taskID.String(), first.String()))

	task, err := repo.Get(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, "Order signage", task.Name)
	assert.Equal(t, "2025-05-02", task.DueDate.String())
	assert.Nil(t, task.TemplateOffsetDays)
	assert.Equal(t, []uuid.UUID{second, first}, task.AssigneeIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateReplacesAssignees(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewTaskRepository(base)

	taskID := uuid.New()
	a, b := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tasks SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM task_assignees WHERE task_id = $1`)).
		WithArgs(taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO task_assignees`).
		WithArgs(taskID, a, 0, taskID, b, 1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &model.Task{
		Base:        model.Base{ID: taskID},
		Name:        "Order signage",
		Department:  "Marketing",
		Status:      model.StatusBlocked,
		AssigneeIDs: []uuid.UUID{a, b},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateKeepsCallerTimestamp(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewTaskRepository(base)

	taskID := uuid.New()
	updated := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tasks SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), updated, taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM task_assignees`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	task := &model.Task{Base: model.Base{ID: taskID, UpdatedAt: updated}, Name: "Order signage", Department: "Marketing"}
	require.NoError(t, repo.Update(context.Background(), task))
	assert.Equal(t, updated, task.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicRepository_CreateWithTasksKeepsCallerTimestamps(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewClinicRepository(base)

	created := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	clinicID, taskID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clinics`).
		WithArgs(clinicID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), false, created, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tasks`).
		WithArgs(taskID, clinicID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), false, sqlmock.AnyArg(), created, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	clinic := &model.Clinic{Base: model.Base{ID: clinicID, CreatedAt: created, UpdatedAt: created}, Name: "Denver"}
	task := &model.Task{Base: model.Base{ID: taskID, CreatedAt: created, UpdatedAt: created}, Name: "one", Department: "IT"}
	require.NoError(t, repo.CreateWithTasks(context.Background(), clinic, []*model.Task{task}, nil))

	assert.Equal(t, created, clinic.CreatedAt)
	assert.Equal(t, created, task.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicRepository_CreateWithTasksStampsMissingTimestamps(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewClinicRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clinics`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	clinic := &model.Clinic{Name: "Denver"}
	require.NoError(t, repo.CreateWithTasks(context.Background(), clinic, nil, nil))

	assert.False(t, clinic.CreatedAt.IsZero())
	assert.Equal(t, clinic.CreatedAt, clinic.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateMissingRollsBack(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewTaskRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tasks SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Task{Base: model.Base{ID: uuid.New()}})
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicRepository_CreateWithTasksIsAtomic(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewClinicRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clinics`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tasks`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tasks`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	clinic := &model.Clinic{Name: "Denver"}
	tasks := []*model.Task{
		{Name: "one", Department: "IT"},
		{Name: "two", Department: "IT"},
	}
	err := repo.CreateWithTasks(context.Background(), clinic, tasks, &model.ActivityEntry{Action: model.ActionClinicCreated})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicRepository_CreateTemplateConflict(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewClinicRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clinics`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateTemplate(context.Background(), &model.Clinic{Name: "Master Template"}, nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicRepository_DeleteReturnsStoredFiles(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewClinicRepository(base)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT a.stored_name`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"stored_name"}).AddRow("20250601120000_ab12cd34_lease.pdf"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM activity_log WHERE clinic_id = $1`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks WHERE clinic_id = $1`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 214))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clinics WHERE id = $1 AND NOT is_template`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"20250601120000_ab12cd34_lease.pdf"}, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllReadAndCount(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewNotificationRepository(base)
	userID := uuid.New()

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.MarkAllRead(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err := repo.CountUnread(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_GetMissing(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewSettingRepository(base)

	mock.ExpectQuery(`SELECT value FROM app_settings`).
		WithArgs(model.SettingDueSoonLastRun).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), model.SettingDueSoonLastRun)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
