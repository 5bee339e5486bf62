//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	apperrors "github.com/jwalitptl/clinic-tracker/pkg/errors"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// setupTestDB starts one Postgres container per test run, migrates it and
// returns a fresh connection with all tables truncated.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("failed to setup test DB: %v", initErr)
	}

	db, err := sqlx.Connect("postgres", sharedDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`TRUNCATE users, clinics, app_settings, tasks, task_assignees, notes, attachments, notifications, activity_log CASCADE`)
	require.NoError(t, err)
	return db
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := Migrate(ctx, db.DB); err != nil {
		return "", err
	}
	return dsn, nil
}

func TestIntegration_ClinicLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	admin := &model.User{Username: "kelly", FullName: "Kelly (Admin)", Role: model.RoleAdmin, PasswordHash: "x"}
	require.NoError(t, repos.Users.Create(ctx, admin))

	offset := -30
	template := &model.Clinic{Name: "Master Template", Status: model.ClinicStatusTemplate}
	require.NoError(t, repos.Clinics.CreateTemplate(ctx, template, []*model.Task{
		{Name: "Order signage", Department: "Marketing", Phase: "1 Month Before Opening", TemplateOffsetDays: &offset},
	}))

	err := repos.Clinics.CreateTemplate(ctx, &model.Clinic{Name: "Second"}, nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))

	got, err := repos.Clinics.GetTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, template.ID, got.ID)

	clinic := &model.Clinic{Name: "Denver", OpeningDate: model.NewDate(2025, 6, 1), CreatedBy: &admin.ID}
	task := &model.Task{
		Name:        "Order signage",
		Department:  "Marketing",
		Phase:       "1 Month Before Opening",
		DueDate:     model.NewDate(2025, 5, 2),
		AssigneeIDs: []uuid.UUID{admin.ID},
	}
	require.NoError(t, repos.Clinics.CreateWithTasks(ctx, clinic, []*model.Task{task},
		&model.ActivityEntry{UserID: &admin.ID, Action: model.ActionClinicCreated, Detail: "Denver"}))

	loaded, err := repos.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-02", loaded.DueDate.String())
	assert.Equal(t, []uuid.UUID{admin.ID}, loaded.AssigneeIDs)

	due, err := repos.Tasks.ListDueBetween(ctx, &admin.ID, model.NewDate(2025, 5, 1), model.NewDate(2025, 5, 4))
	require.NoError(t, err)
	require.Len(t, due, 1)

	require.NoError(t, repos.Notes.Create(ctx, &model.Note{TaskID: task.ID, AuthorID: &admin.ID, Content: "ordered"}))
	require.NoError(t, repos.Attachments.Create(ctx, &model.Attachment{
		TaskID: task.ID, StoredName: "20250601120000_ab12cd34_quote.pdf", OriginalName: "quote.pdf", UploadedBy: &admin.ID,
	}))

	list, err := repos.Clinics.List(ctx, model.NewDate(2025, 5, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Total)
	assert.Equal(t, 1, list[0].Overdue)

	stored, err := repos.Clinics.Delete(ctx, clinic.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"20250601120000_ab12cd34_quote.pdf"}, stored)

	for _, q := range []string{
		`SELECT COUNT(*) FROM tasks WHERE clinic_id = $1`,
		`SELECT COUNT(*) FROM activity_log WHERE clinic_id = $1`,
		`SELECT COUNT(*) FROM notes n JOIN tasks t ON t.id = n.task_id WHERE t.clinic_id = $1`,
		`SELECT COUNT(*) FROM attachments a JOIN tasks t ON t.id = a.task_id WHERE t.clinic_id = $1`,
	} {
		var n int
		require.NoError(t, db.Get(&n, q, clinic.ID))
		assert.Zero(t, n, q)
	}

	_, err = repos.Clinics.Delete(ctx, template.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestIntegration_UserDeletionKeepsAuthoredRows(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	bob := &model.User{Username: "bob", FullName: "Bob", Role: model.RoleTeamMember, PasswordHash: "x"}
	require.NoError(t, repos.Users.Create(ctx, bob))

	clinic := &model.Clinic{Name: "Austin"}
	task := &model.Task{Name: "Hire", Department: "HR", AssigneeIDs: []uuid.UUID{bob.ID}}
	require.NoError(t, repos.Clinics.CreateWithTasks(ctx, clinic, []*model.Task{task}, nil))
	require.NoError(t, repos.Notes.Create(ctx, &model.Note{TaskID: task.ID, AuthorID: &bob.ID, Content: "posted"}))
	require.NoError(t, repos.Notifications.Create(ctx, &model.Notification{UserID: bob.ID, Kind: model.NotificationMention, Message: "hi"}))

	require.NoError(t, repos.Users.Delete(ctx, bob.ID))

	notes, err := repos.Notes.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Nil(t, notes[0].AuthorID)
	assert.Equal(t, model.DeletedUserName, notes[0].AuthorName)

	loaded, err := repos.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.AssigneeIDs)
}
