package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByUsername(ctx context.Context, username string) (*model.User, error)
		ListByUsernames(ctx context.Context, usernames []string) ([]*model.User, error)
		ListByDepartment(ctx context.Context, department string) ([]*model.User, error)
		ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.User, error)
		List(ctx context.Context) ([]*model.User, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// ClinicRepository owns clinics and the template reference.
	ClinicRepository interface {
		// CreateWithTasks inserts the clinic, its tasks and the activity entry in one transaction.
		CreateWithTasks(ctx context.Context, clinic *model.Clinic, tasks []*model.Task, entry *model.ActivityEntry) error
		// CreateTemplate inserts the template clinic and records it as the current template.
		CreateTemplate(ctx context.Context, clinic *model.Clinic, tasks []*model.Task) error
		Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
		GetTemplate(ctx context.Context) (*model.Clinic, error)
		List(ctx context.Context, today model.Date) ([]*model.ClinicSummary, error)
		DepartmentProgress(ctx context.Context, clinicID uuid.UUID) ([]model.DepartmentProgress, error)
		// Delete removes the clinic and everything under it, returning the stored
		// names of the attachments that were removed.
		Delete(ctx context.Context, id uuid.UUID) ([]string, error)
	}

	TaskRepository interface {
		Create(ctx context.Context, task *model.Task) error
		Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
		List(ctx context.Context, filter model.TaskFilter) ([]*model.Task, error)
		// Update writes the row and replaces the assignee set in one transaction.
		Update(ctx context.Context, task *model.Task) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListOverdue(ctx context.Context, clinicID uuid.UUID, today model.Date) ([]*model.Task, error)
		ListBlocked(ctx context.Context, clinicID uuid.UUID) ([]*model.Task, error)
		// ListDueBetween returns incomplete, assigned tasks due in [from, to].
		// A nil assignee matches tasks of any assignee.
		ListDueBetween(ctx context.Context, assigneeID *uuid.UUID, from, to model.Date) ([]*model.Task, error)
		QuickCheck(ctx context.Context, clinicID uuid.UUID, department string, limit int) ([]*model.QuickCheckItem, error)
		NextSortOrder(ctx context.Context, clinicID uuid.UUID, department string) (int, error)
	}

	NoteRepository interface {
		Create(ctx context.Context, note *model.Note) error
		ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Note, error)
	}

	AttachmentRepository interface {
		Create(ctx context.Context, attachment *model.Attachment) error
		GetByStoredName(ctx context.Context, storedName string) (*model.Attachment, error)
		ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error)
	}

	NotificationRepository interface {
		Create(ctx context.Context, notification *model.Notification) error
		ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Notification, error)
		MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
		CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
		// ExistsForTaskSince reports whether the user got any notice about the task at or after since.
		ExistsForTaskSince(ctx context.Context, userID, taskID uuid.UUID, since time.Time) (bool, error)
	}

	ActivityRepository interface {
		Create(ctx context.Context, entry *model.ActivityEntry) error
		ListByClinic(ctx context.Context, clinicID uuid.UUID, limit int) ([]*model.ActivityEntry, error)
	}

	SettingRepository interface {
		Get(ctx context.Context, key string) (string, error)
		Set(ctx context.Context, key, value string) error
	}
)
