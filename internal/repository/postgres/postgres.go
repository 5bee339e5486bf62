package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

// Repositories bundles every repository backed by one database handle.
type Repositories struct {
	Users         repository.UserRepository
	Clinics       repository.ClinicRepository
	Tasks         repository.TaskRepository
	Notes         repository.NoteRepository
	Attachments   repository.AttachmentRepository
	Notifications repository.NotificationRepository
	Activity      repository.ActivityRepository
	Settings      repository.SettingRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	base := NewBaseRepository(db)
	return &Repositories{
		Users:         NewUserRepository(base),
		Clinics:       NewClinicRepository(base),
		Tasks:         NewTaskRepository(base),
		Notes:         NewNoteRepository(base),
		Attachments:   NewAttachmentRepository(base),
		Notifications: NewNotificationRepository(base),
		Activity:      NewActivityRepository(base),
		Settings:      NewSettingRepository(base),
	}
}
