package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions
const (
	ActionClinicCreated = "Clinic Created"
	ActionTaskCreated   = "Task Created"
	ActionStatusChanged = "Status Changed"
	ActionNoteAdded     = "Note Added"
	ActionFileUploaded  = "File Uploaded"
)

// ActivityDashboardLimit is how many entries the clinic dashboard shows.
const ActivityDashboardLimit = 20

type ActivityEntry struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	ClinicID  *uuid.UUID `db:"clinic_id" json:"clinic_id"`
	TaskID    *uuid.UUID `db:"task_id" json:"task_id"`
	UserID    *uuid.UUID `db:"user_id" json:"user_id"`
	Action    string     `db:"action" json:"action"`
	Detail    string     `db:"detail" json:"detail"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UserName  *string    `db:"user_name" json:"user_name,omitempty"`
	TaskName  *string    `db:"task_name" json:"task_name,omitempty"`
}
