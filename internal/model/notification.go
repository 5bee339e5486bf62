package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationStatusChange   NotificationKind = "status_change"
	NotificationMention        NotificationKind = "mention"
	NotificationDepartmentNote NotificationKind = "department_note"
	NotificationDueSoon        NotificationKind = "due_soon"
)

// InboxLimit caps the number of notifications returned by an inbox view.
const InboxLimit = 50

type Notification struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	UserID    uuid.UUID        `db:"user_id" json:"user_id"`
	Kind      NotificationKind `db:"kind" json:"kind"`
	TaskID    *uuid.UUID       `db:"task_id" json:"task_id"`
	Message   string           `db:"message" json:"message"`
	Link      string           `db:"link" json:"link"`
	IsRead    bool             `db:"is_read" json:"is_read"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// TaskLink is the deep link stored on task notifications.
func TaskLink(taskID uuid.UUID) string {
	return fmt.Sprintf("/task/%s", taskID)
}

type UnreadCount struct {
	Count int `json:"count"`
}
