package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Base
	ClinicID           uuid.UUID   `db:"clinic_id" json:"clinic_id"`
	Name               string      `db:"name" json:"name"`
	Department         string      `db:"department" json:"department"`
	Phase              string      `db:"phase" json:"phase"`
	DueDate            Date        `db:"due_date" json:"due_date"`
	Status             string      `db:"status" json:"status"`
	SortOrder          int         `db:"sort_order" json:"sort_order"`
	IsTemplate         bool        `db:"is_template" json:"is_template"`
	TemplateOffsetDays *int        `db:"template_offset_days" json:"template_offset_days,omitempty"`
	AssigneeIDs        []uuid.UUID `db:"-" json:"assignee_ids"`
}

// IsAssigned reports set membership of id among the task's assignees.
func (t *Task) IsAssigned(id uuid.UUID) bool {
	for _, a := range t.AssigneeIDs {
		if a == id {
			return true
		}
	}
	return false
}

func (t *Task) IsOverdue(today Date) bool {
	return !t.DueDate.IsZero() && t.DueDate.Before(today) && t.Status != StatusComplete
}

// TaskPatch carries the fields of a task update. Nil fields keep their value.
// An empty due_date string clears the due date.
type TaskPatch struct {
	Name        *string      `json:"name" binding:"omitempty,min=1"`
	Department  *string      `json:"department" binding:"omitempty,department"`
	Phase       *string      `json:"phase" binding:"omitempty,phase"`
	DueDate     *Date        `json:"due_date"`
	Status      *string      `json:"status" binding:"omitempty,taskstatus"`
	AssigneeIDs *[]uuid.UUID `json:"assignee_ids"`
}

// Apply copies the set fields of p onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Department != nil {
		t.Department = *p.Department
	}
	if p.Phase != nil {
		t.Phase = *p.Phase
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssigneeIDs != nil {
		t.AssigneeIDs = dedupeIDs(*p.AssigneeIDs)
	}
}

// TaskFilter narrows a clinic's task list. Empty fields match everything.
type TaskFilter struct {
	ClinicID   uuid.UUID  `form:"-"`
	Department string     `form:"department"`
	Phase      string     `form:"phase"`
	Status     string     `form:"status"`
	AssigneeID *uuid.UUID `form:"-"`
}

type CreateTaskRequest struct {
	Name        string      `json:"name" binding:"required"`
	Department  string      `json:"department" binding:"required,department"`
	Phase       string      `json:"phase" binding:"omitempty,phase"`
	DueDate     Date        `json:"due_date"`
	AssigneeIDs []uuid.UUID `json:"assignee_ids"`
}

// TemplateTaskRequest adds or edits a master template task.
type TemplateTaskRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Phase      string `json:"phase" binding:"omitempty,phase"`
	OffsetDays *int   `json:"offset_days"`
}

type TaskDetail struct {
	Task        *Task         `json:"task"`
	Clinic      *Clinic       `json:"clinic"`
	Notes       []*Note       `json:"notes"`
	Attachments []*Attachment `json:"attachments"`
	CanEdit     bool          `json:"can_edit"`
}

// QuickCheckItem is a recently touched task with its latest note.
type QuickCheckItem struct {
	Task
	LastNote       *string    `db:"last_note" json:"last_note"`
	LastNoteAt     *time.Time `db:"last_note_at" json:"last_note_at"`
	LastNoteAuthor *string    `db:"last_note_author" json:"last_note_author"`
}

// SortTasks orders tasks by department, then phase, then position.
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if da, db := departmentRank(a.Department), departmentRank(b.Department); da != db {
			return da < db
		}
		if pa, pb := phaseRank(a.Phase), phaseRank(b.Phase); pa != pb {
			return pa < pb
		}
		return a.SortOrder < b.SortOrder
	})
}

func departmentRank(d string) int {
	if i := indexOf(Departments, d); i >= 0 {
		return i
	}
	return len(Departments)
}

func phaseRank(p string) int {
	if i := PhaseIndex(p); i >= 0 {
		return i
	}
	return len(Phases)
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
