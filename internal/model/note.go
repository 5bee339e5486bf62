package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TaskID     uuid.UUID  `db:"task_id" json:"task_id"`
	AuthorID   *uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName string     `db:"author_name" json:"author_name"`
	Content    string     `db:"content" json:"content"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

type CreateNoteRequest struct {
	Content string `json:"content"`
}
