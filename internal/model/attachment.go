package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AllowedExtensions lists the accepted upload types, lower case without dot.
var AllowedExtensions = map[string]struct{}{
	"pdf": {}, "png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	"doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "txt": {},
}

// IsAllowedFile checks the extension of name case-insensitively.
func IsAllowedFile(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	_, ok := AllowedExtensions[ext]
	return ok
}

type Attachment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TaskID       uuid.UUID  `db:"task_id" json:"task_id"`
	StoredName   string     `db:"stored_name" json:"stored_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	ContentType  string     `db:"content_type" json:"content_type"`
	SizeBytes    int64      `db:"size_bytes" json:"size_bytes"`
	UploadedBy   *uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	UploaderName string     `db:"uploader_name" json:"uploader_name"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
