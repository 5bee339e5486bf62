package attachment

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/service/permission"
	"github.com/jwalitptl/clinic-tracker/internal/storage"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

const storedNameTimeLayout = "20060102150405"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Upload is a file received for a task.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type AttachmentServicer interface {
	Upload(ctx context.Context, taskID uuid.UUID, uploader *model.User, up Upload) (*model.Attachment, error)
	Open(ctx context.Context, storedName string) (*model.Attachment, *os.File, error)
}

type Service struct {
	tasks       repository.TaskRepository
	attachments repository.AttachmentRepository
	store       storage.Store
	activity    activity.ActivityServicer
	metrics     *metrics.Metrics
	clock       clock.Clock
}

func NewService(
	tasks repository.TaskRepository,
	attachments repository.AttachmentRepository,
	store storage.Store,
	activitySvc activity.ActivityServicer,
	m *metrics.Metrics,
	clk clock.Clock,
) *Service {
	return &Service{
		tasks:       tasks,
		attachments: attachments,
		store:       store,
		activity:    activitySvc,
		metrics:     m,
		clock:       clk,
	}
}

// Upload stores the file under a generated name and records it on the task.
// Only pdf, png, jpg, jpeg, gif, doc, docx, xls, xlsx and txt files are accepted.
func (s *Service) Upload(ctx context.Context, taskID uuid.UUID, uploader *model.User, up Upload) (*model.Attachment, error) {
	original := DisplayName(up.Filename)
	if original == "" || !model.IsAllowedFile(original) {
		return nil, errors.Validation("file type not allowed: %q", up.Filename)
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := permission.RequireEdit(uploader, task); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	stored := storedName(now, original)
	size, err := s.store.Put(stored, up.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	att := &model.Attachment{
		ID:           uuid.New(),
		TaskID:       task.ID,
		StoredName:   stored,
		OriginalName: original,
		ContentType:  up.ContentType,
		SizeBytes:    size,
		UploadedBy:   &uploader.ID,
		UploaderName: uploader.FullName,
		CreatedAt:    now,
	}
	if err := s.attachments.Create(ctx, att); err != nil {
		if rmErr := s.store.Delete(stored); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", stored).Msg("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}
	s.metrics.AttachmentsUploaded.Inc()
	s.metrics.UploadBytes.Observe(float64(size))

	if err := s.activity.Record(ctx, activity.Entry{
		ClinicID: task.ClinicID,
		TaskID:   task.ID,
		UserID:   uploader.ID,
		Action:   model.ActionFileUploaded,
		Detail:   original,
	}); err != nil {
		return nil, err
	}
	return att, nil
}

// Open looks up an attachment by stored name and opens its file. The caller
// closes the file.
func (s *Service) Open(ctx context.Context, storedName string) (*model.Attachment, *os.File, error) {
	att, err := s.attachments.GetByStoredName(ctx, storedName)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.store.Open(att.StoredName)
	if stderrors.Is(err, storage.ErrNoObject) {
		return nil, nil, errors.NotFound("file", err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return att, f, nil
}

// storedName builds "{timestamp}_{8 hex}_{safe name}". The random segment
// keeps two uploads of the same file in the same second apart. A name with
// nothing left after sanitizing is stored as "file.{ext}".
func storedName(now time.Time, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	safe := SanitizeFilename(original)
	safeExt := filepath.Ext(safe)
	if !strings.EqualFold(safeExt, ext) || strings.TrimSuffix(safe, safeExt) == "" {
		safe = "file" + ext
	}
	return fmt.Sprintf("%s_%s_%s", now.Format(storedNameTimeLayout), uuid.NewString()[:8], safe)
}

// DisplayName is the base name of an uploaded file as the user sent it, with
// any client-side directory removed.
func DisplayName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// SanitizeFilename reduces name to a safe single path element made of ASCII
// letters, digits, dot, dash and underscore.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeNameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")
	if len(name) > 150 {
		ext := filepath.Ext(name)
		name = name[:150-len(ext)] + ext
	}
	return name
}
