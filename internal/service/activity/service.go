package activity

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
)

// MaxDetailLen bounds the note excerpt stored with "Note Added" entries.
const MaxDetailLen = 80

type ActivityServicer interface {
	Record(ctx context.Context, entry Entry) error
	ListByClinic(ctx context.Context, clinicID uuid.UUID, limit int) ([]*model.ActivityEntry, error)
}

// Entry describes one clinic event. Zero IDs are stored as NULL.
type Entry struct {
	ClinicID uuid.UUID
	TaskID   uuid.UUID
	UserID   uuid.UUID
	Action   string
	Detail   string
}

type Service struct {
	repo  repository.ActivityRepository
	clock clock.Clock
}

func NewService(repo repository.ActivityRepository, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

func (s *Service) Record(ctx context.Context, e Entry) error {
	entry := &model.ActivityEntry{
		ID:        uuid.New(),
		ClinicID:  optionalID(e.ClinicID),
		TaskID:    optionalID(e.TaskID),
		UserID:    optionalID(e.UserID),
		Action:    e.Action,
		Detail:    e.Detail,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %q activity: %w", e.Action, err)
	}
	return nil
}

func (s *Service) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit int) ([]*model.ActivityEntry, error) {
	if limit <= 0 {
		limit = model.ActivityDashboardLimit
	}
	return s.repo.ListByClinic(ctx, clinicID, limit)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
