package note

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
	"github.com/jwalitptl/clinic-tracker/internal/service/permission"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

type NoteServicer interface {
	AddNote(ctx context.Context, taskID uuid.UUID, author *model.User, content string) (*model.Note, error)
}

type Service struct {
	tasks    repository.TaskRepository
	notes    repository.NoteRepository
	users    repository.UserRepository
	activity activity.ActivityServicer
	notifier notification.NotificationServicer
	metrics  *metrics.Metrics
	clock    clock.Clock
}

func NewService(
	tasks repository.TaskRepository,
	notes repository.NoteRepository,
	users repository.UserRepository,
	activitySvc activity.ActivityServicer,
	notifier notification.NotificationServicer,
	m *metrics.Metrics,
	clk clock.Clock,
) *Service {
	return &Service{
		tasks:    tasks,
		notes:    notes,
		users:    users,
		activity: activitySvc,
		notifier: notifier,
		metrics:  m,
		clock:    clk,
	}
}

// AddNote stores a note on a task and fans out notifications: one to each
// mentioned user and one to every member of the task's department, the author
// excluded. A mentioned department member gets both. Blank content is a no-op
// and returns a nil note.
func (s *Service) AddNote(ctx context.Context, taskID uuid.UUID, author *model.User, content string) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := permission.RequireEdit(author, task); err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:         uuid.New(),
		TaskID:     task.ID,
		AuthorID:   &author.ID,
		AuthorName: author.FullName,
		Content:    content,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}
	s.metrics.NotesAdded.Inc()

	if err := s.activity.Record(ctx, activity.Entry{
		ClinicID: task.ClinicID,
		TaskID:   task.ID,
		UserID:   author.ID,
		Action:   model.ActionNoteAdded,
		Detail:   activity.Truncate(content, activity.MaxDetailLen),
	}); err != nil {
		return nil, err
	}

	if err := s.notifyMentions(ctx, task, author, content); err != nil {
		return nil, err
	}

	members, err := s.users.ListByDepartment(ctx, task.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department members: %w", err)
	}
	message := fmt.Sprintf("New note on task \"%s\" in %s", task.Name, task.Department)
	if _, err := s.notifier.NotifyUsers(ctx, userIDs(members), author.ID, model.NotificationDepartmentNote, task.ID, message); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) notifyMentions(ctx context.Context, task *model.Task, author *model.User, content string) error {
	usernames := ParseMentions(content)
	if len(usernames) == 0 {
		return nil
	}
	mentioned, err := s.users.ListByUsernames(ctx, usernames)
	if err != nil {
		return fmt.Errorf("failed to resolve mentions: %w", err)
	}
	message := fmt.Sprintf("%s mentioned you in task \"%s\"", author.FullName, task.Name)
	_, err = s.notifier.NotifyUsers(ctx, userIDs(mentioned), author.ID, model.NotificationMention, task.ID, message)
	return err
}

// ParseMentions returns the distinct @username tokens of content in order of
// first appearance. A token is the run of word characters after '@'.
func ParseMentions(content string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range mentionPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

func userIDs(users []*model.User) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
