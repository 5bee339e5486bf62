package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/email"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

const (
	defaultWindowDays   = 3
	defaultDedupeWindow = 24 * time.Hour
)

type NotificationServicer interface {
	Notify(ctx context.Context, userID uuid.UUID, kind model.NotificationKind, taskID uuid.UUID, message string) error
	NotifyUsers(ctx context.Context, userIDs []uuid.UUID, skip uuid.UUID, kind model.NotificationKind, taskID uuid.UUID, message string) (int, error)
	Inbox(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	CheckDueSoon(ctx context.Context, user *model.User, today model.Date) (int, error)
	SweepDueSoon(ctx context.Context, today model.Date) (int, error)
}

type Options struct {
	// WindowDays is how far ahead of today a due date counts as due soon.
	WindowDays int
	// DedupeWindow suppresses a due-soon notice when the user already got
	// one about the same task within it.
	DedupeWindow time.Duration
	// Channel is the broker channel notification events are published on.
	Channel string
}

type Service struct {
	repo    repository.NotificationRepository
	users   repository.UserRepository
	tasks   repository.TaskRepository
	broker  messaging.Broker
	mailer  email.Service
	metrics *metrics.Metrics
	clock   clock.Clock
	opts    Options
}

func NewService(
	repo repository.NotificationRepository,
	users repository.UserRepository,
	tasks repository.TaskRepository,
	broker messaging.Broker,
	mailer email.Service,
	m *metrics.Metrics,
	clk clock.Clock,
	opts Options,
) *Service {
	if opts.WindowDays <= 0 {
		opts.WindowDays = defaultWindowDays
	}
	if opts.DedupeWindow <= 0 {
		opts.DedupeWindow = defaultDedupeWindow
	}
	return &Service{
		repo:    repo,
		users:   users,
		tasks:   tasks,
		broker:  broker,
		mailer:  mailer,
		metrics: m,
		clock:   clk,
		opts:    opts,
	}
}

// Notify writes one notification about a task into the user's inbox.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, kind model.NotificationKind, taskID uuid.UUID, message string) error {
	n := &model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}
	if taskID != uuid.Nil {
		n.TaskID = &taskID
		n.Link = model.TaskLink(taskID)
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.metrics.NotificationsSent.WithLabelValues(string(kind)).Inc()
	s.publish(ctx, n)
	return nil
}

// NotifyUsers notifies every user in userIDs except skip. It returns how many
// notifications were written.
func (s *Service) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, skip uuid.UUID, kind model.NotificationKind, taskID uuid.UUID, message string) (int, error) {
	sent := 0
	for _, id := range userIDs {
		if id == skip {
			continue
		}
		if err := s.Notify(ctx, id, kind, taskID, message); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// Inbox returns the newest notifications of the user and marks all of the
// user's notifications read. The returned rows carry their state from before
// the update.
func (s *Service) Inbox(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	list, err := s.repo.ListRecent(ctx, userID, model.InboxLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if _, err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return list, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// CheckDueSoon notifies user about each incomplete task assigned to them that
// falls due between today and the end of the window. Repeated calls are
// harmless.
func (s *Service) CheckDueSoon(ctx context.Context, user *model.User, today model.Date) (int, error) {
	tasks, err := s.tasks.ListDueBetween(ctx, &user.ID, today, today.AddDays(s.opts.WindowDays))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, task := range tasks {
		ok, err := s.notifyDueSoon(ctx, user, task)
		if err != nil {
			return sent, err
		}
		if ok {
			sent++
		}
	}
	return sent, nil
}

// SweepDueSoon runs CheckDueSoon for every user assigned to a task due soon.
func (s *Service) SweepDueSoon(ctx context.Context, today model.Date) (int, error) {
	tasks, err := s.tasks.ListDueBetween(ctx, nil, today, today.AddDays(s.opts.WindowDays))
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	var ids []uuid.UUID
	seen := map[uuid.UUID]struct{}{}
	for _, task := range tasks {
		for _, id := range task.AssigneeIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to load assignees: %w", err)
	}

	sent := 0
	for _, user := range users {
		n, err := s.CheckDueSoon(ctx, user, today)
		sent += n
		if err != nil {
			return sent, fmt.Errorf("failed to check due-soon tasks for user %s: %w", user.ID, err)
		}
	}
	return sent, nil
}

func (s *Service) notifyDueSoon(ctx context.Context, user *model.User, task *model.Task) (bool, error) {
	since := s.clock.Now().Add(-s.opts.DedupeWindow)
	exists, err := s.repo.ExistsForTaskSince(ctx, user.ID, task.ID, since)
	if err != nil {
		return false, fmt.Errorf("failed to check recent notifications: %w", err)
	}
	if exists {
		return false, nil
	}

	due := task.DueDate.String()
	message := fmt.Sprintf("Task \"%s\" is due soon (%s)", task.Name, due)
	if err := s.Notify(ctx, user.ID, model.NotificationDueSoon, task.ID, message); err != nil {
		return false, err
	}
	s.metrics.DueSoonNotified.Inc()

	if user.Email != nil && *user.Email != "" {
		if err := s.mailer.SendDueSoon(ctx, *user.Email, user.FullName, task.Name, due, model.TaskLink(task.ID)); err != nil {
			log.Warn().Err(err).
				Str("user_id", user.ID.String()).
				Str("task_id", task.ID.String()).
				Msg("Failed to email due-soon notice")
		}
	}
	return true, nil
}

func (s *Service) publish(ctx context.Context, n *model.Notification) {
	if s.broker == nil {
		return
	}
	msg := messaging.NewMessage(messaging.EventNotificationCreated, n)
	if err := s.broker.Publish(ctx, s.opts.Channel, msg); err != nil {
		log.Warn().Err(err).
			Str("notification_id", n.ID.String()).
			Str("channel", s.opts.Channel).
			Msg("Failed to publish notification event")
	}
}
