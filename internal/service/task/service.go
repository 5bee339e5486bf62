package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
	"github.com/jwalitptl/clinic-tracker/internal/service/permission"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

// QuickCheckLimit is how many recently touched tasks the quick check shows.
const QuickCheckLimit = 10

type TaskServicer interface {
	GetDetail(ctx context.Context, id uuid.UUID, user *model.User) (*model.TaskDetail, error)
	ListTasks(ctx context.Context, filter model.TaskFilter) ([]*model.Task, error)
	CreateTask(ctx context.Context, clinicID uuid.UUID, req *model.CreateTaskRequest, actor *model.User) (*model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch *model.TaskPatch, actor *model.User) (*model.Task, error)
	QuickCheck(ctx context.Context, clinicID uuid.UUID, department string) ([]*model.QuickCheckItem, error)
}

type Service struct {
	tasks       repository.TaskRepository
	clinics     repository.ClinicRepository
	notes       repository.NoteRepository
	attachments repository.AttachmentRepository
	users       repository.UserRepository
	activity    activity.ActivityServicer
	notifier    notification.NotificationServicer
	metrics     *metrics.Metrics
	clock       clock.Clock
}

func NewService(
	tasks repository.TaskRepository,
	clinics repository.ClinicRepository,
	notes repository.NoteRepository,
	attachments repository.AttachmentRepository,
	users repository.UserRepository,
	activitySvc activity.ActivityServicer,
	notifier notification.NotificationServicer,
	m *metrics.Metrics,
	clk clock.Clock,
) *Service {
	return &Service{
		tasks:       tasks,
		clinics:     clinics,
		notes:       notes,
		attachments: attachments,
		users:       users,
		activity:    activitySvc,
		notifier:    notifier,
		metrics:     m,
		clock:       clk,
	}
}

func (s *Service) GetDetail(ctx context.Context, id uuid.UUID, user *model.User) (*model.TaskDetail, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	clinic, err := s.clinics.Get(ctx, task.ClinicID)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.attachments.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.TaskDetail{
		Task:        task,
		Clinic:      clinic,
		Notes:       notes,
		Attachments: attachments,
		CanEdit:     permission.CanEdit(user, task),
	}, nil
}

// ListTasks returns a clinic's tasks in catalog order.
func (s *Service) ListTasks(ctx context.Context, filter model.TaskFilter) ([]*model.Task, error) {
	if _, err := s.clinics.Get(ctx, filter.ClinicID); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	model.SortTasks(tasks)
	return tasks, nil
}

// CreateTask adds a task to a clinic. Only admins and department heads may
// create tasks.
func (s *Service) CreateTask(ctx context.Context, clinicID uuid.UUID, req *model.CreateTaskRequest, actor *model.User) (*model.Task, error) {
	clinic, err := s.clinics.Get(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic.IsTemplate {
		return nil, errors.Validation("use the template endpoints to add template tasks")
	}
	if !permission.CanCreateTasks(actor) {
		return nil, errors.Forbidden("only admins and department heads can create tasks")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.Validation("task name is required")
	}
	if !model.IsDepartment(req.Department) {
		return nil, errors.Validation("unknown department %q", req.Department)
	}
	if req.Phase != "" && !model.IsPhase(req.Phase) {
		return nil, errors.Validation("unknown phase %q", req.Phase)
	}
	assignees, err := s.checkAssignees(ctx, req.AssigneeIDs)
	if err != nil {
		return nil, err
	}
	order, err := s.tasks.NextSortOrder(ctx, clinicID, req.Department)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	task := &model.Task{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ClinicID:    clinicID,
		Name:        name,
		Department:  req.Department,
		Phase:       req.Phase,
		DueDate:     req.DueDate,
		Status:      model.StatusNotStarted,
		SortOrder:   order,
		AssigneeIDs: assignees,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.activity.Record(ctx, activity.Entry{
		ClinicID: clinicID,
		TaskID:   task.ID,
		UserID:   actor.ID,
		Action:   model.ActionTaskCreated,
		Detail:   name,
	}); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies patch on behalf of actor. Permission is checked against
// the task as stored, before any field changes. A status change is logged and
// every assignee other than the actor is notified.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, patch *model.TaskPatch, actor *model.User) (*model.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := permission.RequireEdit(actor, task); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if patch.AssigneeIDs != nil {
		ids, err := s.checkAssignees(ctx, *patch.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		patch.AssigneeIDs = &ids
	}

	oldStatus := task.Status
	patch.Apply(task)
	task.Name = strings.TrimSpace(task.Name)
	task.UpdatedAt = s.clock.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if task.Status == oldStatus {
		return task, nil
	}

	s.metrics.StatusChanges.WithLabelValues(task.Status).Inc()
	if err := s.activity.Record(ctx, activity.Entry{
		ClinicID: task.ClinicID,
		TaskID:   task.ID,
		UserID:   actor.ID,
		Action:   model.ActionStatusChanged,
		Detail:   fmt.Sprintf("%s → %s", oldStatus, task.Status),
	}); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Task \"%s\" status changed to %s", task.Name, task.Status)
	sent, err := s.notifier.NotifyUsers(ctx, task.AssigneeIDs, actor.ID, model.NotificationStatusChange, task.ID, message)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("task_id", task.ID.String()).
		Str("from", oldStatus).
		Str("to", task.Status).
		Int("notified", sent).
		Msg("Task status changed")
	return task, nil
}

// QuickCheck lists the most recently updated tasks of one department with
// their latest note. An empty department means the first catalog department.
func (s *Service) QuickCheck(ctx context.Context, clinicID uuid.UUID, department string) ([]*model.QuickCheckItem, error) {
	if department == "" {
		department = model.Departments[0]
	}
	if !model.IsDepartment(department) {
		return nil, errors.Validation("unknown department %q", department)
	}
	if _, err := s.clinics.Get(ctx, clinicID); err != nil {
		return nil, err
	}
	return s.tasks.QuickCheck(ctx, clinicID, department, QuickCheckLimit)
}

func validatePatch(p *model.TaskPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.Validation("task name cannot be empty")
	}
	if p.Department != nil && !model.IsDepartment(*p.Department) {
		return errors.Validation("unknown department %q", *p.Department)
	}
	if p.Phase != nil && *p.Phase != "" && !model.IsPhase(*p.Phase) {
		return errors.Validation("unknown phase %q", *p.Phase)
	}
	if p.Status != nil && !model.IsStatus(*p.Status) {
		return errors.Validation("unknown status %q", *p.Status)
	}
	return nil
}

// checkAssignees dedupes ids keeping their order and verifies every user exists.
func (s *Service) checkAssignees(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return out, nil
	}

	users, err := s.users.ListByIDs(ctx, out)
	if err != nil {
		return nil, err
	}
	if len(users) != len(out) {
		return nil, errors.Validation("one or more assignees do not exist")
	}
	return out, nil
}
