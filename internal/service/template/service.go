package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

type TemplateServicer interface {
	ListTasks(ctx context.Context) ([]*model.Task, error)
	AddTask(ctx context.Context, req *model.TemplateTaskRequest) (*model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *model.TemplateTaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// Service manages the master template tasks. Edits only affect clinics
// created afterwards.
type Service struct {
	clinics repository.ClinicRepository
	tasks   repository.TaskRepository
	clock   clock.Clock
}

func NewService(clinics repository.ClinicRepository, tasks repository.TaskRepository, clk clock.Clock) *Service {
	return &Service{clinics: clinics, tasks: tasks, clock: clk}
}

func (s *Service) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tmpl, err := s.clinics.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, model.TaskFilter{ClinicID: tmpl.ID})
	if err != nil {
		return nil, err
	}
	model.SortTasks(tasks)
	return tasks, nil
}

// AddTask appends a task to the end of its department. The offset defaults
// to zero days.
func (s *Service) AddTask(ctx context.Context, req *model.TemplateTaskRequest) (*model.Task, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Department == "" {
		return nil, errors.Validation("task name and department are required")
	}
	if !model.IsDepartment(req.Department) {
		return nil, errors.Validation("unknown department %q", req.Department)
	}
	if req.Phase != "" && !model.IsPhase(req.Phase) {
		return nil, errors.Validation("unknown phase %q", req.Phase)
	}

	tmpl, err := s.clinics.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}
	order, err := s.tasks.NextSortOrder(ctx, tmpl.ID, req.Department)
	if err != nil {
		return nil, err
	}

	offset := 0
	if req.OffsetDays != nil {
		offset = *req.OffsetDays
	}
	now := s.clock.Now()
	task := &model.Task{
		Base:               model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ClinicID:           tmpl.ID,
		Name:               name,
		Department:         req.Department,
		Phase:              req.Phase,
		Status:             model.StatusNotStarted,
		SortOrder:          order,
		IsTemplate:         true,
		TemplateOffsetDays: &offset,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to add template task: %w", err)
	}
	return task, nil
}

// UpdateTask changes the non-empty fields of req on a template task.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, req *model.TemplateTaskRequest) (*model.Task, error) {
	task, err := s.getTemplateTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		task.Name = name
	}
	if req.Department != "" {
		if !model.IsDepartment(req.Department) {
			return nil, errors.Validation("unknown department %q", req.Department)
		}
		task.Department = req.Department
	}
	if req.Phase != "" {
		if !model.IsPhase(req.Phase) {
			return nil, errors.Validation("unknown phase %q", req.Phase)
		}
		task.Phase = req.Phase
	}
	if req.OffsetDays != nil {
		offset := *req.OffsetDays
		task.TemplateOffsetDays = &offset
	}
	task.UpdatedAt = s.clock.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update template task: %w", err)
	}
	return task, nil
}

func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getTemplateTask(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// getTemplateTask loads a task and hides clinic tasks behind NotFound.
func (s *Service) getTemplateTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.IsTemplate {
		return nil, errors.NotFound("template task", nil)
	}
	return task, nil
}
