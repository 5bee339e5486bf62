package clinic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/storage"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

type ClinicServicer interface {
	CreateClinic(ctx context.Context, req *model.CreateClinicRequest, actor *model.User) (*model.Clinic, error)
	GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
	ListClinics(ctx context.Context) ([]*model.ClinicSummary, error)
	Dashboard(ctx context.Context, id uuid.UUID) (*model.Dashboard, error)
	DeleteClinic(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     repository.ClinicRepository
	tasks    repository.TaskRepository
	activity activity.ActivityServicer
	store    storage.Store
	metrics  *metrics.Metrics
	clock    clock.Clock
}

func NewService(
	repo repository.ClinicRepository,
	tasks repository.TaskRepository,
	activitySvc activity.ActivityServicer,
	store storage.Store,
	m *metrics.Metrics,
	clk clock.Clock,
) *Service {
	return &Service{
		repo:     repo,
		tasks:    tasks,
		activity: activitySvc,
		store:    store,
		metrics:  m,
		clock:    clk,
	}
}

// CreateClinic creates a clinic and copies every task of the current template
// into it. The clinic row, the copied tasks and the activity entry are written
// in one transaction. Without a template the clinic starts empty.
func (s *Service) CreateClinic(ctx context.Context, req *model.CreateClinicRequest, actor *model.User) (*model.Clinic, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.Validation("clinic name is required")
	}

	now := s.clock.Now()
	clinic := &model.Clinic{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:        name,
		OpeningDate: req.OpeningDate,
		Status:      model.ClinicStatusActive,
	}
	if actor != nil {
		clinic.CreatedBy = &actor.ID
	}

	template, err := s.templateTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks := Instantiate(clinic, template, now)

	entry := &model.ActivityEntry{
		ID:        uuid.New(),
		ClinicID:  &clinic.ID,
		UserID:    clinic.CreatedBy,
		Action:    model.ActionClinicCreated,
		Detail:    name,
		CreatedAt: now,
	}
	if err := s.repo.CreateWithTasks(ctx, clinic, tasks, entry); err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	s.metrics.ClinicsCreated.Inc()
	s.metrics.TasksCopied.Add(float64(len(tasks)))
	log.Info().
		Str("clinic_id", clinic.ID.String()).
		Str("opening_date", clinic.OpeningDate.String()).
		Int("tasks", len(tasks)).
		Msg("Clinic created from template")
	return clinic, nil
}

func (s *Service) templateTasks(ctx context.Context) ([]*model.Task, error) {
	tmpl, err := s.repo.GetTemplate(ctx)
	if errors.IsNotFound(err) {
		log.Warn().Msg("No template clinic configured, creating clinic without tasks")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template clinic: %w", err)
	}
	tasks, err := s.tasks.List(ctx, model.TaskFilter{ClinicID: tmpl.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list template tasks: %w", err)
	}
	return tasks, nil
}

// Instantiate copies template tasks into clinic. Due dates are the clinic's
// opening date plus each task's offset in calendar days. Without an opening
// date, or for a task without an offset, the due date stays unset.
func Instantiate(clinic *model.Clinic, template []*model.Task, now time.Time) []*model.Task {
	tasks := make([]*model.Task, 0, len(template))
	for _, t := range template {
		task := &model.Task{
			Base:       model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			ClinicID:   clinic.ID,
			Name:       t.Name,
			Department: t.Department,
			Phase:      t.Phase,
			Status:     model.StatusNotStarted,
			SortOrder:  t.SortOrder,
		}
		// The offset belongs to the template row only.
		if t.TemplateOffsetDays != nil && !clinic.OpeningDate.IsZero() {
			task.DueDate = clinic.OpeningDate.AddDays(*t.TemplateOffsetDays)
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListClinics(ctx context.Context) ([]*model.ClinicSummary, error) {
	return s.repo.List(ctx, s.today())
}

// Dashboard reports progress for every catalog department, the clinic's
// overdue and blocked tasks and its latest activity.
func (s *Service) Dashboard(ctx context.Context, id uuid.UUID) (*model.Dashboard, error) {
	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.DepartmentProgress(ctx, id)
	if err != nil {
		return nil, err
	}
	departments := mergeDepartments(rows)

	total, done := 0, 0
	for _, d := range departments {
		total += d.Total
		done += d.Done
	}

	overdue, err := s.tasks.ListOverdue(ctx, id, s.today())
	if err != nil {
		return nil, err
	}
	blocked, err := s.tasks.ListBlocked(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.activity.ListByClinic(ctx, id, model.ActivityDashboardLimit)
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		Clinic:      clinic,
		Pct:         model.Percent(done, total),
		Departments: departments,
		Overdue:     overdue,
		Blocked:     blocked,
		Activity:    entries,
	}, nil
}

// mergeDepartments lists every catalog department in order, zero-filled,
// followed by any other department that has tasks.
func mergeDepartments(rows []model.DepartmentProgress) []model.DepartmentProgress {
	byName := make(map[string]model.DepartmentProgress, len(rows))
	for _, r := range rows {
		byName[r.Department] = r
	}

	out := make([]model.DepartmentProgress, 0, len(model.Departments))
	for _, name := range model.Departments {
		d, ok := byName[name]
		if !ok {
			d = model.DepartmentProgress{Department: name}
		}
		delete(byName, name)
		d.Fill()
		out = append(out, d)
	}
	for _, r := range rows {
		if _, ok := byName[r.Department]; ok {
			r.Fill()
			out = append(out, r)
		}
	}
	return out
}

// DeleteClinic removes the clinic with its tasks, notes, attachments and
// activity, then deletes the stored attachment files. The template clinic
// cannot be deleted.
func (s *Service) DeleteClinic(ctx context.Context, id uuid.UUID) error {
	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if clinic.IsTemplate {
		return errors.Validation("the template clinic cannot be deleted")
	}

	stored, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete clinic: %w", err)
	}
	s.metrics.ClinicsDeleted.Inc()

	for _, name := range stored {
		if err := s.store.Delete(name); err != nil {
			log.Warn().Err(err).
				Str("clinic_id", id.String()).
				Str("file", name).
				Msg("Failed to remove attachment file")
		}
	}

	log.Info().
		Str("clinic_id", id.String()).
		Str("name", clinic.Name).
		Int("files", len(stored)).
		Msg("Clinic deleted")
	return nil
}

func (s *Service) today() model.Date {
	return model.DateOf(s.clock.Now())
}
