package template

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

func newService(tasks *mocks.TaskRepositoryMock, templateID uuid.UUID) *Service {
	clinics := &mocks.ClinicRepositoryMock{
		GetTemplateFunc: func(ctx context.Context) (*model.Clinic, error) {
			return &model.Clinic{Base: model.Base{ID: templateID}, IsTemplate: true}, nil
		},
	}
	return NewService(clinics, tasks, clock.NewManaged(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestListTasksSortsByCatalog(t *testing.T) {
	templateID := uuid.New()
	tasks := &mocks.TaskRepositoryMock{
		ListFunc: func(ctx context.Context, filter model.TaskFilter) ([]*model.Task, error) {
			assert.Equal(t, templateID, filter.ClinicID)
			return []*model.Task{
				{Name: "c", Department: "IT", Phase: "Opening Day"},
				{Name: "b", Department: "Marketing", Phase: "Opening Day"},
				{Name: "a", Department: "IT", Phase: "Scouting"},
			}, nil
		},
	}

	list, err := newService(tasks, templateID).ListTasks(context.Background())
	require.NoError(t, err)
	var names []string
	for _, task := range list {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestAddTask(t *testing.T) {
	templateID := uuid.New()
	tasks := &mocks.TaskRepositoryMock{
		NextSortOrderFunc: func(ctx context.Context, clinicID uuid.UUID, department string) (int, error) {
			return 7, nil
		},
		CreateFunc: func(ctx context.Context, task *model.Task) error { return nil },
	}

	task, err := newService(tasks, templateID).AddTask(context.Background(), &model.TemplateTaskRequest{
		Name:       "Order scrubs",
		Department: "Inventory",
		Phase:      "2 Weeks Before Opening",
	})
	require.NoError(t, err)

	assert.Equal(t, templateID, task.ClinicID)
	assert.True(t, task.IsTemplate)
	assert.Equal(t, 7, task.SortOrder)
	require.NotNil(t, task.TemplateOffsetDays)
	assert.Equal(t, 0, *task.TemplateOffsetDays)
	assert.Len(t, tasks.CreateCalls(), 1)
}

func TestAddTaskValidation(t *testing.T) {
	svc := newService(&mocks.TaskRepositoryMock{}, uuid.New())
	ctx := context.Background()

	for _, req := range []*model.TemplateTaskRequest{
		{Name: "", Department: "IT"},
		{Name: "x", Department: ""},
		{Name: "x", Department: "Facilities"},
		{Name: "x", Department: "IT", Phase: "Eventually"},
	} {
		_, err := svc.AddTask(ctx, req)
		assert.True(t, errors.Is(err, errors.ErrBadRequest), "%+v", req)
	}
}

func TestUpdateTask(t *testing.T) {
	id := uuid.New()
	offset := -30
	tasks := &mocks.TaskRepositoryMock{
		GetFunc: func(ctx context.Context, got uuid.UUID) (*model.Task, error) {
			return &model.Task{Base: model.Base{ID: got}, Name: "Old", Department: "IT", IsTemplate: true, TemplateOffsetDays: &offset}, nil
		},
		UpdateFunc: func(ctx context.Context, task *model.Task) error { return nil },
	}
	newOffset := -14

	task, err := newService(tasks, uuid.New()).UpdateTask(context.Background(), id, &model.TemplateTaskRequest{
		Name:       "New",
		OffsetDays: &newOffset,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", task.Name)
	assert.Equal(t, "IT", task.Department)
	assert.Equal(t, -14, *task.TemplateOffsetDays)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), task.UpdatedAt)
}

func TestClinicTasksAreNotTemplateTasks(t *testing.T) {
	tasks := &mocks.TaskRepositoryMock{
		GetFunc: func(ctx context.Context, id uuid.UUID) (*model.Task, error) {
			return &model.Task{Base: model.Base{ID: id}, IsTemplate: false}, nil
		},
	}
	svc := newService(tasks, uuid.New())

	err := svc.DeleteTask(context.Background(), uuid.New())
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, tasks.DeleteCalls())

	_, err = svc.UpdateTask(context.Background(), uuid.New(), &model.TemplateTaskRequest{Name: "x"})
	assert.True(t, errors.IsNotFound(err))
}
