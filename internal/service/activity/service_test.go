package activity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
)

func TestRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := &mocks.ActivityRepositoryMock{
		CreateFunc: func(ctx context.Context, entry *model.ActivityEntry) error { return nil },
	}
	svc := NewService(repo, clock.NewManaged(now))

	clinicID, userID := uuid.New(), uuid.New()
	err := svc.Record(context.Background(), Entry{
		ClinicID: clinicID,
		UserID:   userID,
		Action:   model.ActionClinicCreated,
		Detail:   "Austin North",
	})
	require.NoError(t, err)

	calls := repo.CreateCalls()
	require.Len(t, calls, 1)
	got := calls[0].Entry
	require.NotNil(t, got.ClinicID)
	assert.Equal(t, clinicID, *got.ClinicID)
	assert.Nil(t, got.TaskID)
	assert.Equal(t, userID, *got.UserID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestListByClinicDefaultsLimit(t *testing.T) {
	repo := &mocks.ActivityRepositoryMock{
		ListByClinicFunc: func(ctx context.Context, clinicID uuid.UUID, limit int) ([]*model.ActivityEntry, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, clock.New())

	_, err := svc.ListByClinic(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, model.ActivityDashboardLimit, repo.ListByClinicCalls()[0].Limit)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 80))
	assert.Len(t, Truncate(strings.Repeat("a", 100), 80), 80)
	assert.Equal(t, "héllo", Truncate("héllo wörld", 5))
}
