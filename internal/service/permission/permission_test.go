package permission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestCanEdit(t *testing.T) {
	member := uuid.New()
	task := &model.Task{Department: "IT", AssigneeIDs: []uuid.UUID{uuid.New(), member}}

	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{"admin any task", &model.User{Role: model.RoleAdmin}, true},
		{"dept head matching department", &model.User{Role: model.RoleDeptHead, Department: strPtr("IT")}, true},
		{"dept head other department", &model.User{Role: model.RoleDeptHead, Department: strPtr("HR")}, false},
		{"dept head without department", &model.User{Role: model.RoleDeptHead}, false},
		{"team member assigned", &model.User{Base: model.Base{ID: member}, Role: model.RoleTeamMember}, true},
		{"team member unassigned", &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleTeamMember, Department: strPtr("IT")}, false},
		{"unknown role", &model.User{Role: "auditor", Department: strPtr("IT")}, false},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.user, task))
		})
	}
}

func TestRequireEdit(t *testing.T) {
	task := &model.Task{Department: "IT"}

	assert.NoError(t, RequireEdit(&model.User{Role: model.RoleAdmin}, task))

	err := RequireEdit(&model.User{Role: model.RoleTeamMember}, task)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
}

func TestCanCreateTasks(t *testing.T) {
	assert.True(t, CanCreateTasks(&model.User{Role: model.RoleAdmin}))
	assert.True(t, CanCreateTasks(&model.User{Role: model.RoleDeptHead}))
	assert.False(t, CanCreateTasks(&model.User{Role: model.RoleTeamMember}))
	assert.False(t, CanCreateTasks(nil))
}
