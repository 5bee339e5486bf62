package permission

import (
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

// CanEdit decides whether user may mutate task.
//
// Admins edit everything. Department heads edit tasks of their own department
// and team members edit tasks they are assigned to. Everything else is denied,
// including unknown roles and department heads without a department.
func CanEdit(user *model.User, task *model.Task) bool {
	if user == nil || task == nil {
		return false
	}
	switch user.Role {
	case model.RoleAdmin:
		return true
	case model.RoleDeptHead:
		return user.Department != nil && *user.Department == task.Department
	case model.RoleTeamMember:
		return task.IsAssigned(user.ID)
	default:
		return false
	}
}

// RequireEdit returns a Forbidden error when CanEdit is false.
func RequireEdit(user *model.User, task *model.Task) error {
	if !CanEdit(user, task) {
		return errors.Forbidden("you do not have permission to update this task")
	}
	return nil
}

// CanCreateTasks reports whether user may add tasks to a clinic.
func CanCreateTasks(user *model.User) bool {
	return user != nil && (user.Role == model.RoleAdmin || user.Role == model.RoleDeptHead)
}
