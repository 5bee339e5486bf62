package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/model"
)

const (
	ContextUser      = "session_user"
	ContextRequestID = "request_id"
)

// SetCurrentUser stores the authenticated user on the request.
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(ContextUser, user)
}

// CurrentUser returns the authenticated user, or nil on public routes.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// ParamID parses a uuid path parameter, answering 400 when it is malformed.
func ParamID(c *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse("invalid "+resource+" ID"))
		return uuid.Nil, false
	}
	return id, true
}
