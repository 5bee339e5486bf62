package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	pkgvalidator "github.com/jwalitptl/clinic-tracker/pkg/validator"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// BindingMessages are shown for failed binding tags.
var BindingMessages = map[string]string{
	"required":   "is required",
	"min":        "is too short",
	"max":        "is too long",
	"email":      "must be a valid email address",
	"department": "must be a known department",
	"phase":      "must be a known phase",
	"taskstatus": "must be a known status",
	"role":       "must be admin, dept_head or team_member",
}

// RespondError writes err with the status its AppError code maps to.
// Anything else is logged and reported as a 500.
func RespondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if errors.As(err, &appErr) && appErr.Code != errors.ErrInternal {
		c.AbortWithStatusJSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(ContextRequestID)).
		Msg("Request failed")
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

// RespondBindError reports a request body or query that failed to bind.
func RespondBindError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		msg := strings.Join(pkgvalidator.Messages(verrs, BindingMessages), "; ")
		c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(msg))
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse("invalid request: "+err.Error()))
}
