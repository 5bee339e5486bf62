package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

// ErrorHandler logs errors attached with c.Error and writes a response for
// the last one if the handler did not write anything.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(handler.ContextRequestID)
		for _, e := range c.Errors {
			log.Debug().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last().Err
		status := errors.HTTPStatus(lastErr)
		message := "internal server error"
		var appErr *errors.AppError
		if errors.As(lastErr, &appErr) && appErr.Code != errors.ErrInternal {
			message = appErr.Message
		}
		c.JSON(status, handler.NewErrorResponse(message))
	}
}
