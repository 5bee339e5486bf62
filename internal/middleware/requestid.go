package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
)

const (
	HeaderXRequestID = "X-Request-ID"
	maxRequestIDLen  = 64
)

// RequestID reuses a well-formed caller-supplied id or generates one, echoes
// it in the response and attaches a logger carrying it to the request context
// for zerolog.Ctx.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(handler.ContextRequestID, rid)
		c.Header(HeaderXRequestID, rid)

		l := log.With().Str("request_id", rid).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Next()
	}
}

// validRequestID accepts short ids of visible ASCII so they are safe to echo
// and to log.
func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(rid); i++ {
		if rid[i] < '!' || rid[i] > '~' {
			return false
		}
	}
	return true
}
