package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
)

const maxLoggedBody = 2048

// Logger logs each request at a level chosen by status class. JSON bodies of
// writes are included except on auth routes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		var requestBody []byte
		if logBody(c) {
			requestBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody))
			c.Request.Body = readCloser{io.MultiReader(bytes.NewReader(requestBody), c.Request.Body), c.Request.Body}
		}

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		status := c.Writer.Status()

		var event *zerolog.Event
		msg := "Request processed"
		switch {
		case status >= 500:
			event, msg = log.Error(), "Server error"
		case status >= 400:
			event, msg = log.Warn(), "Client error"
		default:
			event = log.Info()
		}

		event = event.
			Str("request_id", c.GetString(handler.ContextRequestID)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if user := handler.CurrentUser(c); user != nil {
			event = event.Str("user", user.Username)
		}
		if len(requestBody) > 0 {
			event = event.Str("request", string(requestBody))
		}
		event.Msg(msg)
	}
}

func logBody(c *gin.Context) bool {
	if c.Request.Body == nil || c.Request.Method == "GET" {
		return false
	}
	if strings.Contains(c.Request.URL.Path, "/auth/") || strings.Contains(c.Request.URL.Path, "/users") {
		return false
	}
	return strings.HasPrefix(c.ContentType(), "application/json")
}

type readCloser struct {
	io.Reader
	io.Closer
}
