package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
)

type fakeInbox struct {
	notification.NotificationServicer
	unread int
	viewed bool
}

func (f *fakeInbox) Inbox(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	f.viewed = true
	f.unread = 0
	return []*model.Notification{{Message: "hello"}}, nil
}

func (f *fakeInbox) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return f.unread, nil
}

func TestCountThenInbox(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeInbox{unread: 3}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		handler.SetCurrentUser(c, &model.User{Base: model.Base{ID: uuid.New()}})
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/count", nil))
	assert.JSONEq(t, `{"count":3}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")
	assert.True(t, svc.viewed)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/count", nil))
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}
