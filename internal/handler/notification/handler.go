package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
)

type Handler struct {
	service notification.NotificationServicer
}

func NewHandler(service notification.NotificationServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.Inbox)
		notifications.GET("/count", h.UnreadCount)
	}
}

// Inbox returns the latest notifications and marks all of them read.
func (h *Handler) Inbox(c *gin.Context) {
	items, err := h.service.Inbox(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

// UnreadCount is polled by the badge and answers a bare {"count": n}.
func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
