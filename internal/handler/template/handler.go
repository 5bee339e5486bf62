package template

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/middleware"
	"github.com/jwalitptl/clinic-tracker/internal/service/template"
)

type Handler struct {
	service template.TemplateServicer
}

func NewHandler(service template.TemplateServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tasks := r.Group("/template/tasks", middleware.RequireRole(model.RoleAdmin))
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.AddTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.service.ListTasks(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tasks))
}

func (h *Handler) AddTask(c *gin.Context) {
	var req model.TemplateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	task, err := h.service.AddTask(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(task))
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}
	var req model.TemplateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(task))
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "template task deleted"})
}
