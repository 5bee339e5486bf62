package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/service/note"
	taskService "github.com/jwalitptl/clinic-tracker/internal/service/task"
)

type Handler struct {
	service taskService.TaskServicer
	notes   note.NoteServicer
}

func NewHandler(service taskService.TaskServicer, notes note.NoteServicer) *Handler {
	return &Handler{service: service, notes: notes}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clinics/:id/tasks", h.ListTasks)
	r.POST("/clinics/:id/tasks", h.CreateTask)
	r.GET("/clinics/:id/quickcheck", h.QuickCheck)

	tasks := r.Group("/tasks")
	{
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.POST("/:id/notes", h.AddNote)
	}
}

type listQuery struct {
	Department string `form:"department" binding:"omitempty,department"`
	Phase      string `form:"phase" binding:"omitempty,phase"`
	Status     string `form:"status" binding:"omitempty,taskstatus"`
	Assignee   string `form:"assignee" binding:"omitempty,uuid"`
}

func (h *Handler) ListTasks(c *gin.Context) {
	clinicID, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	filter := model.TaskFilter{
		ClinicID:   clinicID,
		Department: q.Department,
		Phase:      q.Phase,
		Status:     q.Status,
	}
	if q.Assignee != "" {
		id := uuid.MustParse(q.Assignee)
		filter.AssigneeID = &id
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), filter)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tasks))
}

func (h *Handler) CreateTask(c *gin.Context) {
	clinicID, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), clinicID, &req, handler.CurrentUser(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(task))
}

func (h *Handler) QuickCheck(c *gin.Context) {
	clinicID, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}

	items, err := h.service.QuickCheck(c.Request.Context(), clinicID, c.Query("department"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id, handler.CurrentUser(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(detail))
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}
	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), id, &patch, handler.CurrentUser(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(task))
}

func (h *Handler) AddNote(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}
	var req model.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	n, err := h.notes.AddNote(c.Request.Context(), id, handler.CurrentUser(c), req.Content)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	if n == nil {
		c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "empty note ignored"})
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(n))
}
