package clinic

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/middleware"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	clinicService "github.com/jwalitptl/clinic-tracker/internal/service/clinic"
	"github.com/jwalitptl/clinic-tracker/internal/service/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service  clinicService.ClinicServicer
	activity activity.ActivityServicer
	exporter export.Exporter
}

func NewHandler(service clinicService.ClinicServicer, activitySvc activity.ActivityServicer, exporter export.Exporter) *Handler {
	return &Handler{service: service, activity: activitySvc, exporter: exporter}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.GET("", h.ListClinics)
		clinics.POST("", middleware.RequireRole(model.RoleAdmin), h.CreateClinic)
		clinics.GET("/:id", h.GetDashboard)
		clinics.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteClinic)
		clinics.GET("/:id/activity", h.ListActivity)
		clinics.GET("/:id/export", h.Export)
	}
}

func (h *Handler) ListClinics(c *gin.Context) {
	clinics, err := h.service.ListClinics(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinics))
}

func (h *Handler) CreateClinic(c *gin.Context) {
	user := handler.CurrentUser(c)

	var req model.CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	clinic, err := h.service.CreateClinic(c.Request.Context(), &req, user)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(clinic))
}

func (h *Handler) GetDashboard(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(dashboard))
}

func (h *Handler) DeleteClinic(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}

	if err := h.service.DeleteClinic(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "clinic deleted"})
}

func (h *Handler) ListActivity(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > 200 {
		limit = 200
	}

	if _, err := h.service.GetClinic(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	entries, err := h.activity.ListByClinic(c.Request.Context(), id, limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(entries))
}

func (h *Handler) Export(c *gin.Context) {
	id, ok := handler.ParamID(c, "id", "clinic")
	if !ok {
		return
	}

	var buf bytes.Buffer
	filename, err := h.exporter.WriteChecklist(c.Request.Context(), id, &buf)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
