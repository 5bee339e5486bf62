package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/catalog", h.GetCatalog)
}

func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.GetCatalog()))
}
