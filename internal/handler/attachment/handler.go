package attachment

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/service/attachment"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

const formField = "file"

type Handler struct {
	service attachment.AttachmentServicer
	// uploadLimit is mounted in front of the upload route only.
	uploadLimit gin.HandlerFunc
}

func NewHandler(service attachment.AttachmentServicer, uploadLimit gin.HandlerFunc) *Handler {
	return &Handler{service: service, uploadLimit: uploadLimit}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	if h.uploadLimit != nil {
		r.POST("/tasks/:id/attachments", h.uploadLimit, h.Upload)
	} else {
		r.POST("/tasks/:id/attachments", h.Upload)
	}
	r.GET("/attachments/:name", h.Download)
}

func (h *Handler) Upload(c *gin.Context) {
	taskID, ok := handler.ParamID(c, "id", "task")
	if !ok {
		return
	}

	fh, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, handler.NewErrorResponse("file is too large"))
			return
		}
		handler.RespondError(c, errors.Validation("no file selected"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	defer f.Close()

	att, err := h.service.Upload(c.Request.Context(), taskID, handler.CurrentUser(c), attachment.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(att))
}

// Download streams a stored file under its original name.
func (h *Handler) Download(c *gin.Context) {
	att, f, err := h.service.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	defer f.Close()

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": att.OriginalName}))
	http.ServeContent(c.Writer, c.Request, att.OriginalName, att.CreatedAt, f)
}
