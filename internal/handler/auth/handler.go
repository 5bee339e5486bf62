package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/service/auth"
)

// Sessions exposes the session cache kept by the auth middleware.
type Sessions interface {
	SessionToken(c *gin.Context) string
	Forget(token string)
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	svc      auth.AuthServicer
	sessions Sessions
	cookie   CookieConfig
	now      func() time.Time
}

func NewHandler(svc auth.AuthServicer, sessions Sessions, cookie CookieConfig) *Handler {
	return &Handler{svc: svc, sessions: sessions, cookie: cookie, now: time.Now}
}

// RegisterPublicRoutes mounts login, which is reachable without a session.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup, limit ...gin.HandlerFunc) {
	r.POST("/auth/login", append(limit, h.Login)...)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	maxAge := int(resp.ExpiresAt.Sub(h.now()).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, resp.Token, maxAge, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) Logout(c *gin.Context) {
	if token := h.sessions.SessionToken(c); token != "" {
		h.sessions.Forget(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(handler.CurrentUser(c)))
}
