package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type AuthConfig struct {
	CookieName string
	// UserTTL bounds how long a resolved session user is reused before it
	// is re-read, so deletions and role changes apply quickly.
	UserTTL time.Duration
}

type AuthMiddleware struct {
	auth       Authenticator
	cookieName string
	users      *cache.Cache
}

func NewAuthMiddleware(auth Authenticator, cfg AuthConfig) *AuthMiddleware {
	if cfg.UserTTL <= 0 {
		cfg.UserTTL = 30 * time.Second
	}
	return &AuthMiddleware{
		auth:       auth,
		cookieName: cfg.CookieName,
		users:      cache.New(cfg.UserTTL, 2*cfg.UserTTL),
	}
}

// Authenticate reads the session token from the cookie or a Bearer header
// and stores the user on the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.token(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
			return
		}

		if cached, ok := m.users.Get(token); ok {
			handler.SetCurrentUser(c, cached.(*model.User))
			c.Next()
			return
		}

		user, err := m.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		m.users.SetDefault(token, user)

		handler.SetCurrentUser(c, user)
		c.Next()
	}
}

// Forget drops a cached session, used on logout.
func (m *AuthMiddleware) Forget(token string) {
	m.users.Delete(token)
}

// RequireRole admits only users holding one of roles. It runs after
// Authenticate on the protected group.
func RequireRole(roles ...string) gin.HandlerFunc {
	denied := errors.Forbidden(strings.Join(roles, " or ") + " access required")
	return func(c *gin.Context) {
		user := handler.CurrentUser(c)
		if user == nil {
			handler.RespondError(c, errors.Unauthorized(nil))
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		handler.RespondError(c, denied)
	}
}

func (m *AuthMiddleware) token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if m.cookieName != "" {
		if v, err := c.Cookie(m.cookieName); err == nil {
			return v
		}
	}
	return ""
}

// SessionToken exposes token extraction to the logout handler.
func (m *AuthMiddleware) SessionToken(c *gin.Context) string {
	return m.token(c)
}
