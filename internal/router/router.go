package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-tracker/internal/handler/prometheus"
	"github.com/jwalitptl/clinic-tracker/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// PublicHandler mounts routes that need no session, such as login.
type PublicHandler interface {
	RegisterPublicRoutes(r *gin.RouterGroup, limit ...gin.HandlerFunc)
}

type RouterConfig struct {
	Mode           string
	RateLimit      rate.Limit
	RateBurst      int
	LoginPerMinute int
	LoginBurst     int
	Timeout        time.Duration
	CORSConfig     middleware.CORSConfig
	Security       middleware.SecurityConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	metrics  *prometheus.Handler
	health   Handler
	login    PublicHandler
	handlers []Handler
	config   RouterConfig
}

// NewRouter builds the engine and its global middleware chain. handlers are
// mounted behind session authentication by Setup.
func NewRouter(
	auth *middleware.AuthMiddleware,
	metrics *prometheus.Handler,
	health Handler,
	login PublicHandler,
	config RouterConfig,
	handlers ...Handler,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		metrics:  metrics,
		health:   health,
		login:    login,
		handlers: handlers,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		metrics.Middleware(),
		middleware.Timeout(config.Timeout),
		middleware.CORS(config.CORSConfig),
		middleware.SecurityHeaders(config.Security),
	)

	if config.RateLimit > 0 {
		engine.Use(middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		}).RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.health.RegisterRoutes(api)
	r.login.RegisterPublicRoutes(api, r.loginLimiter()...)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	for _, h := range r.handlers {
		h.RegisterRoutes(protected)
	}
}

func (r *Router) loginLimiter() []gin.HandlerFunc {
	if r.config.LoginPerMinute <= 0 {
		return nil
	}
	limiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Every(time.Minute / time.Duration(r.config.LoginPerMinute)),
		Burst: r.config.LoginBurst,
	}, 10*time.Minute)
	return []gin.HandlerFunc{limiter.RateLimit()}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
