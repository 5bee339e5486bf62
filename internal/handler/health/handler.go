package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Check is one named readiness dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

func PingCheck(name string, p Pinger) Check {
	return Check{Name: name, Probe: p.PingContext}
}

type Handler struct {
	gatherer prometheus.Gatherer
	checks   []Check
}

func NewHandler(gatherer prometheus.Gatherer, checks ...Check) *Handler {
	return &Handler{
		gatherer: gatherer,
		checks:   checks,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
		health.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ReadinessCheck runs every check and reports DOWN if any of them fails.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status := "UP"
	results := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Probe(ctx); err != nil {
			log.Warn().Err(err).Str("check", chk.Name).Msg("Readiness check failed")
			results[chk.Name] = "DOWN"
			status = "DOWN"
			continue
		}
		results[chk.Name] = "UP"
	}

	code := http.StatusOK
	if status == "DOWN" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "checks": results})
}
