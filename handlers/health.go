package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/peecock/content-admin/backend/go-services/pkg/logger"
)

// isoMillis matches the timestamp format browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
	started time.Time
	now     func() time.Time
}

// NewHealthHandler returns a handler whose readiness requires every check to
// pass.
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 3 * time.Second, started: time.Now(), now: time.Now}
}

func (h *HealthHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": h.now().UTC().Format(isoMillis)})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	var mu sync.Mutex
	deps := make(map[string]bool, len(h.checks))
	var g errgroup.Group
	for name, check := range h.checks {
		g.Go(func() error {
			err := check(ctx)
			if err != nil {
				logger.Warnf("readiness: %s: %v", name, err)
			}
			mu.Lock()
			deps[name] = err == nil
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	ready := true
	for _, ok := range deps {
		ready = ready && ok
	}
	uptime := time.Since(h.started).Round(time.Second).String()
	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
}
