package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is implemented by the project store and the document cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store,omitempty"`
	Cache     string    `json:"cache,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	cache       Pinger
}

// NewHealthHandler builds the handler. A nil store or cache reports "memory".
func NewHealthHandler(serviceName, version string, store, cache Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
		cache:       cache,
	}
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return "memory"
	}
	pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := p.Ping(pingCtx); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     ping(c.Request.Context(), h.store),
		Cache:     ping(c.Request.Context(), h.cache),
	}

	// A cache outage degrades service; documents are still recomputed.
	status := http.StatusOK
	switch {
	case resp.Store == "down":
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	case resp.Cache == "down":
		resp.Status = "degraded"
	}

	c.JSON(status, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
