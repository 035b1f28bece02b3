package health

import (
	"context"
	"net/http"
	"time"

	"petstore/internal/http/responses"
	"petstore/internal/logging"
)

// Pinger is satisfied by db.Client and cache.RedisClient.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	checks  map[string]Pinger
	timeout time.Duration
	logger  logging.Logger
}

// NewHandler builds the health endpoint. Each entry of checks is reported
// under its name; nil pingers are skipped, so disabled dependencies can be
// passed unconditionally.
func NewHandler(checks map[string]Pinger, logger logging.Logger) *Handler {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &Handler{
		checks:  active,
		timeout: 2 * time.Second,
		logger:  logger.With("component", "health_handler"),
	}
}

type Response struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check godoc
// @Summary     Service health
// @Tags        health
// @Produce     json
// @Success     200 {object} health.Response
// @Failure     503 {object} health.Response
// @Router      /health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := Response{Status: "ok"}
	status := http.StatusOK

	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", "check", name, "error", err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	_ = responses.WriteJSON(w, status, resp)
}
