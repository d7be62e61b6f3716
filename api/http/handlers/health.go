package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruitment/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

type probeResponse struct {
	Status  string            `json:"status"`
	Details string            `json:"details,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Health: процесс жив.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(probeResponse{Status: "ok"})
}

// Ready: postgres, redis (если настроен) и каталог загрузок доступны.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(probeResponse{
			Status:  "not_ready",
			Details: err.Error(),
			Checks:  h.svc.Report(ctx),
		})
	}
	return c.JSON(probeResponse{Status: "ready"})
}
