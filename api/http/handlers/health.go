package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-editor/api/http/presenter"
	"github.com/artem13815/resume-editor/pkg/health"
)

const readyTimeout = time.Second

// HealthHandler serves the root banner plus liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Root: service banner.
// @Summary Service banner
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.MessageResponse
// @Router  / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, presenter.MessageResponse{Message: "Resume Editor API is running"})
}

// StatusResponse is returned by the probes. Details names the failing
// checker when the storage directory is not usable.
type StatusResponse struct {
	Status  string `json:"status" example:"ready"`
	Details string `json:"details,omitempty"`
}

// Health отвечает, пока процесс жив; хранилище не проверяется.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, StatusResponse{Status: "ok"})
}

// Ready проверяет, что каталог с резюме существует и доступен на запись.
// @Summary     Readiness probe
// @Description Creates the storage directory if needed and writes a probe file into it.
// @Tags        health
// @Produce     json
// @Success     200 {object} StatusResponse
// @Failure     503 {object} StatusResponse
// @Router      /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, fiber.StatusServiceUnavailable, StatusResponse{Status: "not_ready", Details: err.Error()})
	}
	return presenter.JSON(c, fiber.StatusOK, StatusResponse{Status: "ready"})
}
