package handlers

import (
	"wannatrack-ai/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const ServiceName = "Wannatrack AI Receipt Analyzer"

type HealthHandler struct {
	provider string
}

func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Service:     ServiceName,
		LLMProvider: h.provider,
	})
}
