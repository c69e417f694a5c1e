package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/placement-bot/backend/internal/assistant"
	"github.com/placement-bot/backend/pkg/logger"
)

type AdminHandler struct {
	assistant *assistant.Assistant
}

func NewAdminHandler(a *assistant.Assistant) *AdminHandler {
	return &AdminHandler{
		assistant: a,
	}
}

// HandleReload re-reads the knowledge base from disk and refreshes the
// retrieval index. It is the manual counterpart of the file watcher.
func (h *AdminHandler) HandleReload(c *fiber.Ctx) error {
	logger.Info("Manual knowledge reload requested")

	h.assistant.Reload(c.Context())

	return c.JSON(fiber.Map{
		"status": "reloaded",
	})
}

func (h *AdminHandler) HandleStatus(c *fiber.Ctx) error {
	caps := h.assistant.Capabilities()

	return c.JSON(fiber.Map{
		"status": "ok",
		"capabilities": fiber.Map{
			"generator": caps.Generator,
			"retrieval": caps.Retrieval,
			"documents": caps.Documents,
			"cache":     caps.Cache,
			"history":   caps.History,
		},
	})
}
