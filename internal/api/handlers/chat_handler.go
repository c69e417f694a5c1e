package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/internal/assistant"
	"github.com/placement-bot/backend/pkg/logger"
)

type ChatHandler struct {
	assistant *assistant.Assistant
}

func NewChatHandler(a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{
		assistant: a,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req struct {
		Question string `json:"question"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	response := h.assistant.GetResponse(c.Context(), req.Question)

	return c.JSON(response)
}

func (h *ChatHandler) HandleFAQ(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": assistant.FrequentQuestions,
	})
}

func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	exchanges := h.assistant.Recent(limit)

	items := make([]fiber.Map, 0, len(exchanges))
	for _, e := range exchanges {
		items = append(items, fiber.Map{
			"id":            e.ID,
			"question":      e.Question,
			"answer":        e.Answer,
			"confidence":    e.Confidence,
			"source":        e.Source,
			"response_time": e.ResponseTime,
			"created_at":    e.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"history": items,
		"count":   len(items),
	})
}
