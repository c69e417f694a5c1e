package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/internal/assistant"
	"github.com/placement-bot/backend/pkg/logger"
)

type WebSocketHandler struct {
	assistant *assistant.Assistant
}

func NewWebSocketHandler(a *assistant.Assistant) *WebSocketHandler {
	return &WebSocketHandler{
		assistant: a,
	}
}

func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type     string `json:"type"`
			Question string `json:"question"`
		}

		err := c.ReadJSON(&msg)
		if err != nil {
			logger.Error("Failed to read WebSocket message", zap.Error(err))
			break
		}

		if msg.Type != "question" || msg.Question == "" {
			continue
		}

		logger.Info("Processing WebSocket question", zap.String("question", msg.Question))

		if err := h.streamResponse(c, msg.Question); err != nil {
			logger.Error("Failed to stream response", zap.Error(err))
			h.sendError(c, "Failed to process question")
		}
	}
}

func (h *WebSocketHandler) streamResponse(c *websocket.Conn, question string) error {
	h.sendChunk(c, "status", "Επεξεργασία ερώτησης...")

	response := h.assistant.GetResponse(context.Background(), question)

	for _, chunk := range streamChunks(response.Answer) {
		if err := h.sendChunk(c, "chunk", chunk); err != nil {
			return err
		}
	}

	return h.sendComplete(c, response)
}

func (h *WebSocketHandler) sendChunk(c *websocket.Conn, msgType, content string) error {
	msg := map[string]interface{}{
		"type":    msgType,
		"content": content,
	}

	return c.WriteJSON(msg)
}

func (h *WebSocketHandler) sendComplete(c *websocket.Conn, response assistant.ChatResponse) error {
	msg := map[string]interface{}{
		"type":          "complete",
		"message_id":    response.ID,
		"category":      response.Category,
		"confidence":    response.Confidence,
		"response_time": response.ResponseTime,
	}

	return c.WriteJSON(msg)
}

func (h *WebSocketHandler) sendError(c *websocket.Conn, errorMsg string) {
	msg := map[string]interface{}{
		"type":  "error",
		"error": errorMsg,
	}

	c.WriteJSON(msg)
}

// streamChunks turns the answer into the frames sent over the socket: one
// per word with its trailing space, newlines as bare frames. Concatenating
// the frames reproduces the single-spaced answer exactly.
func streamChunks(text string) []string {
	words := splitIntoWords(text)
	chunks := make([]string, len(words))
	for i, w := range words {
		if w != "\n" && i < len(words)-1 && words[i+1] != "\n" {
			w += " "
		}
		chunks[i] = w
	}
	return chunks
}

// splitIntoWords tokenizes on spaces but keeps newlines as their own tokens
// so paragraph breaks survive the streaming.
func splitIntoWords(text string) []string {
	var words []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, r := range text {
		switch r {
		case ' ':
			flush()
		case '\n':
			flush()
			words = append(words, "\n")
		default:
			word.WriteRune(r)
		}
	}
	flush()

	return words
}
