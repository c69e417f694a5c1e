// Package generator calls the hosted language model that augments the
// knowledge base. Its output is untrusted: every completion passes the
// Greek-script validator before it reaches a user.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/circuitbreaker"
	"github.com/placement-bot/backend/pkg/logger"
)

// ErrRejectedOutput marks a completion that failed the language-purity gate.
var ErrRejectedOutput = errors.New("generator output rejected by language validator")

const systemPrompt = `Είσαι βοηθός για φοιτητές του Μητροπολιτικού Κολλεγίου Θεσσαλονίκης ` +
	`σχετικά με την πρακτική τους άσκηση στο τμήμα Προπονητικής & Φυσικής Αγωγής.

Κανόνες:
1. Απαντάς ΠΑΝΤΑ στα ελληνικά.
2. Βασίζεσαι ΜΟΝΟ στις πληροφορίες του πλαισίου που σου δίνεται.
3. Αν το πλαίσιο δεν επαρκεί, το λες καθαρά και παραπέμπεις στον υπεύθυνο ` +
	`Γεώργιο Σοφιανίδη (gsofianidis@mitropolitiko.edu.gr).
4. Είσαι σύντομος, σαφής και πρακτικός.`

type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	tolerance   float64
	cb          *circuitbreaker.Breaker
}

func NewClient(apiKey, model string, temperature float32, maxTokens, timeoutSec int, tolerance float64) *Client {
	cb := circuitbreaker.New("generator", circuitbreaker.Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Cooldown:         time.Minute,
		Logger:           logger.GetLogger(),
	})

	if timeoutSec <= 0 {
		timeoutSec = 30
	}

	logger.Info("Generator client initialized", zap.String("model", model))

	return &Client{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     time.Duration(timeoutSec) * time.Second,
		tolerance:   tolerance,
		cb:          cb,
	}
}

// Answer sends the system prompt, the retrieved context (may be empty) and
// the user question, and returns the validated completion. A single attempt
// is made per call; any failure is reported to the circuit breaker and
// returned for the caller's tier fall-through.
func (c *Client) Answer(ctx context.Context, contextBlock, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	userPrompt := question
	if contextBlock != "" {
		userPrompt = fmt.Sprintf("Πλαίσιο:\n%s\n\nΕρώτηση φοιτητή: %s", contextBlock, question)
	}

	var answer string
	err := c.cb.Execute(ctx, func() error {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		})
		if err != nil {
			return fmt.Errorf("completion request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("completion returned no choices")
		}

		text := resp.Choices[0].Message.Content
		if !ValidGreek(text, c.tolerance) {
			logger.Warn("Generator output rejected",
				zap.Int("length", len(text)),
			)
			return ErrRejectedOutput
		}

		answer = text
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Debug("Generator answer accepted", zap.Int("length", len(answer)))
	return answer, nil
}
