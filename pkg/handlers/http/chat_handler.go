package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/config"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
	"github.com/alvilabs/portfolio-api/pkg/infra/httpx"
	"github.com/alvilabs/portfolio-api/pkg/infra/metrics"
	"github.com/alvilabs/portfolio-api/pkg/infra/providers"
)

const chatFallbackError = "Failed to process chat message. Please try again or use the contact form."

type chatHandler struct {
	logger  *logrus.Logger
	client  providers.Client
	breaker httpx.CircuitBreaker
	chatCfg *config.ChatConfig
}

func NewChatHandler(
	logger *logrus.Logger,
	client providers.Client,
	breaker httpx.CircuitBreaker,
	chatCfg *config.ChatConfig,
) Handler {
	return &chatHandler{
		logger:  logger,
		client:  client,
		breaker: breaker,
		chatCfg: chatCfg,
	}
}

func (h *chatHandler) Handle(c *fiber.Ctx) error {
	var req request.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if h.chatCfg.APIKey == "" {
		h.logger.Error("chat provider API key not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": chatFallbackError})
	}

	providerCfg := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: h.chatCfg.APIKey},
		Model:        h.chatCfg.Model,
		MaxTokens:    h.chatCfg.MaxTokens,
		Temperature:  h.chatCfg.Temperature,
		SystemPrompt: h.chatCfg.SystemPrompt,
	}

	var completion *providers.CompletionResponse
	err := h.breaker.Execute(func() error {
		var callErr error
		completion, callErr = h.client.Chat(c.Context(), providerCfg, req.History(), req.Message)
		return callErr
	})
	if err != nil {
		metrics.ChatCompletions.WithLabelValues(h.chatCfg.Provider, "error").Inc()
		h.logger.WithError(err).Error("chat completion failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": chatFallbackError})
	}

	metrics.ChatCompletions.WithLabelValues(h.chatCfg.Provider, "success").Inc()
	h.logger.WithFields(logrus.Fields{
		"provider":          h.chatCfg.Provider,
		"model":             completion.Model,
		"prompt_tokens":     completion.Usage.PromptTokens,
		"completion_tokens": completion.Usage.CompletionTokens,
		"total_tokens":      completion.Usage.TotalTokens,
	}).Debug("chat completion served")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"response": completion.Response})
}
