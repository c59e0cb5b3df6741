/*
Package prescribe drafts prescription suggestions from free-text symptoms through an
OpenAI-compatible chat completion endpoint.
*/
package prescribe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"

	"medconnect/internal/pkg/logx"
)

const (
	systemPrompt  = "You are a medical assistant that provides prescriptions."
	userPrompt    = "Based on the following symptoms, provide a medical prescription: %s"
	emptyResponse = "No prescription generated."

	quotaErrorCode = "insufficient_quota"
)

var (
	// ErrQuotaExceeded is returned when the provider account has no quota left.
	ErrQuotaExceeded = errors.New("provider quota exceeded")

	// ErrNotConfigured is returned when no API key was provided.
	ErrNotConfigured = errors.New("chat completion provider not configured")
)

// Config selects the provider endpoint and model.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client generates prescriptions. The zero value is not usable; call NewClient.
type Client struct {
	api    openai.Client
	model  string
	ready  bool
	logger zerolog.Logger
}

// NewClient builds a Client. Extra request options are applied after the configured ones.
func NewClient(cfg Config, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:    openai.NewClient(append(base, opts...)...),
		model:  cfg.Model,
		ready:  cfg.APIKey != "",
		logger: logx.Component("prescribe"),
	}
}

// Generate asks the model for a prescription based on symptoms.
func (c *Client) Generate(ctx context.Context, symptoms string) (string, error) {
	if !c.ready {
		return "", ErrNotConfigured
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPrompt, symptoms)),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			c.logger.Warn().
				Int("status", apiErr.StatusCode).
				Str("code", apiErr.Code).
				Msg("Chat completion request rejected")

			if apiErr.Code == quotaErrorCode ||
				(apiErr.StatusCode == http.StatusTooManyRequests && strings.Contains(apiErr.Message, "quota")) {
				return "", ErrQuotaExceeded
			}
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return emptyResponse, nil
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return emptyResponse, nil
	}
	return content, nil
}
