package llm

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIProvider struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIProvider builds the provider from an already validated config.
// It never consults the environment; cmd owns configuration loading.
func NewOpenAIProvider(cfg OpenAIConfig, logger *slog.Logger) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger.Info("initializing openai provider", "model", model)

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: logger,
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}
	if req.SessionID != "" {
		chatReq.User = req.SessionID
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		p.logger.Error("openai completion failed", "error", err, "model", p.model)
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if len(resp.Choices) == 0 {
		p.logger.Warn("openai returned no choices", "model", p.model)
		return "", fmt.Errorf("%w: empty response", ErrProvider)
	}

	p.logger.Debug("openai completion received",
		"model", p.model,
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}
