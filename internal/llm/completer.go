// Package llm adapts an OpenAI-compatible chat endpoint to the narrow
// text-in/text-out collaborator the pipeline consumes.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the minimal interface needed to call a chat model. Any
// OpenAI-compatible backend (including a local Ollama /v1 endpoint) can be
// adapted behind it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config identifies the completion backend and model.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Completer implements scraper.Completer over a chat endpoint.
type Completer struct {
	client ChatClient
	model  string
}

// New builds a Completer talking to the configured endpoint.
func New(cfg Config) *Completer {
	transportCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = cfg.BaseURL
	}
	return &Completer{
		client: openai.NewClientWithConfig(transportCfg),
		model:  cfg.Model,
	}
}

// NewWithClient builds a Completer over an existing client (tests).
func NewWithClient(client ChatClient, model string) *Completer {
	return &Completer{client: client, model: model}
}

// Complete sends the prompt and returns the model's raw text output.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
