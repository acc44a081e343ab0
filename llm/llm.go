// Package llm provides the optional AI-enhanced conversion path, backed
// by an OpenAI-compatible chat completion endpoint. The core pipeline
// never depends on this package: when no enhancer is configured the
// basic converter is fully functional, and when enhancement fails the
// caller falls back to it.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Config holds the connection settings for the chat model endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Enhancer produces an alternative translation of source code between
// two named languages.
type Enhancer interface {
	Enhance(ctx context.Context, source, fromLang, toLang string) (string, error)
}

// Client is an Enhancer backed by an OpenAI-compatible chat model.
type Client struct {
	model model.BaseChatModel
}

// New builds a Client from config. An empty API key is an error: the
// enhancement path is strictly opt-in.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key not configured")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	cm, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: creating chat model: %w", err)
	}
	return &Client{model: cm}, nil
}

// Enhance asks the model for a conversion of source and returns the
// cleaned-up code. Callers are expected to feed the result through the
// pipeline formatter before display.
func (c *Client) Enhance(ctx context.Context, source, fromLang, toLang string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(conversionPrompt(source, fromLang, toLang)),
	}
	resp, err := c.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("llm: generate: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("llm: empty model response")
	}
	return StripFences(resp.Content), nil
}

const systemPrompt = "You are a professional code converter. " +
	"Respond with code only: no explanations and no markdown formatting."

func conversionPrompt(source, fromLang, toLang string) string {
	return fmt.Sprintf(`Convert the following %[1]s code to %[2]s.
Follow these guidelines:
1. Maintain the exact same functionality
2. Use proper %[2]s conventions and best practices
3. Include necessary imports/headers
4. Handle edge cases and error conditions
5. Use appropriate data types and structures

%[1]s code:
%[3]s

Provide only the converted code without any explanations or markdown formatting.`,
		fromLang, toLang, source)
}
