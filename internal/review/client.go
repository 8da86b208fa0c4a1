package review

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"

	"tradelog/internal/logger"
)

// apiKeyEnv is read at call time rather than captured at startup, so a
// credential added to a running deployment takes effect without a restart.
const apiKeyEnv = "DASHSCOPE_API_KEY"

// Client calls an OpenAI-compatible chat-completion endpoint to generate
// review text. It implements Generator.
type Client struct {
	baseURL   string
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewClient creates a review client for the given endpoint and model.
func NewClient(baseURL, model string, maxTokens int, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Generate makes a single chat-completion call and returns the generated
// text verbatim. It returns ErrNotConfigured when the credential is
// missing; every other failure mode, including a context timeout and an
// empty completion, is reported as a plain error for the caller to treat
// as an upstream failure.
func (c *Client) Generate(ctx context.Context, in Input) (string, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return "", ErrNotConfigured
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	client := openai.NewClientWithConfig(cfg)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	logger.Get().Debugw("generating review", "model", c.model)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(in)},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion call failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no content")
	}

	return resp.Choices[0].Message.Content, nil
}
