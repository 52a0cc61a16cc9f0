// Package llm wraps the OpenAI chat completion API behind the small
// generation contract the reasoning engine needs: one prompt in, one text
// out, single attempt, bounded by a timeout.
package llm

import (
	"context"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultTimeout = 30 * time.Second

// Client is a generation client bound to one model.
type Client struct {
	api     *openai.Client
	Model   string
	Timeout time.Duration
}

// NewClient builds a client for the given model using OPENAI_API_KEY. It
// returns nil when no key is configured so callers can treat the generation
// service as absent and take the knowledge-base path.
func NewClient(model string) *Client {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" || model == "" {
		return nil
	}
	timeout := defaultTimeout
	if v := os.Getenv("GENERATION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}
	return &Client{api: openai.NewClient(key), Model: model, Timeout: timeout}
}

// Generate sends the prompt and returns the model's text. A timeout is
// reported as an error like any other failure; the engine falls back either
// way.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
